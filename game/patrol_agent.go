package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/patrol/engine/util"
)

// PatrolAgent is the host-side glue: it feeds a PatrolController from a
// navigation engine and pushes the results back to it and to an animator.
type PatrolAgent struct {
	name       string
	controller *PatrolController
	nav        NavigationAgent
	anim       Animator
}

func NewPatrolAgent(name string, waypoints []mgl32.Vec3, idleDuration float64, nav NavigationAgent, anim Animator) *PatrolAgent {
	controller, cmd := NewPatrolController(waypoints, idleDuration)
	a := &PatrolAgent{
		name:       name,
		controller: controller,
		nav:        nav,
		anim:       anim,
	}
	a.apply(cmd)
	return a
}

// Update is called once per host frame.
func (a *PatrolAgent) Update(deltaTime float64) StepResult {
	result := a.controller.Step(deltaTime, StatusOf(a.nav))
	a.apply(result.Command)
	a.anim.SetBool(AnimParamWalking, result.IsMoving)
	return result
}

func (a *PatrolAgent) apply(cmd NavCommand) {
	if cmd.IsNone() {
		return
	}
	util.LogPatrolInfo(fmt.Sprintf("[PatrolAgent] %s: %s", a.name, cmd.String()))
	ApplyNavCommand(a.nav, cmd)
}

func (a *PatrolAgent) GetName() string {
	return a.name
}

func (a *PatrolAgent) Controller() *PatrolController {
	return a.controller
}
