package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/patrol/engine/util"
)

const DefaultIdleDuration = 2.0

// PatrolController walks an NPC along a fixed cyclic list of waypoints and
// idles for IdleDuration seconds at each one. It never talks to the engines
// directly: every call returns the navigation command to apply, if any.
type PatrolController struct {
	waypoints    []mgl32.Vec3
	idleDuration float64
	nextIndex    int
	state        PatrolBehavior
}

type StepResult struct {
	Command  NavCommand
	IsMoving bool
}

// NewPatrolController copies the waypoints and starts the patrol. The returned
// command is the first destination request; it is NavNone when there are no
// waypoints, in which case the controller stays idle for good.
func NewPatrolController(waypoints []mgl32.Vec3, idleDuration float64) (*PatrolController, NavCommand) {
	if idleDuration < 0 {
		idleDuration = 0
	}
	c := &PatrolController{
		waypoints:    append([]mgl32.Vec3(nil), waypoints...),
		idleDuration: idleDuration,
	}
	if len(c.waypoints) == 0 {
		util.LogPatrolWarning("[PatrolController] No waypoints assigned, staying idle.")
		c.state = &idleBehavior{controller: c}
		return c, NavCommand{}
	}
	return c, c.switchTo(PatrolWalking)
}

// Step advances the patrol by one frame. At most one transition happens per
// call and the returned command always belongs to that transition.
func (c *PatrolController) Step(deltaTime float64, status NavStatus) StepResult {
	result := StepResult{IsMoving: status.SpeedSq > StoppedSpeedSq}

	event := c.state.Execute(deltaTime, status)
	if event == EventNone {
		return result
	}
	current := c.state.GetName()
	if !PatrolTransitionTable.Exists(current, event) {
		util.LogPatrolDebug(fmt.Sprintf("[PatrolController] Ignoring %s in %s", event.ToString(), current.ToString()))
		return result
	}
	result.Command = c.switchTo(PatrolTransitionTable.GetNextState(current, event))
	return result
}

func (c *PatrolController) switchTo(state PatrolState) NavCommand {
	behavior := BehaviorFactory(state)
	cmd := behavior.Init(c)
	c.state = behavior
	util.LogPatrolDebug(fmt.Sprintf("[PatrolController] -> %s, %s", state.ToString(), cmd.String()))
	return cmd
}

func (c *PatrolController) advance() NavCommand {
	target := c.waypoints[c.nextIndex]
	c.nextIndex = (c.nextIndex + 1) % len(c.waypoints)
	return SetDestination(target)
}

func (c *PatrolController) State() PatrolState {
	return c.state.GetName()
}

// IdleRemaining is the countdown of the current idle phase, 0 while walking.
func (c *PatrolController) IdleRemaining() float64 {
	if idle, ok := c.state.(*idleBehavior); ok {
		return idle.remaining
	}
	return 0
}

func (c *PatrolController) NextIndex() int {
	return c.nextIndex
}

func (c *PatrolController) IdleDuration() float64 {
	return c.idleDuration
}

func (c *PatrolController) HasWaypoints() bool {
	return len(c.waypoints) > 0
}

func (c *PatrolController) Waypoints() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), c.waypoints...)
}
