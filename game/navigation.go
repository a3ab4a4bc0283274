package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// StoppedSpeedSq is the squared speed below which an agent counts as stopped.
// Arrival and the walking animation flag share it so that the two never disagree.
const StoppedSpeedSq float32 = 0.01

type NavCommandKind int

const (
	NavNone NavCommandKind = iota
	NavSetDestination
	NavClearDestination
)

func (k NavCommandKind) ToString() string {
	switch k {
	case NavNone:
		return "None"
	case NavSetDestination:
		return "SetDestination"
	case NavClearDestination:
		return "ClearDestination"
	default:
		return "Unknown"
	}
}

// NavCommand is what the controller asks of the navigation engine in one step.
// Destination is only meaningful for NavSetDestination.
type NavCommand struct {
	Kind        NavCommandKind
	Destination mgl32.Vec3
}

func SetDestination(pos mgl32.Vec3) NavCommand {
	return NavCommand{Kind: NavSetDestination, Destination: pos}
}

func ClearDestination() NavCommand {
	return NavCommand{Kind: NavClearDestination}
}

func (c NavCommand) IsNone() bool {
	return c.Kind == NavNone
}

func (c NavCommand) String() string {
	if c.Kind == NavSetDestination {
		return fmt.Sprintf("%s(%.2f, %.2f, %.2f)", c.Kind.ToString(), c.Destination.X(), c.Destination.Y(), c.Destination.Z())
	}
	return c.Kind.ToString()
}

// NavStatus is the per-frame reading of the navigation engine.
type NavStatus struct {
	Arrived bool
	SpeedSq float32
}

func NewNavStatus(pathPending bool, remainingDistance, stoppingDistance float32, velocity mgl32.Vec3) NavStatus {
	return NavStatus{
		Arrived: !pathPending && remainingDistance <= stoppingDistance,
		SpeedSq: velocity.LenSqr(),
	}
}

// NavigationAgent is the navigation engine as seen by a patrolling NPC.
type NavigationAgent interface {
	SetDestination(pos mgl32.Vec3)
	ClearDestination()
	PathPending() bool
	RemainingDistance() float32
	StoppingDistance() float32
	Velocity() mgl32.Vec3
}

// AnimParamWalking is the animator parameter driven by the walking flag.
const AnimParamWalking = "isWalking"

type Animator interface {
	SetBool(name string, value bool)
}

func ApplyNavCommand(agent NavigationAgent, cmd NavCommand) {
	switch cmd.Kind {
	case NavSetDestination:
		agent.SetDestination(cmd.Destination)
	case NavClearDestination:
		agent.ClearDestination()
	}
}

func StatusOf(agent NavigationAgent) NavStatus {
	return NewNavStatus(agent.PathPending(), agent.RemainingDistance(), agent.StoppingDistance(), agent.Velocity())
}
