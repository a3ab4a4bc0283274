package nav

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/patrol/engine/util"
)

// KinematicAgent moves in a straight line toward its destination at a fixed
// speed. A new destination stays pending for PlanningFrames updates before
// the agent starts moving, the way a real path query would.
type KinematicAgent struct {
	position         mgl32.Vec3
	destination      mgl32.Vec3
	velocity         mgl32.Vec3
	speed            float32
	stoppingDistance float32
	planningFrames   int
	pendingFrames    int
	hasPath          bool
}

func NewKinematicAgent(position mgl32.Vec3, speed, stoppingDistance float32) *KinematicAgent {
	return &KinematicAgent{
		position:         position,
		speed:            speed,
		stoppingDistance: stoppingDistance,
		planningFrames:   1,
	}
}

func (a *KinematicAgent) SetPlanningFrames(frames int) {
	if frames < 0 {
		frames = 0
	}
	a.planningFrames = frames
}

func (a *KinematicAgent) SetDestination(pos mgl32.Vec3) {
	a.destination = pos
	a.hasPath = true
	a.pendingFrames = a.planningFrames
	util.LogNavigationDebug(fmt.Sprintf("[KinematicAgent] SetDestination %v", pos))
}

func (a *KinematicAgent) ClearDestination() {
	a.hasPath = false
	a.pendingFrames = 0
	a.velocity = mgl32.Vec3{0, 0, 0}
}

func (a *KinematicAgent) PathPending() bool {
	return a.pendingFrames > 0
}

func (a *KinematicAgent) RemainingDistance() float32 {
	if !a.hasPath {
		return 0
	}
	return a.destination.Sub(a.position).Len()
}

func (a *KinematicAgent) StoppingDistance() float32 {
	return a.stoppingDistance
}

func (a *KinematicAgent) Velocity() mgl32.Vec3 {
	return a.velocity
}

func (a *KinematicAgent) Position() mgl32.Vec3 {
	return a.position
}

func (a *KinematicAgent) Destination() (mgl32.Vec3, bool) {
	return a.destination, a.hasPath
}

// Update integrates one frame of movement.
func (a *KinematicAgent) Update(deltaTime float64) {
	if !a.hasPath || deltaTime <= 0 {
		return
	}
	if a.pendingFrames > 0 {
		a.pendingFrames--
		return
	}

	toTarget := a.destination.Sub(a.position)
	distance := toTarget.Len()
	if distance <= a.stoppingDistance {
		a.velocity = mgl32.Vec3{0, 0, 0}
		return
	}

	step := a.speed * float32(deltaTime)
	if step >= distance {
		a.velocity = toTarget.Mul(1 / float32(deltaTime))
		a.position = a.destination
		return
	}
	a.velocity = toTarget.Normalize().Mul(a.speed)
	a.position = a.position.Add(a.velocity.Mul(float32(deltaTime)))
}
