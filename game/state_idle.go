package game

type idleBehavior struct {
	controller *PatrolController
	remaining  float64
}

func (a *idleBehavior) Execute(deltaTime float64, status NavStatus) TransitionEvent {
	if deltaTime > 0 && a.remaining > 0 {
		a.remaining -= deltaTime
	}
	if a.remaining <= 0 && a.controller.HasWaypoints() {
		return EventFinishedWaiting
	}
	return EventNone
}

func (a *idleBehavior) GetName() PatrolState {
	return PatrolIdle
}

func (a *idleBehavior) Init(controller *PatrolController) NavCommand {
	a.controller = controller
	a.remaining = controller.idleDuration
	return ClearDestination()
}
