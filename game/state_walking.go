package game

type walkingBehavior struct {
	controller *PatrolController
}

func (a *walkingBehavior) Execute(deltaTime float64, status NavStatus) TransitionEvent {
	if status.Arrived && status.SpeedSq < StoppedSpeedSq {
		return EventDestinationReached
	}
	return EventNone
}

func (a *walkingBehavior) GetName() PatrolState {
	return PatrolWalking
}

func (a *walkingBehavior) Init(controller *PatrolController) NavCommand {
	a.controller = controller
	return controller.advance()
}
