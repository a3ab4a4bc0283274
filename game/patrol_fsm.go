package game

// state transition table
// currentState, event, nextState

// walking, destinationReached, idle
// idle, finishedWaiting, walking

func NewPatrolTransitionTable() *TransitionTable {
	t := NewTransitionTable()

	t.AddTransition(PatrolWalking, EventDestinationReached, PatrolIdle)
	t.AddTransition(PatrolIdle, EventFinishedWaiting, PatrolWalking)

	return t
}

var PatrolTransitionTable = NewPatrolTransitionTable()

type TransitionEvent int

func (e TransitionEvent) ToString() string {
	switch e {
	case EventNone:
		return "None"
	case EventDestinationReached:
		return "DestinationReached"
	case EventFinishedWaiting:
		return "FinishedWaiting"
	default:
		return "Unknown"
	}
}

const (
	EventNone TransitionEvent = iota
	EventDestinationReached
	EventFinishedWaiting
)

type PatrolState int

func (s PatrolState) ToString() string {
	switch s {
	case PatrolWalking:
		return "Walking"
	case PatrolIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

const (
	PatrolWalking PatrolState = iota
	PatrolIdle
	// Also change NewTransitionTable() below, if you add new states at the end or the beginning
)

type TransitionTable map[PatrolState]map[TransitionEvent]PatrolState

func NewTransitionTable() *TransitionTable {
	t := make(TransitionTable)
	for state := PatrolWalking; state <= PatrolIdle; state++ {
		t[state] = make(map[TransitionEvent]PatrolState)
	}
	return &t
}

func (t *TransitionTable) AddTransition(fromState PatrolState, event TransitionEvent, toState PatrolState) {
	(*t)[fromState][event] = toState
}

func (t *TransitionTable) Exists(currentState PatrolState, event TransitionEvent) bool {
	_, ok := (*t)[currentState][event]
	return ok
}

func (t *TransitionTable) GetNextState(currentState PatrolState, event TransitionEvent) PatrolState {
	return (*t)[currentState][event]
}

// PatrolBehavior is the per-state half of the patrol controller. Init runs
// once when the state is entered and returns the navigation command that
// entering the state issues. Execute runs once per step.
type PatrolBehavior interface {
	GetName() PatrolState
	Init(controller *PatrolController) NavCommand
	Execute(deltaTime float64, status NavStatus) TransitionEvent
}

var BehaviorTable = map[PatrolState]func() PatrolBehavior{
	PatrolWalking: func() PatrolBehavior { return &walkingBehavior{} },
	PatrolIdle:    func() PatrolBehavior { return &idleBehavior{} },
}

func BehaviorFactory(state PatrolState) PatrolBehavior {
	return BehaviorTable[state]()
}
