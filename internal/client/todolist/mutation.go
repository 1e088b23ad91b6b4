package todolist

// MutationKind вид изменения списка
type MutationKind string

const (
	KindCreate MutationKind = "create"
	KindUpdate MutationKind = "update"
	KindDelete MutationKind = "delete"
)

// MutationState состояние отдельного изменения: Idle -> InFlight -> Committed | Failed
type MutationState int

const (
	StateIdle MutationState = iota
	StateInFlight
	StateCommitted
	StateFailed
)

func (s MutationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation описывает переход изменения в новое состояние.
// Передается наблюдателю, заданному через WithObserver.
type Mutation struct {
	Err    error
	Kind   MutationKind
	State  MutationState
	TodoID int64 // 0 для create
}

// Observer получает каждый переход состояния изменения.
// Вызывается синхронно из горутины, выполняющей изменение.
type Observer func(Mutation)
