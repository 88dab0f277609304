// StateBuilder provides declarative event handler registration for state reconstruction.
//
// Replaces manual switch/case chains in RebuildState functions.
package common

// StateApplier applies an event to state.
type StateApplier[S any] func(state *S, event Event)

type applierEntry[S any] struct {
	eventType string
	apply     StateApplier[S]
}

// StateBuilder builds state from events with registered handlers.
//
// Example:
//
//	builder := common.NewStateBuilder(logic.EmptyState).
//	    On(logic.EventItemAdded, common.Applier(applyItemAdded)).
//	    On(logic.EventCartCleared, common.Applier(applyCartCleared))
//
//	state := builder.Rebuild(book)
type StateBuilder[S any] struct {
	newState func() S
	appliers []applierEntry[S]
}

// NewStateBuilder creates a StateBuilder for state type S.
//
// The newState function creates a default/zero state.
func NewStateBuilder[S any](newState func() S) *StateBuilder[S] {
	return &StateBuilder[S]{
		newState: newState,
		appliers: make([]applierEntry[S], 0),
	}
}

// On registers an applier for an event type.
func (sb *StateBuilder[S]) On(eventType string, apply StateApplier[S]) *StateBuilder[S] {
	sb.appliers = append(sb.appliers, applierEntry[S]{
		eventType: eventType,
		apply:     apply,
	})
	return sb
}

// Apply applies a single event to state using registered handlers.
//
// Useful for applying newly-decided events to current state without
// replaying the whole book. Unknown event types are ignored.
func (sb *StateBuilder[S]) Apply(state *S, event Event) {
	if event == nil {
		return
	}
	for _, applier := range sb.appliers {
		if applier.eventType == event.EventType() {
			applier.apply(state, event)
			return
		}
	}
}

// Rebuild reconstructs state from an EventBook.
func (sb *StateBuilder[S]) Rebuild(book *EventBook) S {
	state := sb.newState()
	if book == nil {
		return state
	}
	for _, page := range book.Pages {
		sb.Apply(&state, page.Event)
	}
	return state
}

// Applier adapts a typed apply function to a StateApplier.
// Events of any other concrete type are ignored.
func Applier[S any, E Event](apply func(state *S, event E)) StateApplier[S] {
	return func(state *S, event Event) {
		if e, ok := event.(E); ok {
			apply(state, e)
		}
	}
}
