package dropdown

const EventSelectionChanged = "selectionChanged"

type Event struct {
	Bubbles       bool
	Composed      bool
	CurrentTarget *EventTarget
	Detail        any
	Target        *EventTarget
	Type          string
	stopped       bool
}

// StopPropagation prevents the event from reaching further ancestors. Listeners
// on the current target still run.
func (event *Event) StopPropagation() {
	event.stopped = true
}

type Listener func(*Event)

// EventTarget holds listeners per event type. Dispatch walks up Parent for
// bubbling events.
type EventTarget struct {
	Parent    *EventTarget
	listeners map[string][]*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

func (target *EventTarget) AddEventListener(eventType string, listener Listener) func() {
	if target.listeners == nil {
		target.listeners = make(map[string][]*listenerEntry, 0)
	}
	entry := &listenerEntry{fn: listener}
	target.listeners[eventType] = append(target.listeners[eventType], entry)
	return func() {
		entries := target.listeners[eventType]
		for i, e := range entries {
			if e == entry {
				target.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (target *EventTarget) Dispatch(event *Event) {
	event.Target = target
	for current := target; current != nil; current = current.Parent {
		event.CurrentTarget = current
		// Copy so listeners may remove themselves mid-dispatch.
		entries := append([]*listenerEntry(nil), current.listeners[event.Type]...)
		for _, entry := range entries {
			entry.fn(event)
		}
		if !event.Bubbles || event.stopped {
			break
		}
	}
	event.CurrentTarget = nil
}

type SelectionChanged struct {
	Option string `json:"option"`
}
