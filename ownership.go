package ownership

// Dropper is optionally implemented by values that need cleanup when their
// last owner lets go.
type Dropper interface {
	Drop()
}

// Event types for handle lifecycle notifications.
type EventType uint8

const (
	// EventAdopted fires when a value comes under library ownership.
	EventAdopted EventType = iota
	// EventDestroyed fires when the destruction protocol runs for a value.
	EventDestroyed
	// EventReleased fires when ownership is relinquished without destruction.
	EventReleased
	// EventBlockAllocated fires when a control block is allocated for a
	// newly shared value.
	EventBlockAllocated
	// EventBlockFreed fires when the last reference to a control block, weak
	// or strong, is gone.
	EventBlockFreed
)

// Event represents a handle lifecycle event. Subject is the value pointer
// for value events and the control block for block events.
type Event struct {
	Subject any
	Type    EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnLifecycleEvent(Event)
}

var observer Observer

// SetObserver installs the package-global lifecycle observer. Passing nil
// disables notification. Like the handles themselves this is not safe for
// concurrent use; install the observer before exercising any handles.
func SetObserver(o Observer) {
	observer = o
}

// Notify delivers e to the installed observer, if any. It is exported for
// handle implementations; most callers only ever install an observer.
func Notify(e Event) {
	if observer != nil {
		observer.OnLifecycleEvent(e)
	}
}

// Destroy runs p's destructor and emits EventDestroyed. If *T implements
// Dropper its Drop method is called; when T is an interface type the call
// dispatches through it to the concrete value. Values without a Drop method
// have a trivial destructor. Destroy on a nil pointer is a no-op.
func Destroy[T any](p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
	Notify(Event{Subject: p, Type: EventDestroyed})
}
