package ownership

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnLifecycleEvent(e Event) {
	r.events = append(r.events, e)
}

type plainDropper struct {
	drops int
}

func (d *plainDropper) Drop() {
	d.drops++
}

type tagged interface {
	Tag() string
}

type taggedDropper struct {
	tag   string
	drops int
}

func (d *taggedDropper) Tag() string { return d.tag }
func (d *taggedDropper) Drop()       { d.drops++ }

func TestDestroy_RunsDropMethod(t *testing.T) {
	d := &plainDropper{}

	Destroy(d)
	if d.drops != 1 {
		t.Fatalf("Expected one drop, got %d", d.drops)
	}
}

func TestDestroy_DispatchesThroughInterfaceCell(t *testing.T) {
	d := &taggedDropper{tag: "a"}

	// A converted handle stores the value behind a pointer to interface;
	// destruction must still find the concrete Drop method.
	var cell tagged = d
	Destroy(&cell)
	if d.drops != 1 {
		t.Fatalf("Expected drop to dispatch through the interface, got %d drops", d.drops)
	}
}

func TestDestroy_NonDropperIsDestroyedSilently(t *testing.T) {
	r := &recorder{}
	SetObserver(r)
	defer SetObserver(nil)

	v := 9
	Destroy(&v)
	if len(r.events) != 1 {
		t.Fatalf("Expected one event, got %d", len(r.events))
	}
	if r.events[0].Type != EventDestroyed || r.events[0].Subject != &v {
		t.Fatalf("Expected destroyed event for %p, got %+v", &v, r.events[0])
	}
}

func TestDestroy_NilIsNoOp(t *testing.T) {
	r := &recorder{}
	SetObserver(r)
	defer SetObserver(nil)

	Destroy[int](nil)
	if len(r.events) != 0 {
		t.Fatalf("Expected no events for nil destroy, got %d", len(r.events))
	}
}

func TestDestroy_NotifiesAfterDrop(t *testing.T) {
	r := &recorder{}
	SetObserver(r)
	defer SetObserver(nil)

	d := &plainDropper{}
	Destroy(d)
	if d.drops != 1 {
		t.Fatalf("Expected one drop, got %d", d.drops)
	}
	if len(r.events) != 1 || r.events[0].Type != EventDestroyed {
		t.Fatalf("Expected a destroyed event, got %+v", r.events)
	}
}

func TestNotify_WithoutObserverIsNoOp(t *testing.T) {
	SetObserver(nil)
	Notify(Event{Subject: "anything", Type: EventAdopted})
}

func TestSetObserver_Replaces(t *testing.T) {
	first := &recorder{}
	second := &recorder{}

	SetObserver(first)
	Notify(Event{Type: EventAdopted})

	SetObserver(second)
	defer SetObserver(nil)
	Notify(Event{Type: EventReleased})

	if len(first.events) != 1 {
		t.Fatalf("Expected first observer to see one event, got %d", len(first.events))
	}
	if len(second.events) != 1 || second.events[0].Type != EventReleased {
		t.Fatalf("Expected second observer to see the released event, got %+v", second.events)
	}
}
