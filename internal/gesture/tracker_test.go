package gesture

import (
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
)

func TestDragTranslatesFromOrigin(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	drag := NewDrag(store, bus)

	drag.Begin(150, 150)
	bus.Move(160, 160)
	bus.Move(170, 185)

	want := geometry.Rect{Top: 135, Left: 120, Width: 400, Height: 300}
	if got := store.Rect(); got != want {
		t.Errorf("after drag: got %v, want %v", got, want)
	}
}

func TestDragReleaseDetachesListener(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	drag := NewDrag(store, bus)

	if bus.Len() != 0 {
		t.Fatalf("expected no listeners before begin, got %d", bus.Len())
	}
	drag.Begin(0, 0)
	if bus.Len() != 1 {
		t.Fatalf("expected one listener during drag, got %d", bus.Len())
	}

	bus.Move(10, 10)
	bus.Release(10, 10)
	if drag.Active() {
		t.Error("drag still active after release")
	}
	if bus.Len() != 0 {
		t.Errorf("listener leaked after release: %d", bus.Len())
	}

	// Stray move after release is a no-op.
	bus.Move(500, 500)
	drag.PointerMove(500, 500)
	want := geometry.Rect{Top: 110, Left: 110, Width: 400, Height: 300}
	if got := store.Rect(); got != want {
		t.Errorf("stray move changed geometry: got %v, want %v", got, want)
	}
}

func TestDragEndIdempotent(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	drag := NewDrag(store, bus)

	drag.End()
	drag.Begin(1, 1)
	drag.End()
	drag.End()

	if drag.Active() || drag.Subscribed() || bus.Len() != 0 {
		t.Errorf("unexpected state after double End: active=%v subscribed=%v listeners=%d",
			drag.Active(), drag.Subscribed(), bus.Len())
	}
}

func TestDragBeginTwiceKeepsOneSubscription(t *testing.T) {
	bus := NewBus()
	drag := NewDrag(geometry.NewStore(geometry.DefaultRect), bus)

	drag.Begin(0, 0)
	drag.Begin(5, 5)
	if bus.Len() != 1 {
		t.Errorf("expected one listener, got %d", bus.Len())
	}
	s, ok := drag.Session()
	if !ok || s.OriginX != 5 || s.OriginY != 5 {
		t.Errorf("expected replaced session at (5,5), got %+v ok=%v", s, ok)
	}
}

func TestResizeGrowsFromAnchor(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	resize := NewResize(store, bus, nil)

	if !resize.Begin(500, 400) {
		t.Fatal("Begin refused while enabled")
	}
	bus.Move(470, 380)

	want := geometry.Rect{Top: 100, Left: 100, Width: 370, Height: 280}
	if got := store.Rect(); got != want {
		t.Errorf("after resize: got %v, want %v", got, want)
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	resize := NewResize(store, bus, nil)

	resize.Begin(500, 400)
	bus.Move(0, 0)

	got := store.Rect()
	if got.Width != geometry.MinWidth || got.Height != geometry.MinHeight {
		t.Errorf("expected clamp to %dx%d, got %v", geometry.MinWidth, geometry.MinHeight, got)
	}
	if got.Top != 100 || got.Left != 100 {
		t.Errorf("anchor moved: %v", got)
	}
}

func TestResizeRefusedWhenDisabled(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	resize := NewResize(store, bus, func() bool { return false })

	if resize.Begin(500, 400) {
		t.Fatal("Begin accepted while disabled")
	}
	if resize.Active() || bus.Len() != 0 {
		t.Error("session or listener created while disabled")
	}
	bus.Move(0, 0)
	if store.Rect() != geometry.DefaultRect {
		t.Errorf("geometry changed: %v", store.Rect())
	}
}

func TestCloseDetachesActiveGesture(t *testing.T) {
	bus := NewBus()
	store := geometry.NewStore(geometry.DefaultRect)
	resize := NewResize(store, bus, nil)

	resize.Begin(10, 10)
	resize.Close()
	if bus.Len() != 0 {
		t.Errorf("listener leaked after Close: %d", bus.Len())
	}
}

func TestSubscriptionReleaseNil(t *testing.T) {
	var s *Subscription
	s.Release()
	if s.Active() {
		t.Error("nil subscription reported active")
	}
}
