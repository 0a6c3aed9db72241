// Package viewport classifies the viewport width into a layout environment.
package viewport

// CompactMaxWidth is the widest viewport, in pixels, still treated as compact.
const CompactMaxWidth = 768

// Environment is the layout mode derived from the viewport width.
type Environment int

const (
	// Full is the desktop layout with free-form windows.
	Full Environment = iota
	// Compact is the mobile layout where windows fill the viewport.
	Compact
)

// String returns the environment name.
func (e Environment) String() string {
	switch e {
	case Full:
		return "full"
	case Compact:
		return "compact"
	default:
		return "unknown"
	}
}

// Classify returns the environment for a viewport width using the default
// breakpoint.
func Classify(width int) Environment {
	return classify(width, CompactMaxWidth)
}

func classify(width, breakpoint int) Environment {
	if width <= breakpoint {
		return Compact
	}
	return Full
}

// Snapshot is the last observed viewport.
type Snapshot struct {
	Width  int
	Height int
	Env    Environment
}

// Source is anything a window can read the current viewport from.
type Source interface {
	Snapshot() Snapshot
}

// Classifier recomputes the environment on every viewport notification.
// It is read-only input for windows; only the shell calls Observe.
type Classifier struct {
	breakpoint int
	current    Snapshot
	observers  map[int]func(Snapshot)
	nextID     int
}

// NewClassifier returns a classifier using breakpoint as the widest compact
// width. A non-positive breakpoint selects CompactMaxWidth.
func NewClassifier(breakpoint int) *Classifier {
	if breakpoint <= 0 {
		breakpoint = CompactMaxWidth
	}
	return &Classifier{
		breakpoint: breakpoint,
		current:    Snapshot{Env: classify(0, breakpoint)},
		observers:  make(map[int]func(Snapshot)),
	}
}

// Breakpoint returns the widest compact width.
func (c *Classifier) Breakpoint() int {
	return c.breakpoint
}

// Observe records a viewport size and synchronously recomputes the
// environment. Observers are notified when the environment changes.
func (c *Classifier) Observe(width, height int) Snapshot {
	prev := c.current.Env
	c.current = Snapshot{
		Width:  width,
		Height: height,
		Env:    classify(width, c.breakpoint),
	}
	if c.current.Env != prev {
		for _, fn := range c.observers {
			fn(c.current)
		}
	}
	return c.current
}

// Snapshot returns the last observed viewport.
func (c *Classifier) Snapshot() Snapshot {
	return c.current
}

// Subscription is a registered environment observer.
type Subscription struct {
	release func()
}

// Release detaches the observer. Calling it more than once is harmless.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Subscribe registers fn to run whenever the environment changes.
func (c *Classifier) Subscribe(fn func(Snapshot)) *Subscription {
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return &Subscription{release: func() { delete(c.observers, id) }}
}
