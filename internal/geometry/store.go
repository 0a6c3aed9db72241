package geometry

// DeltaMode selects how ApplyDelta interprets a pointer delta.
type DeltaMode int

const (
	// Translate moves the rectangle; its size is untouched.
	Translate DeltaMode = iota
	// Grow resizes the rectangle from a fixed top-left anchor.
	Grow
)

// String returns the mode name.
func (m DeltaMode) String() string {
	switch m {
	case Translate:
		return "translate"
	case Grow:
		return "grow"
	default:
		return "unknown"
	}
}

// Store owns the restored rectangle of one window.
type Store struct {
	rect Rect
}

// NewStore returns a store holding initial, clamped to the minimum size.
func NewStore(initial Rect) *Store {
	return &Store{rect: initial.Clamp()}
}

// Rect returns the stored rectangle.
func (s *Store) Rect() Rect {
	return s.rect
}

// ApplyDelta recomputes the stored rectangle from base, the snapshot taken
// when the gesture started, and the total pointer delta since then.
// Translate never clamps; Grow clamps each axis to the minimum size.
func (s *Store) ApplyDelta(base Rect, dx, dy int, mode DeltaMode) Rect {
	switch mode {
	case Translate:
		s.rect.Top = base.Top + dy
		s.rect.Left = base.Left + dx
	case Grow:
		s.rect.Width = max(MinWidth, base.Width+dx)
		s.rect.Height = max(MinHeight, base.Height+dy)
	}
	return s.rect
}
