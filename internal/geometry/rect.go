// Package geometry holds the restored rectangle of an application window
// and the single mutator that gestures use to change it.
package geometry

import "fmt"

const (
	// MinWidth is the smallest width a window rectangle may have, in pixels.
	MinWidth = 200

	// MinHeight is the smallest height a window rectangle may have, in pixels.
	MinHeight = 120
)

// DefaultRect is the restored geometry of a freshly opened window.
var DefaultRect = Rect{Top: 100, Left: 100, Width: 400, Height: 300}

// Rect is a window rectangle in pixels. Top and Left may be negative:
// a window can be dragged partially or fully off-screen.
type Rect struct {
	Top    int `toml:"top"`
	Left   int `toml:"left"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Clamp returns r with its size raised to the minimum dimensions.
func (r Rect) Clamp() Rect {
	r.Width = max(r.Width, MinWidth)
	r.Height = max(r.Height, MinHeight)
	return r
}

// Valid reports whether r satisfies the minimum size.
func (r Rect) Valid() bool {
	return r.Width >= MinWidth && r.Height >= MinHeight
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("{top:%d left:%d width:%d height:%d}", r.Top, r.Left, r.Width, r.Height)
}
