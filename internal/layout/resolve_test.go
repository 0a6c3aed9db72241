package layout

import (
	"testing"

	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/viewport"
)

func TestResolve(t *testing.T) {
	full := viewport.Snapshot{Width: 1024, Height: 768, Env: viewport.Full}
	compact := viewport.Snapshot{Width: 600, Height: 900, Env: viewport.Compact}
	stored := geometry.Rect{Top: 135, Left: 120, Width: 400, Height: 300}

	tests := []struct {
		name      string
		env       viewport.Snapshot
		placement Placement
		minimized bool
		want      Render
	}{
		{
			name:      "full restored uses stored rect",
			env:       full,
			placement: Restored,
			want:      Render{Rect: stored, Position: Absolute, Body: true, ResizeHandle: true},
		},
		{
			name:      "full maximized fills desktop",
			env:       full,
			placement: Maximized,
			want: Render{
				Rect:     geometry.Rect{Width: 1024, Height: 768 - TaskbarHeight},
				Position: Absolute,
				Body:     true,
			},
		},
		{
			name:      "compact ignores restored geometry",
			env:       compact,
			placement: Restored,
			want: Render{
				Rect:     geometry.Rect{Width: 600, Height: 900 - TaskbarHeight},
				Position: Fixed,
				Body:     true,
			},
		},
		{
			name:      "compact maximized",
			env:       compact,
			placement: Maximized,
			want: Render{
				Rect:     geometry.Rect{Width: 600, Height: 900 - TaskbarHeight},
				Position: Fixed,
				Body:     true,
			},
		},
		{
			name:      "minimized restored hides body and handle",
			env:       full,
			placement: Restored,
			minimized: true,
			want:      Render{Rect: stored, Position: Absolute},
		},
		{
			name:      "minimized on compact is header only",
			env:       compact,
			placement: Restored,
			minimized: true,
			want: Render{
				Rect:     geometry.Rect{Width: 600, Height: 900 - TaskbarHeight},
				Position: Fixed,
			},
		},
		{
			name:      "viewport shorter than taskbar",
			env:       viewport.Snapshot{Width: 1000, Height: 20, Env: viewport.Full},
			placement: Maximized,
			want:      Render{Rect: geometry.Rect{Width: 1000}, Position: Absolute, Body: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.env, tt.placement, tt.minimized, stored)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	env := viewport.Snapshot{Width: 1280, Height: 720, Env: viewport.Full}
	rect := geometry.DefaultRect

	first := Resolve(env, Restored, false, rect)
	for range 10 {
		if got := Resolve(env, Restored, false, rect); got != first {
			t.Fatalf("Resolve not deterministic: %+v vs %+v", got, first)
		}
	}
}
