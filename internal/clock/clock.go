// Package clock drives the taskbar clock.
package clock

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickMsg is delivered on every minute boundary.
type TickMsg time.Time

// Format renders t as "h:mm AM" in 12-hour time.
func Format(t time.Time) string {
	hours := t.Hour()
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	hours %= 12
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours, t.Minute(), ampm)
}

// UntilNextMinute returns the time left until the next minute boundary.
func UntilNextMinute(t time.Time) time.Duration {
	next := t.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(t)
}

// Tick schedules a TickMsg at the next minute boundary. The handler of
// TickMsg calls Tick again, which keeps the clock aligned to the minute.
func Tick() tea.Cmd {
	return tea.Tick(UntilNextMinute(time.Now()), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
