// Package sysinfo samples CPU and memory usage for the taskbar tray.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one tray reading, in percent.
type Stats struct {
	CPU float64
	RAM float64
}

// String renders the tray text, e.g. "CPU 12% RAM 48%".
func (s Stats) String() string {
	return fmt.Sprintf("CPU %2.0f%% RAM %2.0f%%", s.CPU, s.RAM)
}

// Sample reads current CPU and memory usage.
func Sample(ctx context.Context) (Stats, error) {
	var s Stats

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return s, fmt.Errorf("failed to read cpu usage: %w", err)
	}
	if len(percents) > 0 {
		s.CPU = percents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("failed to read memory usage: %w", err)
	}
	s.RAM = vm.UsedPercent

	return s, nil
}

// SampleMsg carries a tray reading or the error that prevented it.
type SampleMsg struct {
	Stats Stats
	Err   error
}

// SampleCmd waits interval and then samples once.
func SampleCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s, err := Sample(ctx)
		return SampleMsg{Stats: s, Err: err}
	})
}
