package desktop

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/clock"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/sysinfo"
)

// FlashMsg advances the icon highlight animation.
type FlashMsg struct {
	Seq  int
	Step int
}

const (
	flashOff = iota + 1
	flashOn
	flashOffAgain
	flashOpen
)

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the clock and the tray sampler.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{clock.Tick()}
	if config.ShowTray {
		cmds = append(cmds, sysinfo.SampleCmd(time.Millisecond))
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming messages and updates the desktop.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil

	case clock.TickMsg:
		d.clockText = clock.Format(time.Time(msg))
		return d, clock.Tick()

	case sysinfo.SampleMsg:
		if msg.Err != nil {
			d.log.Warn("tray sample failed", "err", msg.Err)
			d.trayText = "--"
		} else {
			d.trayText = msg.Stats.String()
		}
		if !config.ShowTray {
			return d, nil
		}
		return d, sysinfo.SampleCmd(config.TrayInterval)

	case FlashMsg:
		return d, d.advanceFlash(msg)
	}

	if inputHandler != nil {
		return inputHandler(msg, d)
	}
	return d, nil
}

// ClickIcon starts the highlight animation of icon i; the application opens
// when it finishes. Clicks while an animation runs are ignored.
func (d *Desktop) ClickIcon(i int) tea.Cmd {
	if d.flash != nil || i < 0 || i >= len(d.Icons) {
		return nil
	}
	d.flashSeq++
	d.flash = &flash{seq: d.flashSeq, index: i, on: true}
	seq := d.flashSeq

	step := func(delay time.Duration, s int) tea.Cmd {
		return tea.Tick(delay, func(time.Time) tea.Msg {
			return FlashMsg{Seq: seq, Step: s}
		})
	}
	return tea.Batch(
		step(config.IconFlashOff, flashOff),
		step(config.IconFlashOnAgain, flashOn),
		step(config.IconFlashOffAgain, flashOffAgain),
		step(config.IconOpenDelay, flashOpen),
	)
}

func (d *Desktop) advanceFlash(msg FlashMsg) tea.Cmd {
	if d.flash == nil || d.flash.seq != msg.Seq {
		return nil
	}
	switch msg.Step {
	case flashOff, flashOffAgain:
		d.flash.on = false
	case flashOn:
		d.flash.on = true
	case flashOpen:
		index := d.flash.index
		d.flash = nil
		d.Open(index)
	}
	return nil
}

// Flashing reports which icon is animating and whether it is highlighted.
func (d *Desktop) Flashing() (index int, on bool, ok bool) {
	if d.flash == nil {
		return -1, false, false
	}
	return d.flash.index, d.flash.on, true
}

// ToggleLogs shows or hides the event log panel.
func (d *Desktop) ToggleLogs() {
	d.ShowLogs = !d.ShowLogs
}
