package desktop

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/retrodesk/internal/config"
	"github.com/Gaurav-Gosain/retrodesk/internal/theme"
	"github.com/Gaurav-Gosain/retrodesk/internal/window"
	"github.com/charmbracelet/x/ansi"
)

const logPanelLines = 10

// GetCanvas composes every visible layer of the desktop.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(d.Width, d.Height)

	layers := []*lipgloss.Layer{d.renderBackground()}
	layers = append(layers, d.renderIcons()...)
	if l := d.renderWindow(); l != nil {
		layers = append(layers, l)
	}
	layers = append(layers, d.renderTaskbar())
	if d.ShowLogs {
		layers = append(layers, d.renderLogPanel())
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	if d.Width > 0 && d.Height > 0 {
		view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	}
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

func (d *Desktop) renderBackground() *lipgloss.Layer {
	h := max(d.Height-d.taskbarRect().H, 0)
	bg := lipgloss.NewStyle().
		Background(theme.DesktopBg()).
		Width(d.Width).
		Height(h).
		Render("")
	return lipgloss.NewLayer(bg).X(0).Y(0).Z(config.ZIndexDesktop).ID("desktop")
}

func (d *Desktop) renderIcons() []*lipgloss.Layer {
	flashIndex, flashOn, flashing := d.Flashing()

	layers := make([]*lipgloss.Layer, 0, len(d.Icons))
	for i, icon := range d.Icons {
		r := d.iconRect(i)

		base := lipgloss.NewStyle().
			Width(r.W).
			Align(lipgloss.Center).
			Background(theme.DesktopBg()).
			Foreground(theme.DesktopFg())
		label := base.MaxHeight(r.H - 1)
		if flashing && flashOn && flashIndex == i {
			label = label.Background(theme.IconSelectedBg())
		}

		glyph := icon.Glyph
		if glyph == "" {
			glyph = "■"
		}
		tile := lipgloss.JoinVertical(lipgloss.Center,
			base.Bold(true).Render(glyph),
			label.Render(icon.Name),
		)
		layers = append(layers, lipgloss.NewLayer(tile).X(r.X).Y(r.Y).Z(config.ZIndexDesktop+1))
	}
	return layers
}

func controlGlyph(c window.Control) string {
	switch c {
	case window.ControlMinimize:
		return config.ButtonMinimize
	case window.ControlMaximize:
		return config.GetButtonMaximize()
	case window.ControlRestore:
		return config.GetButtonRestore()
	default:
		return config.ButtonClose
	}
}

func (d *Desktop) renderWindow() *lipgloss.Layer {
	f, ok := d.windowFrame()
	if !ok {
		return nil
	}
	w := f.Outer.W

	var buttons strings.Builder
	for _, b := range f.Buttons {
		buttons.WriteString(controlGlyph(b.Control))
	}
	buttonStyle := lipgloss.NewStyle().Background(theme.ChromeBg()).Foreground(theme.ChromeFg())
	titleWidth := max(w-lipgloss.Width(buttons.String()), 0)
	title := " " + d.win.Icon() + " " + d.win.Title()
	header := lipgloss.NewStyle().
		Background(theme.TitleBg()).
		Foreground(theme.TitleFg()).
		Bold(true).
		Width(titleWidth).
		Render(ansi.Truncate(title, titleWidth, "…")) +
		buttonStyle.Render(buttons.String())
	header = ansi.Truncate(header, w, "")

	parts := []string{header}
	if f.Body.H > 0 {
		body := lipgloss.NewStyle().
			Background(theme.BodyBg()).
			Foreground(theme.BodyFg()).
			Padding(0, 1).
			Width(w).
			Height(f.Body.H).
			MaxHeight(f.Body.H).
			Render(d.winBody)
		parts = append(parts, body)

		footer := lipgloss.NewStyle().Background(theme.ChromeBg()).Foreground(theme.ChromeShadow())
		fill := footer.Render(strings.Repeat(" ", w-f.Grip.W))
		if f.Grip.W > 0 {
			fill += footer.Width(f.Grip.W).Align(lipgloss.Right).Render(config.GetResizeGrip())
		}
		parts = append(parts, fill)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	clipped, x, y := clipToViewport(content, f.Outer.X, f.Outer.Y, d.Width, d.Height)
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(config.ZIndexWindow).ID(d.win.ID)
}

func (d *Desktop) renderTaskbar() *lipgloss.Layer {
	tb := d.taskbarRect()
	face := lipgloss.NewStyle().Background(theme.ChromeBg()).Foreground(theme.ChromeFg())

	start := face.Bold(true).Render("[" + config.StartLabel + "]")
	if d.ShowLogs {
		start = face.Bold(true).Reverse(true).Render("[" + config.StartLabel + "]")
	}

	var tray []string
	if config.ShowTray {
		tray = append(tray, d.trayText)
	}
	if !config.HideClock {
		tray = append(tray, d.clockText)
	}
	right := ""
	if len(tray) > 0 {
		right = lipgloss.NewStyle().
			Background(theme.ChromeBg()).
			Foreground(theme.ChromeFg()).
			Render(" " + strings.Join(tray, " │ ") + " ")
	}

	gap := max(tb.W-lipgloss.Width(start)-lipgloss.Width(right), 0)
	middle := ansi.Truncate(start+face.Render(strings.Repeat(" ", gap))+right, tb.W, "")

	blank := face.Width(tb.W).Render("")
	lines := make([]string, tb.H)
	for i := range lines {
		lines[i] = blank
	}
	if tb.H > 0 {
		lines[tb.H/2] = middle
		lines[0] = lipgloss.NewStyle().
			Background(theme.ChromeBg()).
			Foreground(theme.ChromeHighlight()).
			Render(strings.Repeat("▔", tb.W))
	}

	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(0).Y(tb.Y).Z(config.ZIndexTaskbar).ID("taskbar")
}

func (d *Desktop) renderLogPanel() *lipgloss.Layer {
	msgs := d.LogMessages
	if len(msgs) > logPanelLines {
		msgs = msgs[len(msgs)-logPanelLines:]
	}
	width := min(60, max(d.Width-2, 10))

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Event Log")}
	if len(msgs) == 0 {
		lines = append(lines, "(empty)")
	}
	for _, m := range msgs {
		line := m.Time.Format("15:04:05") + " " + m.Level + " " + m.Message
		lines = append(lines, ansi.Truncate(line, width-2, "…"))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.ChromeShadow()).
		Background(theme.ChromeBg()).
		Foreground(theme.ChromeFg()).
		Width(width).
		Render(strings.Join(lines, "\n"))

	y := max(d.taskbarRect().Y-lipgloss.Height(panel), 0)
	return lipgloss.NewLayer(panel).X(0).Y(y).Z(config.ZIndexTaskbar + 1).ID("log")
}

// clipToViewport cuts the parts of content that fall outside a
// viewportWidth x viewportHeight screen when drawn at (x, y), and returns the
// remaining content with its on-screen position.
func clipToViewport(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	width := 0
	if len(lines) > 0 {
		width = ansi.StringWidth(lines[0])
	}

	if x+width <= 0 || x >= viewportWidth || y+len(lines) <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop, clipLeft := max(-y, 0), max(-x, 0)
	finalX, finalY := max(x, 0), max(y, 0)

	lines = lines[clipTop:]
	if maxLines := viewportHeight - finalY; maxLines < len(lines) {
		lines = lines[:maxLines]
	}

	right := clipLeft + (viewportWidth - finalX)
	if clipLeft > 0 || x+width > viewportWidth {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, clipLeft, right)
		}
	}
	return strings.Join(lines, "\n"), finalX, finalY
}
