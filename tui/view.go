package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/icon"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/style"
	"github.com/curtain-cli/curtain/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

const (
	paneHeight   = 5
	minPaneWidth = 24
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	snap := b.session.Snapshot()

	lines := []string{
		b.viewHeader(snap),
		"",
		b.viewPane(snap),
		"",
	}
	lines = append(lines, b.viewControls(snap)...)

	if snap.State == session.Ended && b.lastError != nil {
		lines = append(lines, "", wrap.String(style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+b.lastError.Error()), b.width))
	}

	return b.notifier.View(b.renderLines(true, lines))
}

func (b *statefulBubble) viewHeader(snap session.Snapshot) string {
	title := truncate.StringWithTail(b.options.Title, uint(util.Max(8, b.width-24)), "…")
	return style.Title(title) + " " + stateTag(snap)
}

func stateTag(snap session.Snapshot) string {
	var (
		glyph string
		bg    lipgloss.Color
	)

	switch snap.State {
	case session.Loading:
		glyph, bg = icon.Get(icon.Loading), style.Yellow
	case session.Playing:
		glyph, bg = icon.Get(icon.Play), style.Green
	case session.Paused:
		glyph, bg = icon.Get(icon.Pause), style.Peach
	case session.Ended:
		glyph, bg = icon.Get(icon.Ended), style.Overlay
	default:
		glyph, bg = icon.Get(icon.Stop), style.Overlay
	}

	return style.Tag(style.Base, bg)(strings.TrimSpace(glyph + " " + snap.State.String()))
}

// viewPane draws the preview layer over the surface layer, each at its own opacity.
func (b *statefulBubble) viewPane(snap session.Snapshot) string {
	width := util.Clamp(int(float64(b.paneWidth())*snap.Scale), minPaneWidth, util.Max(minPaneWidth, b.width))
	inner := width - paneStyle.GetHorizontalFrameSize()

	fit := func(s string) string {
		return truncate.StringWithTail(s, uint(util.Max(1, inner)), "…")
	}

	preview := b.options.Title
	if b.options.ShowThumbnailPath && snap.Thumbnail != "" {
		preview = snap.Thumbnail
	}

	var surface string
	switch {
	case !snap.SurfaceMounted:
	case snap.State == session.Loading:
		surface = b.spinnerC.View() + " loading " + b.options.Player
	case snap.State == session.Paused:
		surface = icon.Get(icon.Pause) + " " + b.options.Player
	default:
		surface = icon.Get(icon.Play) + " " + b.options.Player
	}
	if snap.SurfaceMounted && snap.State != session.Loading {
		surface += fmt.Sprintf(" %d%%", int(snap.Position.Progress()*100))
	}

	content := []string{
		style.Opacity(style.Subtext, snap.PreviewOpacity)(fit(preview)),
		"",
		style.Opacity(style.Text, snap.SurfaceOpacity)(fit(surface)),
	}

	border := style.Blend(style.BorderColor, style.ActiveBorderColor, snap.SurfaceOpacity)
	return paneStyle.
		Width(inner).
		Height(paneHeight - paneStyle.GetVerticalFrameSize()).
		BorderForeground(border).
		Render(strings.Join(content, "\n"))
}

// viewControls draws the overlay at its current opacity. A hidden overlay keeps
// its lines so the layout does not jump.
func (b *statefulBubble) viewControls(snap session.Snapshot) []string {
	if !snap.ControlsEnabled {
		return nil
	}

	alpha := snap.ControlsOpacity
	fade := style.Opacity(style.Text, alpha)

	timing := fmt.Sprintf("%s / %s", util.Timestamp(snap.Position.CurrentTime), util.Timestamp(snap.Position.Duration))
	bar := b.progressC.ViewAs(snap.Position.Progress())
	if alpha < 1 {
		bar = fade(strings.Repeat("━", b.progressC.Width))
	}

	lines := []string{
		bar + " " + fade(timing),
		fade(buttonRow(snap)),
	}

	if snap.SpeedMenuOpen {
		lines = append(lines, "")
		for i := len(session.Speeds) - 1; i >= 0; i-- {
			speed := session.Speeds[i]
			label := session.SpeedLabel(speed)

			switch {
			case i == b.speedCursor:
				label = style.Fg(style.AccentColor)(icon.Get(icon.Mark) + " " + label)
			case speed == snap.Speed:
				label = "  " + style.Fg(color.Orange)(label)
			default:
				label = "  " + label
			}
			lines = append(lines, label)
		}
	}

	return lines
}

func buttonRow(snap session.Snapshot) string {
	buttons := snap.Layout
	var row []string

	if buttons.Seek {
		row = append(row, icon.Get(icon.Rewind)+" 10s")
	}
	if buttons.PlayPause {
		glyph := icon.Get(icon.Pause)
		if snap.State != session.Playing {
			glyph = icon.Get(icon.Play)
		}
		row = append(row, glyph)
	}
	if buttons.Seek {
		row = append(row, "10s "+icon.Get(icon.Forward))
	}
	if buttons.Speed {
		row = append(row, icon.Get(icon.Speed)+" "+session.SpeedLabel(snap.Speed))
	}
	if buttons.Resize {
		glyph := icon.Get(icon.Minimize)
		if snap.Minimized {
			glyph = icon.Get(icon.Maximize)
		}
		row = append(row, glyph)
	}
	if buttons.Stop {
		row = append(row, icon.Get(icon.Stop))
	}
	if buttons.Close {
		row = append(row, icon.Get(icon.Close))
	}

	return strings.Join(row, "   ")
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
