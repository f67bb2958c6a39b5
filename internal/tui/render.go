// Package tui renders the host status in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/towelWet/TowelHost/internal/color"
	"github.com/towelWet/TowelHost/internal/host"
)

const (
	appTitle             = "TowelHost"
	durationDisplayUnits = 2
)

// Render formats snap as a block of text. uptime is omitted when zero.
func Render(snap host.Snapshot, theme color.Theme, uptime time.Duration) string {
	var b strings.Builder

	title := appTitle
	if snap.Name != "" && snap.Status != host.StatusNoPlugin {
		title = snap.Name
	}

	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(statusStyle(snap.Status, theme).Render(snap.Message))
	b.WriteString("\n")

	if snap.Status.Loaded() {
		b.WriteString("\n")
		writeField(&b, theme, "Plugin", snap.PluginName)

		if snap.Status == host.StatusLoadedWithEditor {
			writeField(&b, theme, "Editor", fmt.Sprintf("%d×%d", snap.EditorWidth, snap.EditorHeight))
		}
	}

	b.WriteString("\n")
	writeField(&b, theme, "Audio", audioLine(snap))

	if snap.AudioError != "" {
		b.WriteString(theme.Warning.Render(snap.AudioError))
		b.WriteString("\n")
	}

	if uptime > 0 {
		writeField(&b, theme, "Uptime", FormatDuration(uptime))
	}

	return b.String()
}

func writeField(b *strings.Builder, theme color.Theme, label, value string) {
	fmt.Fprintf(b, "%s %s\n", theme.Label.Render(label+":"), value)
}

func audioLine(snap host.Snapshot) string {
	if !snap.AudioActive {
		return fmt.Sprintf("no device (%s)", strings.ToLower(snap.AudioState.String()))
	}

	cfg := snap.Audio

	return fmt.Sprintf("%s, %d frames (%s), %d in / %d out, %s",
		humanize.SI(cfg.SampleRate, "Hz"),
		cfg.BlockSize,
		FormatDuration(cfg.BlockDuration()),
		cfg.ActiveInputs,
		cfg.ActiveOutputs,
		strings.ToLower(snap.AudioState.String()),
	)
}

func statusStyle(s host.Status, theme color.Theme) lipgloss.Style {
	switch s {
	case host.StatusLoadFailed:
		return theme.Error
	case host.StatusLoadedNoEditor, host.StatusLoadedWithEditor:
		return theme.OK
	default:
		return theme.Warning
	}
}

// FormatDuration formats d with its two largest units.
func FormatDuration(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(durationDisplayUnits).String()
}
