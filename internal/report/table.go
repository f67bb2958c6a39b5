// Package report renders search candidates and plugin descriptors as tables.
package report

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/towelWet/TowelHost/internal/color"
	"github.com/towelWet/TowelHost/internal/search"
	"github.com/towelWet/TowelHost/pkg/plugin"
)

const (
	markFound   = "✓"
	markMissing = "-"
	markInvalid = "✗"
)

// Row is one candidate with its lookup outcome.
type Row struct {
	Candidate search.Candidate
	Exists    bool
}

// Check marks each candidate with whether its path exists. Only the first
// existing candidate would be loaded.
func Check(candidates []search.Candidate, exists func(string) bool) []Row {
	rows := make([]Row, len(candidates))

	for i, c := range candidates {
		rows[i] = Row{Candidate: c, Exists: exists(c.Path)}
	}

	return rows
}

// FirstMatch returns the index of the first existing row, or -1.
func FirstMatch(rows []Row) int {
	for i, r := range rows {
		if r.Exists {
			return i
		}
	}

	return -1
}

// RenderCandidates builds the candidate table. The row that would be loaded
// is highlighted.
func RenderCandidates(rows []Row, theme color.Theme) string {
	if len(rows) == 0 {
		return ""
	}

	first := FirstMatch(rows)
	tierW := maxTierWidth(rows)

	t, buf := newTable()
	t.Header([]string{"", "#", "Tier", "Variant", "Path"})

	for i, r := range rows {
		mark := theme.Muted.Render(markMissing)
		path := shortenPath(r.Candidate.Path)

		if r.Exists {
			mark = theme.OK.Render(markFound)
		}

		if i == first {
			path = theme.Label.Render(path)
		}

		_ = t.Append([]string{
			mark,
			strconv.Itoa(i + 1),
			padToWidth(theme.Title.Render(r.Candidate.Tier.String()), tierW),
			r.Candidate.Variant.String(),
			path,
		})
	}

	_ = t.Render()

	return dimBorders(strings.TrimRight(buf.String(), "\n"), theme)
}

// RenderDescriptors builds the descriptor table. Descriptors that formatName
// cannot instantiate are marked invalid.
func RenderDescriptors(descs []plugin.Descriptor, formatName string, theme color.Theme) string {
	if len(descs) == 0 {
		return ""
	}

	t, buf := newTable()
	t.Header([]string{"", "#", "Name", "Kind", "Manufacturer", "Version", "Format"})

	for i, d := range descs {
		mark := theme.OK.Render(markFound)
		if !d.Valid(formatName) {
			mark = theme.Error.Render(markInvalid)
		}

		_ = t.Append([]string{
			mark,
			strconv.Itoa(i + 1),
			d.Name,
			d.Kind(),
			d.Manufacturer,
			d.Version,
			d.FormatName,
		})
	}

	_ = t.Render()

	return dimBorders(strings.TrimRight(buf.String(), "\n"), theme)
}

func newTable() (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	t := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
		tablewriter.WithConfig(tablewriter.NewConfigBuilder().
			WithTrimSpace(tw.Off).
			Row().Formatting().WithAutoWrap(tw.WrapNormal).Build().
			Build().Build()),
	)

	return t, &buf
}

func maxTierWidth(rows []Row) int {
	w := 0

	for _, r := range rows {
		w = max(w, runewidth.StringWidth(r.Candidate.Tier.String()))
	}

	return w
}

// padToWidth right-pads s with spaces so its display width reaches w.
// ANSI escape codes are excluded from width calculation.
func padToWidth(s string, w int) string {
	visible := runewidth.StringWidth(ansi.Strip(s))
	if visible >= w {
		return s
	}

	return s + strings.Repeat(" ", w-visible)
}

// dimBorders applies the muted theme style to all box-drawing border
// characters in the rendered table output.
func dimBorders(s string, theme color.Theme) string {
	for _, ch := range []string{
		"╭", "╮", "╰", "╯", "│", "─", "┬", "┴", "├", "┤", "┼",
	} {
		s = strings.ReplaceAll(s, ch, theme.Muted.Render(ch))
	}

	return s
}

// shortenPath replaces the user's home directory prefix with ~.
func shortenPath(s string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || home == "/" {
		return s
	}

	if s == home {
		return "~"
	}

	if rest, ok := strings.CutPrefix(s, home+string(os.PathSeparator)); ok {
		return "~" + string(os.PathSeparator) + rest
	}

	return s
}
