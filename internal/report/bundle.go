package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/towelWet/TowelHost/internal/color"
	hostplugin "github.com/towelWet/TowelHost/internal/plugin"
)

// BundleSummary describes a resolved bundle on disk.
type BundleSummary struct {
	Bundle   *hostplugin.ResolvedBundle
	Size     int64
	Files    int
	Modified time.Time
}

// RenderBundle formats s as labelled lines. now is used for the bundle age.
func RenderBundle(s BundleSummary, theme color.Theme, now time.Time) string {
	var b strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render(label+":"), value)
	}

	field("Name", s.Bundle.Name)
	field("Path", shortenPath(s.Bundle.Path))
	field("Found via", fmt.Sprintf("%s (%s)", s.Bundle.Candidate.Tier, s.Bundle.Candidate.Variant))
	field("Items", humanize.Comma(int64(s.Bundle.ChildCount)))
	field("Size", fmt.Sprintf("%s in %s", humanize.Bytes(uint64(max(s.Size, 0))), plural(s.Files, "file")))

	if !s.Modified.IsZero() {
		age := now.Sub(s.Modified).Truncate(time.Second)
		field("Modified", durafmt.Parse(age).LimitFirstN(2).String()+" ago")
	}

	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return humanize.Comma(int64(n)) + " " + noun + "s"
}
