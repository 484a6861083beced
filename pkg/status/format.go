package status

import (
	"fmt"

	"github.com/fatih/color"
)

// SummaryHeader names the columns returned by FormatRow.
var SummaryHeader = []string{"", "File", "Status", "Replacements", "Detail"}

// symbol returns the marker shown next to a file for its status
func (s FileStatus) symbol() (string, color.Attribute) {
	switch s {
	case StatusModified:
		return "⟳", color.FgBlue
	case StatusUnchanged:
		return "-", color.FgHiBlack
	case StatusSkipped:
		return "⏭", color.FgYellow
	case StatusFailed:
		return "✗", color.FgRed
	default:
		return "?", color.FgWhite
	}
}

// FormatRow formats a tracked file as a summary table row.
func FormatRow(info FileInfo, colored bool) []string {
	sym, attr := info.Status.symbol()
	c := color.New(attr)
	if !colored {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	detail := info.Reason
	if info.Error != nil {
		detail = info.Error.Error()
	}

	return []string{
		c.Sprint(sym),
		info.Path,
		c.Sprint(info.Status.String()),
		fmt.Sprintf("%d", info.Replacements),
		detail,
	}
}

// FormatSummary formats the counts on one line.
func FormatSummary(s Summary, dryRun bool) string {
	line := fmt.Sprintf("%d files: %d modified, %d unchanged, %d skipped, %d failed",
		s.Total(), s.Modified, s.Unchanged, s.Skipped, s.Failed)
	if dryRun {
		line += " (dry run, nothing written)"
	}
	return line
}
