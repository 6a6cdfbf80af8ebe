package rewrite

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

const (
	// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
	DefaultDiffMaxLines = 40
	// diffLineCapFlagName is the CLI flag name used to raise per-file diff line caps.
	diffLineCapFlagName = "--diff-lines"
)

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// Preview renders a unified diff between the on-disk content and the current
// in-memory content of f, truncated to maxLines. It reports whether the
// rendering was truncated. An unmodified file renders as an empty diff.
func (f *File) Preview(maxLines int) (string, bool) {
	return renderTruncatedUnifiedDiff(
		f.Path+" (current)",
		f.Path+" (updated)",
		f.original,
		f.content,
		maxLines,
	)
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(
		truncated,
		fmt.Sprintf("... (truncated to %d lines; rerun with %s <n> to see more)", limit, diffLineCapFlagName),
	)
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
