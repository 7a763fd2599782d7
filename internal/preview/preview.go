// Package preview renders bounded unified diffs for dry runs.
package preview

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/lvenv/internal/messages"
)

const (
	// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
	DefaultDiffMaxLines = 40
	// DiffLineCapFlagName is the CLI flag name used to raise the diff line cap.
	DiffLineCapFlagName = "--diff-lines"
)

// NormalizeDiffMaxLines maps non-positive caps to DefaultDiffMaxLines.
func NormalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// Unified renders a unified diff from fromContent to toContent capped at maxLines.
// It reports whether lines were dropped. Identical inputs render as "".
func Unified(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := NormalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(
		truncated,
		fmt.Sprintf(messages.PreviewTruncatedFmt, limit, DiffLineCapFlagName),
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
