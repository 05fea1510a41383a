// Package transcript compares a produced transcript with an expected one.
package transcript

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/depgraph/internal/messages"
)

const (
	// DefaultDiffMaxLines is the default maximum number of diff lines shown.
	DefaultDiffMaxLines = 40
	// DiffLinesFlagName is the CLI flag used to raise the diff line cap.
	DiffLinesFlagName = "--diff-lines"
)

// ErrMismatch reports a transcript that differs from the expected output.
var ErrMismatch = errors.New(messages.TranscriptErrMismatch)

// Result describes a comparison. UnifiedDiff is empty when the transcripts match.
type Result struct {
	Name        string
	UnifiedDiff string
	Truncated   bool
}

// Compare diffs actual against expected after normalizing line endings. It returns
// ErrMismatch (wrapped) together with the capped unified diff when they differ.
func Compare(name string, expected string, actual string, maxLines int) (Result, error) {
	expected = normalize(expected)
	actual = normalize(actual)
	result := Result{Name: name}
	if expected == actual {
		return result, nil
	}
	result.UnifiedDiff, result.Truncated = renderTruncatedUnifiedDiff(
		fmt.Sprintf(messages.TranscriptExpectedLabel, name),
		fmt.Sprintf(messages.TranscriptActualLabel, name),
		expected,
		actual,
		maxLines,
	)
	return result, fmt.Errorf(messages.TranscriptMismatchFmt, ErrMismatch, name)
}

// CompareFile reads the expected transcript from path and compares actual with it.
func CompareFile(path string, actual string, maxLines int) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Name: path}, fmt.Errorf(messages.TranscriptReadExpectedFmt, path, err)
	}
	return Compare(path, string(data), actual, maxLines)
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return ensureTrailingNewline(strings.TrimRight(content, "\n"))
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(truncated, fmt.Sprintf(messages.TranscriptTruncatedFmt, limit, DiffLinesFlagName))
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
