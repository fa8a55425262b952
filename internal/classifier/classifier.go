// Package classifier implements the doc comment block check: it groups
// consecutive doc comment lines into blocks, picks each block's last prose
// line, and flags it when it does not end with terminal punctuation.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	outerMarker = "///"
	innerMarker = "//!"
	fenceMarker = "```"
)

// Violation reports a doc comment block whose final prose line does not end
// with '.', '?' or '!'. Line is 1-indexed; Text is the raw comment text after
// the marker, leading whitespace included.
type Violation struct {
	Filepath string `json:"filepath"`
	Line     int    `json:"line"`
	Text     string `json:"text"`
}

// IsDocComment reports whether a physical line is a doc comment line: after
// stripping leading whitespace it starts with /// or //!. Both marker kinds
// are treated identically.
func IsDocComment(line string) bool {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	return strings.HasPrefix(stripped, outerMarker) || strings.HasPrefix(stripped, innerMarker)
}

// ExtractText returns the comment text after the /// or //! marker.
// Whitespace after the marker is preserved so the indentation exemption can
// see it.
func ExtractText(line string) string {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(stripped, outerMarker) || strings.HasPrefix(stripped, innerMarker) {
		return stripped[len(outerMarker):]
	}
	return ""
}

// CheckLines scans a file's line sequence for doc comment blocks and returns
// the violations in line order. It is a pure function of its input: no state
// survives between calls.
func CheckLines(filepath string, lines []string) []Violation {
	var violations []Violation

	i := 0
	for i < len(lines) {
		if !IsDocComment(lines[i]) {
			i++
			continue
		}

		// Collect the maximal run of consecutive doc comment lines, tracking
		// code fences and the last candidate prose line as we go.
		blockLen := 0
		inCodeFence := false
		lastLine := 0
		lastText := ""
		haveLast := false
		for i < len(lines) && IsDocComment(lines[i]) {
			text := ExtractText(lines[i])
			i++
			blockLen++
			stripped := strings.TrimSpace(text)
			if strings.HasPrefix(stripped, fenceMarker) {
				inCodeFence = !inCodeFence
			}
			// The fence state flips before this check, so an opening fence
			// line is already "inside"; the explicit fence-prefix test keeps
			// the closing line excluded as well.
			if inCodeFence || stripped == "" || strings.HasPrefix(stripped, fenceMarker) {
				continue
			}
			lastLine = i
			lastText = text
			haveLast = true
		}

		// Block was all blank or fenced.
		if !haveLast {
			continue
		}
		if shouldSkip(lastText) {
			continue
		}
		// Single-line blocks starting lowercase are labels, not prose.
		if blockLen == 1 && startsLower(lastText) {
			continue
		}

		stripped := strings.TrimSpace(lastText)
		if !strings.HasSuffix(stripped, ".") && !strings.HasSuffix(stripped, "?") && !strings.HasSuffix(stripped, "!") {
			violations = append(violations, Violation{Filepath: filepath, Line: lastLine, Text: lastText})
		}
	}

	return violations
}

// shouldSkip reports whether a block's final comment line is exempt from the
// punctuation requirement: fences, indented example lines, markdown headers,
// bullets, lines introducing a list or code block with ':', bare code
// references, math expressions, and horizontal rules.
func shouldSkip(text string) bool {
	stripped := strings.TrimSpace(text)
	skip := strings.HasPrefix(stripped, fenceMarker) ||
		strings.HasPrefix(text, "  ") ||
		strings.HasPrefix(text, "\t") ||
		isHeading(stripped) ||
		isBullet(stripped) ||
		strings.HasSuffix(strings.TrimRightFunc(text, unicode.IsSpace), ":") ||
		isCodeReference(stripped) ||
		isMathExpression(text) ||
		strings.HasPrefix(stripped, "----")

	// Anything containing a statement terminator or brace is inline code,
	// regardless of the checks above.
	return skip || strings.ContainsAny(text, ";{}")
}

// isHeading matches markdown headers: one or more '#' followed by whitespace.
func isHeading(stripped string) bool {
	rest := strings.TrimLeft(stripped, "#")
	if len(rest) == len(stripped) || rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

// isBullet matches list items: '*' or '-' followed by whitespace.
func isBullet(stripped string) bool {
	if len(stripped) < 2 || (stripped[0] != '*' && stripped[0] != '-') {
		return false
	}
	r, _ := utf8.DecodeRuneInString(stripped[1:])
	return unicode.IsSpace(r)
}

// isCodeReference matches a single token fully wrapped in one pair of
// backticks, e.g. `SomeType<T>`.
func isCodeReference(stripped string) bool {
	if len(stripped) < 3 || stripped[0] != '`' || stripped[len(stripped)-1] != '`' {
		return false
	}
	return !strings.Contains(stripped[1:len(stripped)-1], "`")
}

// isMathExpression matches lines made solely of digits, whitespace, and the
// operator/bracket characters +-*/()[]<>, (bare numbers, ranges, formulas).
func isMathExpression(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune("+-*/()[]<>,", r) {
			continue
		}
		return false
	}
	return true
}

func startsLower(text string) bool {
	stripped := strings.TrimSpace(text)
	if stripped == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(stripped)
	return unicode.IsLower(r)
}
