package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLines_TerminalPunctuation(t *testing.T) {
	assert.Empty(t, CheckLines("lib.rs", []string{"/// Returns the value."}))
	assert.Empty(t, CheckLines("lib.rs", []string{"/// Is the value set?"}))
	assert.Empty(t, CheckLines("lib.rs", []string{"/// Panics on overflow!"}))

	vs := CheckLines("lib.rs", []string{"/// Returns the value"})
	require.Len(t, vs, 1)
	assert.Equal(t, Violation{Filepath: "lib.rs", Line: 1, Text: " Returns the value"}, vs[0])
}

func TestCheckLines_SingleLineLowercaseLabel(t *testing.T) {
	// Single-line blocks starting lowercase are labels, not prose.
	assert.Empty(t, CheckLines("lib.rs", []string{"/// ok"}))

	// The heuristic does not apply to multi-line blocks.
	vs := CheckLines("lib.rs", []string{"/// Does the thing.", "/// ok"})
	require.Len(t, vs, 1)
	assert.Equal(t, 2, vs[0].Line)
}

func TestCheckLines_InlineCodeOverride(t *testing.T) {
	for _, line := range []string{"/// let x = 1;", "/// Foo {", "/// }"} {
		assert.Empty(t, CheckLines("lib.rs", []string{line}), "line %q should be exempt", line)
	}
}

func TestCheckLines_CodeFence(t *testing.T) {
	t.Run("nothing after closing fence", func(t *testing.T) {
		lines := []string{
			"/// Example:",
			"/// ```",
			"/// let x = 1",
			"/// ```",
		}
		assert.Empty(t, CheckLines("lib.rs", lines))
	})

	t.Run("prose after closing fence", func(t *testing.T) {
		lines := []string{
			"/// Example:",
			"/// ```",
			"/// let x = 1",
			"/// ```",
			"/// And that is all there is",
		}
		vs := CheckLines("lib.rs", lines)
		require.Len(t, vs, 1)
		assert.Equal(t, 5, vs[0].Line)
		assert.Equal(t, " And that is all there is", vs[0].Text)
	})

	t.Run("opening fence line is never the candidate", func(t *testing.T) {
		vs := CheckLines("lib.rs", []string{"/// Intro", "/// ```"})
		require.Len(t, vs, 1)
		assert.Equal(t, 1, vs[0].Line)
	})

	t.Run("unclosed fence swallows the rest of the block", func(t *testing.T) {
		vs := CheckLines("lib.rs", []string{"/// Opens a fence", "/// ```", "/// inside"})
		require.Len(t, vs, 1)
		assert.Equal(t, 1, vs[0].Line)
	})

	t.Run("all fenced block yields nothing", func(t *testing.T) {
		assert.Empty(t, CheckLines("lib.rs", []string{"/// ```", "/// code", "/// ```"}))
	})
}

func TestCheckLines_Exemptions(t *testing.T) {
	cases := []struct {
		name string
		last string
	}{
		{"bullet dash", "/// - missing terminator"},
		{"bullet star", "/// * item"},
		{"markdown heading", "/// # Safety"},
		{"trailing colon", "/// For example:"},
		{"code reference", "/// `Option<T>`"},
		{"math expression", "/// [0, 10)"},
		{"horizontal rule", "/// ----"},
		{"indented example", "///    output value"},
		{"tab indented", "///\texample"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []string{"/// Has prose first.", tc.last}
			assert.Empty(t, CheckLines("lib.rs", lines))
		})
	}
}

func TestCheckLines_InnerDocMarker(t *testing.T) {
	vs := CheckLines("lib.rs", []string{"//! Module level docs"})
	require.Len(t, vs, 1)
	assert.Equal(t, 1, vs[0].Line)

	// Adjacent //! and /// lines form a single block.
	vs = CheckLines("lib.rs", []string{"//! Top line.", "/// Continues here"})
	require.Len(t, vs, 1)
	assert.Equal(t, 2, vs[0].Line)
}

func TestCheckLines_BlockBoundaries(t *testing.T) {
	lines := []string{
		"/// First block",
		"fn first() {}",
		"",
		"/// Second block.",
		"fn second() {}",
		"/// Third block",
	}

	vs := CheckLines("lib.rs", lines)
	require.Len(t, vs, 2)
	assert.Equal(t, 1, vs[0].Line)
	assert.Equal(t, 6, vs[1].Line)
}

func TestCheckLines_BlankBlock(t *testing.T) {
	assert.Empty(t, CheckLines("lib.rs", []string{"///", "///   "}))
}

func TestCheckLines_Idempotent(t *testing.T) {
	lines := []string{
		"/// Opens the store",
		"fn open() {}",
		"/// Example:",
		"/// ```",
		"/// open()",
		"/// ```",
		"fn example() {}",
		"//! trailing module note",
	}

	first := CheckLines("lib.rs", lines)
	second := CheckLines("lib.rs", lines)
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, 1, first[0].Line)
}

func TestShouldSkip_Boundaries(t *testing.T) {
	if shouldSkip(" #tag") {
		t.Fatal("'#' without following whitespace is not a heading")
	}
	if shouldSkip(" `a`b`") {
		t.Fatal("inner backtick breaks the code reference exemption")
	}
	if shouldSkip(" 1 + x") {
		t.Fatal("letters disqualify the math exemption")
	}
	if !shouldSkip(" vec![1];") {
		t.Fatal("semicolon marks inline code")
	}
}
