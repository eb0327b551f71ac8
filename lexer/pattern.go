// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/benbjohnson/css
//
// Patterns are not mutually exclusive at the character level; priority
// order is the disambiguation mechanism. More structured forms run
// before the selector catch-all & longer color shapes before shorter
// ones.

import (
	"regexp"

	"golang.org/x/exp/slices"
)

type (
	// matchFunc reports the width of a match anchored at the front of
	// rest, 0 declines.
	matchFunc func(rest string) int

	// pattern pairs a token Kind with its recognizer & dispatch
	// priority.
	pattern struct {
		match    matchFunc
		id       Kind
		priority int
	}
)

// Recognizer priorities 1 (end of input) & 3 (comments) are handled
// directly by the dispatch loop; neither produces a table entry.
const (
	prioSeparator = 2
	prioNewline   = 4
	prioBrace     = 5
	prioColor     = 6
	prioString    = 7
	prioUnit      = 8
	prioBoolean   = 9
	prioReference = 10
	prioSpace     = 11
	prioSelector  = 12
)

var (
	separatorRe = regexp.MustCompile(`^[;,][ \t]*`)

	// Line comments swallow their terminating newline; block comments
	// close implicitly at end of input.
	commentRe = regexp.MustCompile(`^(?://[^\n]*\n?|/\*(?s:.*?)(?:\*/|$))`)

	braceRe = regexp.MustCompile(`^[{}]`)

	// 8 before 6 before 3 so `#aabbccdd` is not read as `#aabbcc` plus
	// leftover digits.
	colorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3})[ \t]*`)

	// Unterminated strings close implicitly at end of input.
	stringRe = regexp.MustCompile(`^(?:"[^"]*(?:"|$)|'[^']*(?:'|$))[ \t]*`)

	unitRe = regexp.MustCompile(`^(-?(?:[0-9]+\.[0-9]+|[0-9]+|\.[0-9]+))(?:px|pt|pc|cm|mm|in|rem|em|ex|ch|vmin|vmax|vw|vh|%)?[ \t]*`)

	booleanRe = regexp.MustCompile(`^(?:true|false)\b[ \t]*`)

	referenceRe = regexp.MustCompile(`^@?-*[A-Za-z_$][A-Za-z0-9_$-]*`)

	// The newline recognizer is a declining stub, so the whitespace
	// run accepts newlines to keep every character consumable.
	whitespaceRe = regexp.MustCompile(`^[ \t\n]+`)
)

// patterns is sorted by priority once at package init; the dispatch
// walks it in order & stops at the first match.
var patterns = []pattern{
	{id: KindSeparator, priority: prioSeparator, match: reMatch(separatorRe)},
	{id: KindWhitespace, priority: prioNewline, match: matchNewline},
	{id: KindBrace, priority: prioBrace, match: reMatch(braceRe)},
	{id: KindColor, priority: prioColor, match: reMatch(colorRe)},
	{id: KindString, priority: prioString, match: reMatch(stringRe)},
	{id: KindUnit, priority: prioUnit, match: reMatch(unitRe)},
	{id: KindBoolean, priority: prioBoolean, match: reMatch(booleanRe)},
	{id: KindReference, priority: prioReference, match: reMatch(referenceRe)},
	{id: KindWhitespace, priority: prioSpace, match: reMatch(whitespaceRe)},
	{id: KindSelector, priority: prioSelector, match: matchSelector},
}

func init() {
	slices.SortStableFunc(patterns, func(a, b pattern) int { return a.priority - b.priority })
}

// reMatch wraps an anchored regexp into a matchFunc.
func reMatch(re *regexp.Regexp) matchFunc {
	return func(rest string) (width int) {
		if loc := re.FindStringIndex(rest); loc != nil {
			width = loc[1]
		}

		return
	}
}

// matchNewline is a reserved slot for indentation-sensitive newline
// handling; it declines unconditionally & newlines fall through to the
// whitespace run.
func matchNewline(string) int { return 0 }

// matchSelector is the catch-all: a run of at least one character up
// to the first unescaped `//`, comma, newline or '{'.
//
// A hand scan instead of a regexp; RE2 lacks the lookaround needed for
// the escape check on the comment opener.
func matchSelector(rest string) (width int) {
	for width < len(rest) {
		switch c := rest[width]; {
		case c == ',' || c == '\n' || c == '{':
			return
		case c == '/' && width+1 < len(rest) && rest[width+1] == '/' &&
			(width == 0 || rest[width-1] != '\\'):
			return
		}

		width++
	}

	return
}
