// SPDX-License-Identifier: MIT
package lexer

type (
	// Kind int holding an identifier for Token kinds.
	Kind int

	// Token is an immutable value produced by the Lexer.
	//
	// Text holds the literal span consumed from the normalized source,
	// including any trailing horizontal whitespace the pattern
	// swallowed. Val holds the decoded payload for value-bearing kinds
	// & is nil otherwise.
	Token struct {
		Val  any
		Text string
		ID   Kind
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_              = iota // Consume 0 to start actual numbering at 1.
	KindEOS               // End of the token stream.
	KindOutdent           // Synthesized block outdent, drained at end of input.
	KindSeparator         // ';' or ',' with trailing horizontal whitespace.
	KindBrace             // '{' or '}'.
	KindColor             // '#' + 8, 6 or 3 hex digits.
	KindString            // Single- or double-quoted run.
	KindUnit              // Decimal number with an optional unit suffix.
	KindBoolean           // `true` or `false`, whole word.
	KindReference         // '@'-prefixed reference or bare identifier.
	KindWhitespace        // Run of spaces, tabs & newlines.
	KindSelector          // Free-form selector text, the catch-all.
)

var kindNames = [...]string{
	KindEOS:        "EOS",
	KindOutdent:    "OUTDENT",
	KindSeparator:  "SEPARATOR",
	KindBrace:      "BRACE",
	KindColor:      "COLOR",
	KindString:     "STRING",
	KindUnit:       "UNIT",
	KindBoolean:    "BOOLEAN",
	KindReference:  "REFERENCE",
	KindWhitespace: "WHITESPACE",
	KindSelector:   "SELECTOR",
}

// String is the `fmt.Stringer` interface implementation for `Kind`.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "INVALID"
}
