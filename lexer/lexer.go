// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser
// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts styling DSL source text into an ordered stream of
	// Tokens, pulled by a downstream parser through PeekToken &
	// NextToken.
	Lexer struct {
		logger  logrus.FieldLogger
		colorFn ColorFunc

		// source is the normalized input; consumed text is never
		// re-examined.
		source string
		// cursor is the offset of the unconsumed suffix of source.
		cursor int

		// lookahead is a FIFO of produced tokens not yet returned to
		// the caller.
		lookahead []Token

		// indents holds pending indentation levels, drained as Outdent
		// tokens at end of input.
		//
		// No recognizer pushes to it; indentation support is a known
		// gap & the stack stays empty in practice.
		indents []int

		// prev is the last token returned by NextToken.
		prev Token

		debug bool
	}
)

const sourceLimit = 512

// Lexing errors.
var (
	ErrInvalidPeekDepth = errors.New("invalid peek depth")

	// ErrNoMatch reports a non-empty buffer no recognizer matches.
	// The selector catch-all makes this unreachable short of a defect
	// in pattern ordering; the failure is fatal rather than degraded,
	// skipping input would break the stream's correspondence to the
	// source.
	ErrNoMatch = errors.New("no pattern matches the remaining input")
)

// New creates a Lexer over the source text, normalizing it once: line
// ending variants collapse to '\n' & trailing whitespace is trimmed to
// a single newline.
func New(source string, options ...Option) *Lexer {
	l := &Lexer{
		logger:  logrus.New(),
		colorFn: ParseHexColor,
		source:  normalize(source),
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

// normalize the raw source; empty input stays empty.
func normalize(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	if source == "" {
		return source
	}

	return strings.TrimRight(source, " \t\n") + "\n"
}

// Source obtains the normalized source text.
func (l *Lexer) Source() string { return l.source }

// Previous obtains the last token returned by NextToken.
func (l *Lexer) Previous() Token { return l.prev }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// PeekToken returns the n-th upcoming token (1-based) without
// consuming it.
//
// Repeated calls with the same n return equal tokens until an
// intervening NextToken.
func (l *Lexer) PeekToken(n int) (tok Token, err error) {
	if n < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidPeekDepth, n)
		return
	}

	for len(l.lookahead) < n {
		if tok, err = l.produce(); err != nil {
			return
		}

		l.lookahead = append(l.lookahead, tok)
	}

	tok = l.lookahead[n-1]

	return
}

// NextToken returns & consumes one token, draining the lookahead queue
// before producing directly.
//
// It always yields a token; once the buffer & queue are exhausted
// every call returns KindEOS, after the one-time Outdent drain.
func (l *Lexer) NextToken() (tok Token, err error) {
	if len(l.lookahead) > 0 {
		tok, l.lookahead = l.lookahead[0], l.lookahead[1:]
	} else if tok, err = l.produce(); err != nil {
		return
	}

	l.prev = tok

	return
}

// produce recognizes one token at the cursor, consuming exactly the
// matched span.
func (l *Lexer) produce() (tok Token, err error) {
	rest := l.source[l.cursor:]
	if len(rest) == 0 {
		if depth := len(l.indents); depth > 0 {
			l.indents = l.indents[:depth-1]
			tok = Token{ID: KindOutdent}

			return
		}

		tok = Token{ID: KindEOS}

		return
	}

	// Comments produce no token; the discarded span is at least two
	// bytes wide, so the shrinking buffer bounds the recursion.
	if loc := commentRe.FindStringIndex(rest); loc != nil {
		l.cursor += loc[1]
		return l.produce()
	}

	for index := range patterns {
		width := patterns[index].match(rest)
		if width < 1 {
			continue
		}

		l.cursor += width
		if tok, err = l.decode(patterns[index].id, rest[:width]); err != nil {
			return
		}

		if l.debug {
			l.logger.Debug("lexer emit: ", spew.Sprint(tok))
		}

		return
	}

	limit := sourceLimit
	if len(rest) < limit {
		limit = len(rest)
	}
	err = fmt.Errorf("%w: %s", ErrNoMatch, spew.Sprint(rest[:limit]))

	return
}

// decode attaches the decoded payload for value-bearing kinds.
func (l *Lexer) decode(id Kind, text string) (tok Token, err error) {
	tok = Token{ID: id, Text: text}

	switch id {
	case KindBrace, KindReference, KindSelector:
		tok.Val = text
	case KindColor:
		var c Color
		if c, err = l.colorFn(strings.TrimRight(text, " \t")[1:]); err != nil {
			return
		}
		tok.Val = c
	case KindString:
		tok.Val = unquote(strings.TrimRight(text, " \t"))
	case KindUnit:
		// The unit suffix is matched but not retained; only the
		// magnitude survives decoding.
		var value float64
		if value, err = strconv.ParseFloat(unitRe.FindStringSubmatch(text)[1], 64); err != nil {
			return
		}
		tok.Val = value
	case KindBoolean:
		tok.Val = strings.TrimRight(text, " \t") == "true"
	}

	return
}

// unquote strips the surrounding quotes, tolerating a missing closing
// quote at end of input.
func unquote(text string) string {
	quote := text[0]

	text = text[1:]
	if last := len(text) - 1; last >= 0 && text[last] == quote {
		text = text[:last]
	}

	return text
}
