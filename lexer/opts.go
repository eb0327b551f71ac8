// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithColorFunc configures the hex color decoding collaborator.
func WithColorFunc(fn ColorFunc) Option { return func(l *Lexer) { l.colorFn = fn } }
