// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"strconv"
)

type (
	// Color holds channel-wise components decoded from a hex color
	// literal.
	Color struct {
		R, G, B, A uint8
	}

	// ColorFunc decodes a normalized hex string of length 3, 6 or 8
	// (no '#', no whitespace) into a Color.
	//
	// The Lexer's color recognizer delegates to this function; replace
	// it with WithColorFunc to target a different color
	// representation.
	ColorFunc func(hex string) (Color, error)
)

// Color decoding errors.
var (
	ErrInvalidColorLength = errors.New("invalid hex color length")
	ErrInvalidColorDigit  = errors.New("invalid hex color digit")
)

// ParseHexColor is the default ColorFunc.
//
// 3-digit bodies expand each nibble (`f` -> `ff`) with an opaque
// alpha, 6-digit bodies are RGB with an opaque alpha & 8-digit bodies
// are RRGGBBAA.
func ParseHexColor(hex string) (c Color, err error) {
	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidColorDigit, hex)
		return
	}

	switch len(hex) {
	case 3:
		c.R = uint8(value >> 8 & 0xf)
		c.G = uint8(value >> 4 & 0xf)
		c.B = uint8(value & 0xf)

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xff
	case 6:
		c.R = uint8(value >> 16)
		c.G = uint8(value >> 8)
		c.B = uint8(value)
		c.A = 0xff
	case 8:
		c.R = uint8(value >> 24)
		c.G = uint8(value >> 16)
		c.B = uint8(value >> 8)
		c.A = uint8(value)
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidColorLength, len(hex))
	}

	return
}
