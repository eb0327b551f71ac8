// SPDX-License-Identifier: NONE
package types

import (
	"fmt"
	"strings"

	"gitlab.com/fisherprime/cascade/lexer"
)

type (
	// TokenSlice for `lexer.Token`.
	TokenSlice []lexer.Token
)

// Locate the first token of some `lexer.Kind` in the `TokenSlice`.
func (sl *TokenSlice) Locate(id lexer.Kind) (resl int) {
	resl = -1

	for index := range *sl {
		if (*sl)[index].ID == id {
			resl = index
			return
		}
	}

	return
}

// Kinds lists the token kinds for the `TokenSlice` in order.
func (sl *TokenSlice) Kinds() (dst []lexer.Kind) {
	dst = make([]lexer.Kind, len(*sl))
	for index := range *sl {
		dst[index] = (*sl)[index].ID
	}

	return
}

// Texts lists the literal consumed spans for the `TokenSlice` in order.
func (sl *TokenSlice) Texts() (dst []string) {
	dst = make([]string, len(*sl))
	for index := range *sl {
		dst[index] = (*sl)[index].Text
	}

	return
}

// Concat joins the literal consumed spans; for a comment-free source
// this reconstructs the normalized input exactly.
func (sl *TokenSlice) Concat() string {
	buffer := strings.Builder{}
	for index := range *sl {
		buffer.WriteString((*sl)[index].Text)
	}

	return buffer.String()
}

// String is the `fmt.Stringer` interface implementation for `TokenSlice`.
func (sl *TokenSlice) String() (dst string) {
	lenSl := len(*sl)
	if lenSl > 0 {
		buffer := strings.Builder{}
		fmt.Fprintf(&buffer, "[%s", (*sl)[0].ID)
		for index := 1; index < lenSl; index++ {
			fmt.Fprintf(&buffer, ",%s", (*sl)[index].ID)
		}
		buffer.WriteString("]")

		dst = buffer.String()
	}

	return
}
