// SPDX-License-Identifier: MIT
package cascade

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/cascade/lexer"
	"gitlab.com/fisherprime/cascade/types"
)

const defPoolSize = 10

// Tokenization errors.
var (
	ErrTokenize = errors.New("failed to tokenize source")
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Tokenize drains a Lexer over the source into a TokenSlice, up to &
// including the end-of-stream token.
func Tokenize(ctx context.Context, source string, options ...lexer.Option) (tokens types.TokenSlice, err error) {
	l := lexer.New(source, options...)

	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var tok lexer.Token
		if tok, err = l.NextToken(); err != nil {
			err = fmt.Errorf("%w: %v", ErrTokenize, err)
			return
		}
		tokens = append(tokens, tok)

		if tok.ID == lexer.KindEOS {
			break
		}
	}

	fLogger.Debugf("tokens: %s", spew.Sprint(tokens))

	return
}

// TokenizeAll lexes named sources concurrently on a goroutine pool.
//
// The first tokenization failure wins; a failure discards all results.
func TokenizeAll(ctx context.Context, sources map[string]string, options ...lexer.Option) (tokens map[string]types.TokenSlice, err error) {
	tokens = make(map[string]types.TokenSlice, len(sources))

	pool, err := ants.NewPool(defPoolSize)
	if err != nil {
		return
	}
	defer pool.Release()

	var (
		wg    sync.WaitGroup
		mutex sync.Mutex
	)

	for name := range sources {
		name, source := name, sources[name]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			resl, tokErr := Tokenize(ctx, source, options...)

			mutex.Lock()
			defer mutex.Unlock()

			if tokErr != nil {
				if err == nil {
					err = fmt.Errorf("(%s) %w", name, tokErr)
				}
				return
			}
			tokens[name] = resl
		})
		if submitErr != nil {
			wg.Done()

			mutex.Lock()
			if err == nil {
				err = submitErr
			}
			mutex.Unlock()

			break
		}
	}

	wg.Wait()

	if err != nil {
		tokens = nil
	}

	return
}
