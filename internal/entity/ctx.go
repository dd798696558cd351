package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyTerminal CtxKey = iota
)

// Terminal is a payment kiosk or cashier station authenticated by a signed token.
type Terminal struct {
	ID string
}

func CtxWithTerminal(ctx context.Context, t Terminal) context.Context {
	return context.WithValue(ctx, CtxKeyTerminal, t)
}

// TerminalFromCtx returns the terminal from context or ErrUnauthenticated if it is absent.
func TerminalFromCtx(ctx context.Context) (Terminal, error) {
	t, ok := ctx.Value(CtxKeyTerminal).(Terminal)
	if !ok {
		return t, ErrUnauthenticated
	}

	return t, nil
}
