package memory

import "context"

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

// inTx reports whether RunInTx already holds the store lock, in which
// case repo methods must not lock again.
func inTx(ctx context.Context) bool {
	held, _ := ctx.Value(txKey).(bool)
	return held
}
