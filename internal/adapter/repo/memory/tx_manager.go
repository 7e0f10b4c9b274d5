package memory

import "context"

// TxManager serializes transactions by holding the store's write lock
// for the duration of fn. The context is marked so repo methods called
// inside fn skip their own locking.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(withTx(ctx))
}
