package memstore

import (
	"context"
	"fmt"
	"sync"
)

// lockTable hands out one exclusive lock per row key. Waiting honours
// context cancellation, like a Postgres lock wait with a statement timeout.
type lockTable struct {
	mu   sync.Mutex
	rows map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{rows: make(map[string]chan struct{})}
}

func (l *lockTable) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.rows[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.rows[key] = ch
	}
	return ch
}

func (l *lockTable) acquire(ctx context.Context, key string) error {
	select {
	case l.slot(key) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for lock %s: %w", key, ctx.Err())
	}
}

func (l *lockTable) release(key string) {
	<-l.slot(key)
}

// txState is what a transaction owns: held row locks and the undo journal.
type txState struct {
	held map[string]struct{}
	undo []func()
}

func eventKey(id int64) string  { return fmt.Sprintf("event:%d", id) }
func ticketKey(id int64) string { return fmt.Sprintf("ticket:%d", id) }
