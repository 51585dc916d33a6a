// Package memstore is an in-process repository.Store. It keeps the locking
// contract of the Postgres store: LockEvent and LockTicket hold a per-row
// lock until the transaction ends, and a failed transaction is undone from
// a journal. It backs the service tests and the "memory" storage driver.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/repository"
)

type waitKey struct {
	eventID int64
	userID  string
}

type reminderKey struct {
	eventID int64
	window  domain.ReminderWindow
}

type db struct {
	mu  sync.Mutex
	seq int64

	events        map[int64]domain.Event
	categories    map[int64]map[string]struct{}
	flags         map[int64][]domain.EventFlag
	tickets       map[int64]domain.Ticket
	codes         map[string]int64
	waitlist      map[waitKey]domain.WaitlistEntry
	users         map[string]domain.Role
	reminders     map[reminderKey]time.Time
	notifications map[int64]domain.Notification

	locks *lockTable
}

type Store struct {
	repository.Repository
	db *db
}

func New() *Store {
	d := &db{
		events:        make(map[int64]domain.Event),
		categories:    make(map[int64]map[string]struct{}),
		flags:         make(map[int64][]domain.EventFlag),
		tickets:       make(map[int64]domain.Ticket),
		codes:         make(map[string]int64),
		waitlist:      make(map[waitKey]domain.WaitlistEntry),
		users:         make(map[string]domain.Role),
		reminders:     make(map[reminderKey]time.Time),
		notifications: make(map[int64]domain.Notification),
		locks:         newLockTable(),
	}
	return &Store{Repository: &repo{db: d}, db: d}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx repository.Repository) error) (err error) {
	tx := &txState{held: make(map[string]struct{})}
	r := &repo{db: s.db, tx: tx}

	defer func() {
		if p := recover(); p != nil {
			s.rollback(tx)
			panic(p)
		}
		if err != nil {
			s.rollback(tx)
			return
		}
		s.release(tx)
	}()

	return fn(ctx, r)
}

func (s *Store) rollback(tx *txState) {
	s.db.mu.Lock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
	s.db.mu.Unlock()
	s.release(tx)
}

func (s *Store) release(tx *txState) {
	keys := make([]string, 0, len(tx.held))
	for k := range tx.held {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.db.locks.release(k)
	}
	tx.held = nil
}

var _ repository.Store = (*Store)(nil)
