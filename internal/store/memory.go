package store

import (
	"sync"

	"tally/internal/model"
)

// MemoryStore keeps the ledger in an ordered slice. One mutex serializes
// all operations so id assignment never races when the store is shared.
type MemoryStore struct {
	mu    sync.Mutex
	items []model.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore builds a store preloaded with existing records,
// keeping their ids and order as given.
func NewSeededMemoryStore(items []model.Transaction) *MemoryStore {
	s := &MemoryStore{items: make([]model.Transaction, len(items))}
	copy(s.items, items)
	return s
}

func (s *MemoryStore) Insert(in model.TransactionInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, t := range s.items {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	tx := model.NewTransaction(maxID+1, in)
	s.items = append(s.items, tx)
	return tx, nil
}

func (s *MemoryStore) GetAll() ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Transaction, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) GetByID(id int64) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.items {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Transaction{}, &model.NotFoundError{ID: id}
}

func (s *MemoryStore) Update(id int64, in model.TransactionInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.items {
		if t.ID == id {
			tx := model.NewTransaction(id, in)
			s.items[i] = tx
			return tx, nil
		}
	}
	return model.Transaction{}, &model.NotFoundError{ID: id}
}

func (s *MemoryStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &model.NotFoundError{ID: id}
}

func (s *MemoryStore) Close() error {
	return nil
}
