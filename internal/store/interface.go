package store

import "tally/internal/model"

// Repository is the ledger storage contract. Implementations assign ids as
// max(existing ids)+1 on insert, which means the id of a deleted top record
// can be handed out again later; callers that need ids to never repeat over
// time must not rely on this rule.
type Repository interface {
	// Insert assigns the next id, appends the record, and returns it.
	Insert(in model.TransactionInput) (model.Transaction, error)
	// GetAll returns a snapshot of the ledger in insertion order. The
	// returned slice is the caller's to keep.
	GetAll() ([]model.Transaction, error)
	GetByID(id int64) (model.Transaction, error)
	// Update replaces every field except the id.
	Update(id int64, in model.TransactionInput) (model.Transaction, error)
	Delete(id int64) error

	Close() error
}
