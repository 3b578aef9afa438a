package service

import (
	"fmt"

	"tally/internal/analytics"
	"tally/internal/model"
	"tally/internal/query"
	"tally/internal/store"
)

// TransactionService validates caller input and drives the repository.
// Derived views (analytics, filtered listings) are computed from a fresh
// snapshot on every call.
type TransactionService struct {
	repo store.Repository
}

func NewTransactionService(repo store.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

func (ts *TransactionService) Create(in model.TransactionInput) (model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return model.Transaction{}, err
	}

	tx, err := ts.repo.Insert(in)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

func (ts *TransactionService) GetAll() ([]model.Transaction, error) {
	items, err := ts.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return items, nil
}

func (ts *TransactionService) GetByID(id int64) (model.Transaction, error) {
	return ts.repo.GetByID(id)
}

// Update replaces every caller-supplied field of the record while keeping
// its id. The same validation rules as Create apply.
func (ts *TransactionService) Update(id int64, in model.TransactionInput) (model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return ts.repo.Update(id, in)
}

func (ts *TransactionService) Delete(id int64) error {
	return ts.repo.Delete(id)
}

// Analytics summarizes the current ledger.
func (ts *TransactionService) Analytics() (analytics.Summary, error) {
	items, err := ts.repo.GetAll()
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("failed to load ledger for analytics: %w", err)
	}
	return analytics.Summarize(items), nil
}

// FilterAndSearch lists the ledger through the query engine.
func (ts *TransactionService) FilterAndSearch(filter query.TypeFilter, searchTerm string) ([]model.Transaction, error) {
	items, err := ts.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for search: %w", err)
	}
	return query.Apply(items, filter, searchTerm), nil
}
