package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"tally/internal/model"
)

// SQLiteStore is the durable Repository implementation. Rows are read back
// in rowid order, which preserves insertion order, and ids are computed
// with the same max+1 rule as the memory store instead of AUTOINCREMENT.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) Insert(in model.TransactionInput) (model.Transaction, error) {
	tags := model.NormalizeTags(in.Tags)
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to encode tags : %w", err)
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (id, amount, type, category, description, date, tags)
		VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM transactions), ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	err = stmt.QueryRow(in.Amount, string(in.Type), in.Category, in.Description, in.Date, string(tagsJSON)).Scan(&newID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	tx := model.NewTransaction(newID, in)
	tx.Tags = tags
	return tx, nil
}

func (s *SQLiteStore) GetAll() ([]model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, amount, type, category, description, date, tags
		FROM transactions
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var items []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, tx)
	}

	return items, rows.Err()
}

func (s *SQLiteStore) GetByID(id int64) (model.Transaction, error) {
	row := s.db.QueryRow(`
		SELECT id, amount, type, category, description, date, tags
		FROM transactions
		WHERE id = ?
	`, id)

	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, &model.NotFoundError{ID: id}
		}
		return model.Transaction{}, err
	}

	return tx, nil
}

func (s *SQLiteStore) Update(id int64, in model.TransactionInput) (model.Transaction, error) {
	tags := model.NormalizeTags(in.Tags)
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to encode tags : %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE transactions
		SET amount = ?, type = ?, category = ?, description = ?, date = ?, tags = ?
		WHERE id = ?
	`, in.Amount, string(in.Type), in.Category, in.Description, in.Date, string(tagsJSON), id)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to update transaction %d : %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to read affected rows : %w", err)
	}
	if affected == 0 {
		return model.Transaction{}, &model.NotFoundError{ID: id}
	}

	tx := model.NewTransaction(id, in)
	tx.Tags = tags
	return tx, nil
}

func (s *SQLiteStore) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d : %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows : %w", err)
	}
	if affected == 0 {
		return &model.NotFoundError{ID: id}
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var (
		tx       model.Transaction
		txType   string
		tagsJSON string
	)

	err := scan(&tx.ID, &tx.Amount, &txType, &tx.Category, &tx.Description, &tx.Date, &tagsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	tx.Type = model.TransactionType(txType)
	tx.Tags = []string{}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &tx.Tags); err != nil {
			return model.Transaction{}, fmt.Errorf("failed to decode tags for transaction %d: %w", tx.ID, err)
		}
	}

	return tx, nil
}
