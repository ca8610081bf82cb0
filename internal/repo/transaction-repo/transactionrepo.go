package transactionrepo

import (
	"context"
	"errors"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, pontos, data, descricao, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, transaction.UserID, transaction.Pontos, transaction.Data, transaction.Descricao, transaction.Status).Scan(&transaction.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, pontos, data, descricao, status
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var transaction domain.Transaction
	err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.Pontos, &transaction.Data, &transaction.Descricao, &transaction.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, pontos, data, descricao, status
        FROM transactions
        WHERE user_id = $1
        ORDER BY data DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, pontos, data, descricao, status
        FROM transactions
        ORDER BY data DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// UpdateStatus transitions a transaction from one status to another. The
// WHERE clause on the current status makes the transition a compare-and-set:
// a false return means the transaction was not in the expected status, and
// nothing changed. pontos and user_id are never touched after insert.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from string, to string) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.Pontos, &transaction.Data, &transaction.Descricao, &transaction.Status)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
