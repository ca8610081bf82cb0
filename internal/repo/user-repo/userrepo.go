package userrepo

import (
	"context"

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

const userColumns = "id, nome, email, cpf_cnpj, senha_hash, saldo_total, role, ativo"

func (repo *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Nome, &user.Email, &user.CpfCnpj, &user.SenhaHash, &user.SaldoTotal, &user.Role, &user.Ativo)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := repo.scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := repo.scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (nome, email, cpf_cnpj, senha_hash, saldo_total, role, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Nome, user.Email, user.CpfCnpj, user.SenhaHash, user.SaldoTotal, user.Role, user.Ativo).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET nome = $1, email = $2, cpf_cnpj = $3, senha_hash = $4
		WHERE id = $5
	`
	_, err := repo.db.Exec(ctx, query, user.Nome, user.Email, user.CpfCnpj, user.SenhaHash, user.ID)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Activate is one-way: ativo never goes back to false.
func (repo *Repository) Activate(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET ativo = TRUE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't activate user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) ListByRole(ctx context.Context, role string, ativo bool) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE role = $1 AND ativo = $2
        ORDER BY nome ASC
    `
	rows, err := repo.db.Query(ctx, query, role, ativo)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Nome, &user.Email, &user.CpfCnpj, &user.SenhaHash, &user.SaldoTotal, &user.Role, &user.Ativo)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreditBalance adds pontos to saldo_total unconditionally. pontos may be
// negative for manual corrections.
func (repo *Repository) CreditBalance(ctx context.Context, userID int, pontos int) (int, error) {
	var saldo int
	query := `
		UPDATE users
		SET saldo_total = saldo_total + $1
		WHERE id = $2
		RETURNING saldo_total
	`
	err := repo.db.QueryRow(ctx, query, pontos, userID).Scan(&saldo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, pgx.ErrNoRows
		}
		zap.L().Error("can't credit balance", zap.Error(err))
		return 0, err
	}
	return saldo, nil
}

// DebitBalance subtracts pontos only when the balance covers it. The
// conditional UPDATE serializes concurrent debits on the user row, so two
// racing redemptions can never jointly overdraw. Returns false when the
// balance was insufficient or the user does not exist.
func (repo *Repository) DebitBalance(ctx context.Context, userID int, pontos int) (bool, error) {
	query := `
		UPDATE users
		SET saldo_total = saldo_total - $1
		WHERE id = $2 AND saldo_total >= $1
	`
	tag, err := repo.db.Exec(ctx, query, pontos, userID)
	if err != nil {
		zap.L().Error("can't debit balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
