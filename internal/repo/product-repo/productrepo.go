package productrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT id, nome, descricao, valor_pontos, imagem_url, categoria
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var product domain.Product
	err := row.Scan(&product.ID, &product.Nome, &product.Descricao, &product.ValorPontos, &product.ImagemURL, &product.Categoria)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &product, nil
}

// List returns catalog products, optionally filtered by categoria, ordered
// by valor_pontos. Only "desc" flips the ordering; anything else is asc.
func (r *Repository) List(ctx context.Context, categoria string, ordem string) ([]domain.Product, error) {
	query := `
        SELECT id, nome, descricao, valor_pontos, imagem_url, categoria
        FROM products
        WHERE ($1 = '' OR categoria = $1)
        ORDER BY valor_pontos ASC
    `
	if ordem == "desc" {
		query = `
        SELECT id, nome, descricao, valor_pontos, imagem_url, categoria
        FROM products
        WHERE ($1 = '' OR categoria = $1)
        ORDER BY valor_pontos DESC
    `
	}
	rows, err := r.db.Query(ctx, query, categoria)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(&product.ID, &product.Nome, &product.Descricao, &product.ValorPontos, &product.ImagemURL, &product.Categoria)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	query := `
        SELECT DISTINCT categoria
        FROM products
        ORDER BY categoria ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var categoria string
		if err := rows.Scan(&categoria); err != nil {
			zap.L().Error("can't scan categoria row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, categoria)
	}
	return categories, nil
}

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (nome, descricao, valor_pontos, imagem_url, categoria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, product.Nome, product.Descricao, product.ValorPontos, product.ImagemURL, product.Categoria).Scan(&product.ID)
	if err != nil {
		zap.L().Error("can't save product", zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete product", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
