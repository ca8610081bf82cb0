package productrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func productRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "nome", "descricao", "valor_pontos", "imagem_url", "categoria"})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Product
	}{
		{
			name: "Product found",
			id:   1,
			mockSetup: func() {
				rows := productRows().
					AddRow(1, "Kit Rolos", "Kit com 3 rolos", 1500, "https://storage.example.com/public/a.png", "ferramentas")
				mock.ExpectQuery("SELECT id, nome, descricao, valor_pontos, imagem_url, categoria").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Product{
				ID:          1,
				Nome:        "Kit Rolos",
				Descricao:   "Kit com 3 rolos",
				ValorPontos: 1500,
				ImagemURL:   "https://storage.example.com/public/a.png",
				Categoria:   "ferramentas",
			},
		},
		{
			name: "Product not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, nome, descricao, valor_pontos, imagem_url, categoria").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, nome, descricao, valor_pontos, imagem_url, categoria").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		categoria string
		ordem     string
		mockSetup func()
		expected  int
	}{
		{
			name:      "All products ascending",
			categoria: "",
			ordem:     "asc",
			mockSetup: func() {
				rows := productRows().
					AddRow(1, "Trincha", "Trincha 2 pol", 300, "", "ferramentas").
					AddRow(2, "Kit Rolos", "Kit com 3 rolos", 1500, "", "ferramentas")
				mock.ExpectQuery("ORDER BY valor_pontos ASC").
					WithArgs("").
					WillReturnRows(rows)
			},
			expected: 2,
		},
		{
			name:      "Category filter descending",
			categoria: "epi",
			ordem:     "desc",
			mockSetup: func() {
				rows := productRows().
					AddRow(3, "Máscara", "Máscara PFF2", 800, "", "epi")
				mock.ExpectQuery("ORDER BY valor_pontos DESC").
					WithArgs("epi").
					WillReturnRows(rows)
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			products, err := repo.List(context.Background(), tt.categoria, tt.ordem)
			assert.NoError(t, err)
			assert.Len(t, products, tt.expected)
		})
	}
}

func TestRepository_Categories(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"categoria"}).
		AddRow("epi").
		AddRow("ferramentas")
	mock.ExpectQuery("SELECT DISTINCT categoria").
		WillReturnRows(rows)

	categories, err := repo.Categories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"epi", "ferramentas"}, categories)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	product := &domain.Product{
		Nome:        "Pistola de Pintura",
		Descricao:   "Pistola HVLP",
		ValorPontos: 2500,
		ImagemURL:   "https://storage.example.com/public/b.png",
		Categoria:   "ferramentas",
	}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (nome, descricao, valor_pontos, imagem_url, categoria)")).
		WithArgs("Pistola de Pintura", "Pistola HVLP", 2500, "https://storage.example.com/public/b.png", "ferramentas").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	result, err := repo.Create(context.Background(), product)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.ID)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
