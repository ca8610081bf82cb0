package repo

import (
	"github.com/andrehsilva/novomundodastintas/internal/pg"
	productrepo "github.com/andrehsilva/novomundodastintas/internal/repo/product-repo"
	transactionrepo "github.com/andrehsilva/novomundodastintas/internal/repo/transaction-repo"
	userrepo "github.com/andrehsilva/novomundodastintas/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ProductRepo     *productrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ProductRepo:     productrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
	}
}
