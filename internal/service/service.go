package service

import (
	"github.com/andrehsilva/novomundodastintas/internal/handlers/auth"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/catalog"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/ledger"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/users"

	pkgauth "github.com/andrehsilva/novomundodastintas/pkg/auth"

	"github.com/andrehsilva/novomundodastintas/internal/pg"
	"github.com/andrehsilva/novomundodastintas/internal/repo"
	authservice "github.com/andrehsilva/novomundodastintas/internal/service/authservice"
	catalogservice "github.com/andrehsilva/novomundodastintas/internal/service/catalogservice"
	ledgerservice "github.com/andrehsilva/novomundodastintas/internal/service/ledgerservice"
	userservice "github.com/andrehsilva/novomundodastintas/internal/service/userservice"
)

type Services struct {
	AuthService    auth.Service
	LedgerService  ledger.Service
	CatalogService catalog.Service
	UserService    users.Service

	// Seeder is the auth service again, typed for startup seeding.
	Seeder *authservice.Service
}

func New(repo *repo.Repositories, trm pg.TXManager, uploader catalogservice.Uploader) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	ledgerService := ledgerservice.New(repo.UserRepo, repo.TransactionRepo, repo.ProductRepo, trm)
	catalogService := catalogservice.New(repo.ProductRepo, uploader)
	userService := userservice.New(repo.UserRepo, repo.TransactionRepo, &pkgauth.HashService{})

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		CatalogService: catalogService,
		UserService:    userService,
		Seeder:         authService,
	}
}
