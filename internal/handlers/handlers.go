package handlers

import (
	"net/http"

	_ "github.com/andrehsilva/novomundodastintas/docs"
	authhandlers "github.com/andrehsilva/novomundodastintas/internal/handlers/auth"
	cataloghandlers "github.com/andrehsilva/novomundodastintas/internal/handlers/catalog"
	ledgerhandlers "github.com/andrehsilva/novomundodastintas/internal/handlers/ledger"
	usershandlers "github.com/andrehsilva/novomundodastintas/internal/handlers/users"
	"github.com/andrehsilva/novomundodastintas/internal/service"
	"github.com/andrehsilva/novomundodastintas/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	RequestRedemption(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	DecideRedemption(w http.ResponseWriter, r *http.Request)
	ConfirmDelivery(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ExportTransactions(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetCatalog(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	ActivateUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LedgerHandler  LedgerHandler
	CatalogHandler CatalogHandler
	UsersHandler   UsersHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LedgerHandler:  ledgerhandlers.New(s.LedgerService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		UsersHandler:   usershandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Get("/catalogo", h.CatalogHandler.GetCatalog)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/saldo", h.LedgerHandler.GetBalance)
			r.Get("/extrato", h.LedgerHandler.GetStatement)
			r.Post("/resgates", h.LedgerHandler.RequestRedemption)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Post("/creditos", h.LedgerHandler.Credit)
				r.Route("/resgates/{id}", func(r chi.Router) {
					r.Post("/decisao", h.LedgerHandler.DecideRedemption)
					r.Post("/entrega", h.LedgerHandler.ConfirmDelivery)
				})
				r.Route("/transacoes", func(r chi.Router) {
					r.Get("/", h.LedgerHandler.ListTransactions)
					r.Get("/export", h.LedgerHandler.ExportTransactions)
				})
				r.Route("/usuarios", func(r chi.Router) {
					r.Get("/", h.UsersHandler.GetOverview)
					r.Post("/", h.UsersHandler.CreateUser)
					r.Put("/{id}", h.UsersHandler.UpdateUser)
					r.Delete("/{id}", h.UsersHandler.DeleteUser)
					r.Post("/{id}/ativar", h.UsersHandler.ActivateUser)
				})
				r.Route("/produtos", func(r chi.Router) {
					r.Post("/", h.CatalogHandler.CreateProduct)
					r.Delete("/{id}", h.CatalogHandler.DeleteProduct)
				})
			})
		})
	})

	return r
}
