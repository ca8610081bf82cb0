package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/andrehsilva/novomundodastintas/docs"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/auth"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/catalog"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/ledger"
	"github.com/andrehsilva/novomundodastintas/internal/handlers/users"
	"github.com/andrehsilva/novomundodastintas/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		LedgerService:  ledger.NewMockService(ctrl),
		CatalogService: catalog.NewMockService(ctrl),
		UserService:    users.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockUsersHandler := NewMockUsersHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetStatement(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().RequestRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Credit(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().DecideRedemption(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ConfirmDelivery(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().ExportTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetCatalog(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().DeleteProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().GetOverview(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().CreateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUsersHandler.EXPECT().ActivateUser(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		LedgerHandler:  mockLedgerHandler,
		CatalogHandler: mockCatalogHandler,
		UsersHandler:   mockUsersHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/catalogo", http.StatusOK},
		{"GET", "/api/saldo", http.StatusUnauthorized},
		{"GET", "/api/extrato", http.StatusUnauthorized},
		{"POST", "/api/resgates", http.StatusUnauthorized},
		{"POST", "/api/admin/creditos", http.StatusUnauthorized},
		{"POST", "/api/admin/resgates/1/decisao", http.StatusUnauthorized},
		{"POST", "/api/admin/resgates/1/entrega", http.StatusUnauthorized},
		{"GET", "/api/admin/transacoes/", http.StatusUnauthorized},
		{"GET", "/api/admin/transacoes/export", http.StatusUnauthorized},
		{"GET", "/api/admin/usuarios/", http.StatusUnauthorized},
		{"POST", "/api/admin/usuarios/", http.StatusUnauthorized},
		{"PUT", "/api/admin/usuarios/1", http.StatusUnauthorized},
		{"DELETE", "/api/admin/usuarios/1", http.StatusUnauthorized},
		{"POST", "/api/admin/usuarios/1/ativar", http.StatusUnauthorized},
		{"POST", "/api/admin/produtos/", http.StatusUnauthorized},
		{"DELETE", "/api/admin/produtos/1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
