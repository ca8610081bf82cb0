package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/service/authservice"
	"github.com/andrehsilva/novomundodastintas/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"nome":"Pintor Teste","email":"pintor@example.com","cpf_cnpj":"52998224725","senha":"senha12345"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Pintor Teste", "pintor@example.com", "52998224725", "senha12345").Return(&domain.User{
					ID:    1,
					Nome:  "Pintor Teste",
					Email: "pintor@example.com",
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Email already registered",
			body: `{"nome":"Pintor Teste","email":"pintor@example.com","cpf_cnpj":"52998224725","senha":"senha12345"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "Pintor Teste", "pintor@example.com", "52998224725", "senha12345").Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already registered",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Short password fails validation",
			body:          `{"nome":"Pintor Teste","email":"pintor@example.com","cpf_cnpj":"52998224725","senha":"curta"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid CPF is rejected",
			body:          `{"nome":"Pintor Teste","email":"pintor@example.com","cpf_cnpj":"11111111111","senha":"senha12345"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid CPF/CNPJ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"email":"pintor@example.com","senha":"senha12345"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "pintor@example.com", "senha12345").
					Return(&domain.User{
						ID:    1,
						Email: "pintor@example.com",
						Role:  domain.RolePintor,
						Ativo: true,
					}, nil)

				service.EXPECT().
					GenerateToken(1, domain.RolePintor).
					Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"pintor@example.com","senha":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "pintor@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Account awaiting activation",
			body: `{"email":"pendente@example.com","senha":"senha12345"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "pendente@example.com", "senha12345").
					Return(nil, authservice.ErrAccountPending)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Sua conta aguarda ativação pelo administrador.",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"pintor@example.com","senha":"senha12345"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(context.Background(), "pintor@example.com", "senha12345").
					Return(&domain.User{
						ID:    1,
						Email: "pintor@example.com",
						Role:  domain.RolePintor,
						Ativo: true,
					}, nil)

				service.EXPECT().
					GenerateToken(1, domain.RolePintor).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, rr.Header().Get("Authorization"))
			}
		})
	}
}
