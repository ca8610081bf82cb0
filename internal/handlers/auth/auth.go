package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/dto"
	"github.com/andrehsilva/novomundodastintas/internal/service/authservice"
	"github.com/andrehsilva/novomundodastintas/pkg/utils"
	"github.com/andrehsilva/novomundodastintas/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, nome, email, cpfCnpj, senha string) (*domain.User, error)
	Authenticate(ctx context.Context, email, senha string) (*domain.User, error)
	GenerateToken(userID int, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new painter account
//	@Description	Create a pintor account. The account stays inactive until an administrator activates it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsCpfCnpj(req.CpfCnpj) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid CPF/CNPJ")
		return
	}
	_, err = h.authService.Register(r.Context(), req.Nome, req.Email, req.CpfCnpj, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "Cadastro realizado com sucesso! Aguarde a ativação pela loja.",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password. Inactive painter accounts are refused until activated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account awaiting activation"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrAccountPending):
			utils.RespondWithError(w, http.StatusForbidden, "Sua conta aguarda ativação pelo administrador.")
		default:
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		}
		return
	}
	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}
