package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/dto"
	"github.com/andrehsilva/novomundodastintas/internal/service/userservice"
	"github.com/andrehsilva/novomundodastintas/pkg/auth"
	"github.com/andrehsilva/novomundodastintas/pkg/utils"
	"github.com/andrehsilva/novomundodastintas/pkg/validate"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	CreateUser(ctx context.Context, nome, email, cpfCnpj, senha string) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, nome, email, cpfCnpj, senha string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int, actorID int) error
	Activate(ctx context.Context, id int) error
	GetOverview(ctx context.Context) (*userservice.Overview, error)
}

type UsersHandler struct {
	userService Service
}

func New(userService Service) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

// GetOverview godoc
//
//	@Summary		Admin overview of painters and the ledger
//	@Description	Active painters, accounts pending activation and every ledger entry.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OverviewResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/usuarios [get]
func (h *UsersHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.userService.GetOverview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.OverviewResponseDTO{
		Pintores:   toUserDTOs(overview.Pintores),
		Pendentes:  toUserDTOs(overview.Pendentes),
		Transacoes: make([]dto.TransactionResponseDTO, len(overview.Ledger)),
	}
	for i, t := range overview.Ledger {
		response.Transacoes[i] = dto.TransactionResponseDTO{
			ID:        t.ID,
			UserID:    t.UserID,
			Pontos:    t.Pontos,
			Data:      t.Data,
			Descricao: t.Descricao,
			Status:    t.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateUser godoc
//
//	@Summary		Create a painter account (admin)
//	@Description	Accounts created by an administrator are active immediately.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UserCreateRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/usuarios [post]
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsCpfCnpj(req.CpfCnpj) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid CPF/CNPJ")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Nome, req.Email, req.CpfCnpj, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrEmailTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(*user))
}

// UpdateUser godoc
//
//	@Summary		Update a painter account (admin)
//	@Description	Updates identity fields; the password changes only when senha is provided.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UserUpdateRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/usuarios/{id} [put]
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req dto.UserUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, req.Nome, req.Email, req.CpfCnpj, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(*user))
}

// DeleteUser godoc
//
//	@Summary		Delete a painter account (admin)
//	@Description	An administrator cannot delete the account they are logged in with.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid user id or self delete"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/usuarios/{id} [delete]
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, userservice.ErrSelfDelete):
			utils.RespondWithError(w, http.StatusBadRequest, "Você não pode deletar sua própria conta.")
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Usuário removido."})
}

// ActivateUser godoc
//
//	@Summary		Activate a pending painter account
//	@Description	One-way transition; there is no deactivation.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/usuarios/{id}/ativar [post]
func (h *UsersHandler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.Activate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pintor ativado!"})
}

func toUserDTO(u domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:         u.ID,
		Nome:       u.Nome,
		Email:      u.Email,
		CpfCnpj:    u.CpfCnpj,
		SaldoTotal: u.SaldoTotal,
		Ativo:      u.Ativo,
	}
}

func toUserDTOs(users []domain.User) []dto.UserResponseDTO {
	response := make([]dto.UserResponseDTO, len(users))
	for i, u := range users {
		response[i] = toUserDTO(u)
	}
	return response
}
