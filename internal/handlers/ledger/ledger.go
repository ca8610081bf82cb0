package ledger

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/dto"
	"github.com/andrehsilva/novomundodastintas/internal/service/ledgerservice"
	"github.com/andrehsilva/novomundodastintas/pkg/auth"
	"github.com/andrehsilva/novomundodastintas/pkg/utils"
	"github.com/andrehsilva/novomundodastintas/pkg/validate"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Service interface {
	Credit(ctx context.Context, userID int, pontos int, descricao string) (*domain.Transaction, error)
	RequestRedemption(ctx context.Context, userID int, productID int) (*domain.Transaction, error)
	DecideRedemption(ctx context.Context, transactionID int, decision string) error
	ConfirmDelivery(ctx context.Context, transactionID int) error
	GetStatement(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetBalance(ctx context.Context, userID int) (int, error)
	ListAll(ctx context.Context) ([]domain.Transaction, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current points balance
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/saldo [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	saldo, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		SaldoTotal: saldo,
	})
}

// GetStatement godoc
//
//	@Summary		Get transaction statement
//	@Description	All ledger entries of the authenticated painter, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Statement"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/extrato [get]
func (h *LedgerHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetStatement(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch statement")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(transactions))
}

// RequestRedemption godoc
//
//	@Summary		Request a product redemption
//	@Description	Reserve points for a catalog product. The points are debited immediately and the redemption waits for admin approval.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RedemptionRequestDTO	true	"Redemption request payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/resgates [post]
func (h *LedgerHandler) RequestRedemption(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RedemptionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.ledgerService.RequestRedemption(r.Context(), userID, req.ProdutoID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Saldo insuficiente para este resgate.")
		case errors.Is(err, ledgerservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionResponseDTO{
		TransactionID: transaction.ID,
		Message:       "Solicitação de resgate enviada! Aguarde a aprovação da loja.",
	})
}

// Credit godoc
//
//	@Summary		Credit points to a painter
//	@Description	Manual credit (or negative correction) issued by an administrator.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditRequestDTO	true	"Credit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/creditos [post]
func (h *LedgerHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	descricao := req.Descricao
	if descricao == "" {
		descricao = "Crédito manual"
	}

	transaction, err := h.ledgerService.Credit(r.Context(), req.UserID, req.Pontos, descricao)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(*transaction))
}

// DecideRedemption godoc
//
//	@Summary		Approve or reject a pending redemption
//	@Description	acao=confirmar finalizes the spend; acao=reprovar refunds the reserved points. Only pendente redemptions can be decided.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Transaction ID"
//	@Param			request	body		dto.DecisionRequestDTO	true	"Decision payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Invalid status transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/resgates/{id}/decisao [post]
func (h *LedgerHandler) DecideRedemption(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	var req dto.DecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledgerService.DecideRedemption(r.Context(), transactionID, req.Acao); err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Resgate " + req.Acao + " com sucesso"})
}

// ConfirmDelivery godoc
//
//	@Summary		Register physical delivery of a redeemed product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Invalid status transition"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/resgates/{id}/entrega [post]
func (h *LedgerHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.ledgerService.ConfirmDelivery(r.Context(), transactionID); err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Entrega registrada com sucesso"})
}

// ListTransactions godoc
//
//	@Summary		List the full ledger
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transacoes [get]
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(transactions))
}

// ExportTransactions godoc
//
//	@Summary		Export the full ledger as CSV
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Success		200	{string}	string			"CSV file"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transacoes/export [get]
func (h *LedgerHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledgerService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transacoes.csv"`)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"id", "user_id", "pontos", "data", "descricao", "status"})
	for _, t := range transactions {
		record := []string{
			strconv.Itoa(t.ID),
			strconv.Itoa(t.UserID),
			strconv.Itoa(t.Pontos),
			t.Data.Format(time.RFC3339),
			t.Descricao,
			t.Status,
		}
		if err := writer.Write(record); err != nil {
			zap.L().Error("can't write csv record", zap.Error(err))
			return
		}
	}
	writer.Flush()
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrTransactionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerservice.ErrUnknownDecision):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTransactionDTO(t domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		Pontos:    t.Pontos,
		Data:      t.Data,
		Descricao: t.Descricao,
		Status:    t.Status,
	}
}

func toTransactionDTOs(transactions []domain.Transaction) []dto.TransactionResponseDTO {
	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionDTO(t)
	}
	return response
}
