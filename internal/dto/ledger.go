package dto

import "time"

type CreditRequestDTO struct {
	UserID    int    `json:"user_id" validate:"required"`
	Pontos    int    `json:"pontos" validate:"required"`
	Descricao string `json:"descricao" example:"Crédito manual"`
}

type RedemptionRequestDTO struct {
	ProdutoID int `json:"produto_id" validate:"required" example:"1"`
}

type RedemptionResponseDTO struct {
	TransactionID int    `json:"transaction_id" example:"42"`
	Message       string `json:"message"`
}

type DecisionRequestDTO struct {
	Acao string `json:"acao" validate:"required,oneof=confirmar reprovar" example:"confirmar"`
}

type TransactionResponseDTO struct {
	ID        int       `json:"id" example:"42"`
	UserID    int       `json:"user_id" example:"1"`
	Pontos    int       `json:"pontos" example:"-2000"`
	Data      time.Time `json:"data" example:"2020-12-09T16:09:57+03:00"`
	Descricao string    `json:"descricao" example:"Resgate: Kit Pintura Premium"`
	Status    string    `json:"status" example:"pendente"`
}

type BalanceResponseDTO struct {
	SaldoTotal int `json:"saldo_total" example:"2000"`
}
