package dto

type UserCreateRequestDTO struct {
	Nome    string `json:"nome" validate:"required,min=3,max=120"`
	Email   string `json:"email" validate:"required,email,max=120"`
	CpfCnpj string `json:"cpf_cnpj" validate:"required,max=20"`
	Senha   string `json:"senha" validate:"required,min=8"`
}

type UserUpdateRequestDTO struct {
	Nome    string `json:"nome" validate:"required,min=3,max=120"`
	Email   string `json:"email" validate:"required,email,max=120"`
	CpfCnpj string `json:"cpf_cnpj" validate:"required,max=20"`
	Senha   string `json:"senha" validate:"omitempty,min=8"`
}

type UserResponseDTO struct {
	ID         int    `json:"id" example:"1"`
	Nome       string `json:"nome" example:"João da Silva"`
	Email      string `json:"email" example:"joao@example.com"`
	CpfCnpj    string `json:"cpf_cnpj" example:"12345678909"`
	SaldoTotal int    `json:"saldo_total" example:"2000"`
	Ativo      bool   `json:"ativo" example:"true"`
}

type OverviewResponseDTO struct {
	Pintores   []UserResponseDTO        `json:"pintores"`
	Pendentes  []UserResponseDTO        `json:"pendentes"`
	Transacoes []TransactionResponseDTO `json:"transacoes"`
}
