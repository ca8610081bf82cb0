package dto

type RegisterRequestDTO struct {
	Nome    string `json:"nome" validate:"required,min=3,max=120"`
	Email   string `json:"email" validate:"required,email,max=120"`
	CpfCnpj string `json:"cpf_cnpj" validate:"required,max=20"`
	Senha   string `json:"senha" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
