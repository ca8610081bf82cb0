package domain

import "time"

const (
	RoleAdmin  = "admin"
	RolePintor = "pintor"
)

type User struct {
	ID         int    `db:"id"`
	Nome       string `db:"nome"`
	Email      string `db:"email"`
	CpfCnpj    string `db:"cpf_cnpj"`
	SenhaHash  string `db:"senha_hash"`
	SaldoTotal int    `db:"saldo_total"`
	Role       string `db:"role"`
	Ativo      bool   `db:"ativo"`
}

type Product struct {
	ID          int    `db:"id"`
	Nome        string `db:"nome"`
	Descricao   string `db:"descricao"`
	ValorPontos int    `db:"valor_pontos"`
	ImagemURL   string `db:"imagem_url"`
	Categoria   string `db:"categoria"`
}

// Transaction is a ledger entry. Pontos and UserID are immutable after
// insert; only Status transitions.
type Transaction struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Pontos    int       `db:"pontos"`
	Data      time.Time `db:"data"`
	Descricao string    `db:"descricao"`
	Status    string    `db:"status"`
}
