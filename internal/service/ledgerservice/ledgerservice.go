package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/pg"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	CreditBalance(ctx context.Context, userID int, pontos int) (int, error)
	DebitBalance(ctx context.Context, userID int, pontos int) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int, from string, to string) (bool, error)
}

type ProductRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

const (
	// StatusAprovado crédito lançado pelo administrador; inicial e final.
	StatusAprovado string = "aprovado"
	// StatusPendente resgate aguardando aprovação da loja.
	StatusPendente string = "pendente"
	// StatusConcluido resgate aprovado, pontos consumidos definitivamente.
	StatusConcluido string = "concluido"
	// StatusEntregue prêmio entregue fisicamente; estado final.
	StatusEntregue string = "entregue"
	// StatusReprovado resgate recusado, pontos devolvidos; estado final.
	StatusReprovado string = "reprovado"
)

const (
	DecisionConfirm string = "confirmar"
	DecisionReject  string = "reprovar"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidAmount       = errors.New("pontos must be nonzero")
	ErrUnknownDecision     = errors.New("unknown decision")
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Service is the points ledger. Every mutating operation inserts a
// transaction row and adjusts the user's saldo_total inside one database
// transaction, so the materialized balance never drifts from the ledger.
type Service struct {
	userRepo        UserRepo
	transactionRepo TransactionRepo
	productRepo     ProductRepo
	trm             pg.TXManager
}

func New(userRepo UserRepo, transactionRepo TransactionRepo, productRepo ProductRepo, trm pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		trm:             trm,
	}
}

// Credit records a manual credit (or correction, when pontos is negative)
// issued by an administrator. The admin path has no balance floor.
func (s *Service) Credit(ctx context.Context, userID int, pontos int, descricao string) (*domain.Transaction, error) {
	if pontos == 0 {
		return nil, ErrInvalidAmount
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	transaction := &domain.Transaction{
		UserID:    userID,
		Pontos:    pontos,
		Data:      time.Now(),
		Descricao: descricao,
		Status:    StatusAprovado,
	}
	err = s.trm.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		_, err := s.userRepo.CreditBalance(ctx, userID, pontos)
		return err
	})
	if err != nil {
		zap.L().Error("can't credit points", zap.Error(err))
		return nil, err
	}

	zap.L().Info("points credited", zap.Int("userID", userID), zap.Int("pontos", pontos))
	return transaction, nil
}

// RequestRedemption reserves the product's price against the user's balance
// and opens a pendente transaction. The debit happens at request time, not
// at approval, so concurrent requests cannot jointly spend the same points:
// the conditional debit either covers the full price or changes nothing.
func (s *Service) RequestRedemption(ctx context.Context, userID int, productID int) (*domain.Transaction, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	transaction := &domain.Transaction{
		UserID:    userID,
		Pontos:    -product.ValorPontos,
		Data:      time.Now(),
		Descricao: "Resgate: " + product.Nome,
		Status:    StatusPendente,
	}
	err = s.trm.Begin(ctx, func(ctx context.Context) error {
		debited, err := s.userRepo.DebitBalance(ctx, userID, product.ValorPontos)
		if err != nil {
			return err
		}
		if !debited {
			return ErrInsufficientBalance
		}
		_, err = s.transactionRepo.Create(ctx, transaction)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("can't request redemption", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("redemption requested", zap.Int("userID", userID), zap.Int("productID", productID))
	return transaction, nil
}

// DecideRedemption settles a pendente redemption. Confirm finalizes the
// spend without touching the balance; reject refunds the reserved points.
// Both go through a status compare-and-set, so deciding a transaction twice
// (or deciding a non-pendente one) fails with ErrInvalidTransition and a
// repeated reject can never refund twice.
func (s *Service) DecideRedemption(ctx context.Context, transactionID int, decision string) error {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	switch decision {
	case DecisionConfirm:
		updated, err := s.transactionRepo.UpdateStatus(ctx, transactionID, StatusPendente, StatusConcluido)
		if err != nil {
			return err
		}
		if !updated {
			return ErrInvalidTransition
		}
	case DecisionReject:
		err = s.trm.Begin(ctx, func(ctx context.Context) error {
			updated, err := s.transactionRepo.UpdateStatus(ctx, transactionID, StatusPendente, StatusReprovado)
			if err != nil {
				return err
			}
			if !updated {
				return ErrInvalidTransition
			}
			_, err = s.userRepo.CreditBalance(ctx, transaction.UserID, abs(transaction.Pontos))
			return err
		})
		if err != nil {
			return err
		}
	default:
		return ErrUnknownDecision
	}

	zap.L().Info("redemption decided", zap.Int("transactionID", transactionID), zap.String("decision", decision))
	return nil
}

// ConfirmDelivery marks a concluido redemption as physically handed over.
// Purely informational; the points were settled at approval.
func (s *Service) ConfirmDelivery(ctx context.Context, transactionID int) error {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return ErrTransactionNotFound
	}

	updated, err := s.transactionRepo.UpdateStatus(ctx, transactionID, StatusConcluido, StatusEntregue)
	if err != nil {
		return err
	}
	if !updated {
		return ErrInvalidTransition
	}

	zap.L().Info("delivery confirmed", zap.Int("transactionID", transactionID))
	return nil
}

func (s *Service) GetStatement(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch statement", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.SaldoTotal, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
