package userservice

import (
	"context"
	"errors"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) (bool, error)
	Activate(ctx context.Context, id int) (bool, error)
	ListByRole(ctx context.Context, role string, ativo bool) ([]domain.User, error)
}

type TransactionRepo interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

type Service struct {
	userRepo        Repo
	transactionRepo TransactionRepo
	hashService     auth.HashServiceInterface
}

func New(userRepo Repo, transactionRepo TransactionRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		hashService:     hashService,
	}
}

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrSelfDelete   = errors.New("cannot delete own account")
)

// Overview is what the admin panel shows: active painters, accounts waiting
// for activation, and the whole ledger.
type Overview struct {
	Pintores  []domain.User
	Pendentes []domain.User
	Ledger    []domain.Transaction
}

// CreateUser is the admin path: the account is born active.
func (s *Service) CreateUser(ctx context.Context, nome, email, cpfCnpj, senha string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(senha)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Nome:      nome,
		Email:     email,
		CpfCnpj:   cpfCnpj,
		SenhaHash: hashedPassword,
		Role:      domain.RolePintor,
		Ativo:     true,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created by admin", zap.String("email", email))
	return newUser, nil
}

// UpdateUser changes identity fields; the password only when senha is
// non-empty.
func (s *Service) UpdateUser(ctx context.Context, id int, nome, email, cpfCnpj, senha string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Nome = nome
	user.Email = email
	user.CpfCnpj = cpfCnpj
	if senha != "" {
		hashedPassword, err := s.hashService.HashPassword(senha)
		if err != nil {
			return nil, err
		}
		user.SenhaHash = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		zap.L().Error("can't update user: ", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int, actorID int) error {
	if id == actorID {
		return ErrSelfDelete
	}
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	zap.L().Info("user deleted", zap.Int("userID", id))
	return nil
}

// Activate flips ativo to true; there is no reverse operation.
func (s *Service) Activate(ctx context.Context, id int) error {
	activated, err := s.userRepo.Activate(ctx, id)
	if err != nil {
		return err
	}
	if !activated {
		return ErrUserNotFound
	}
	zap.L().Info("user activated", zap.Int("userID", id))
	return nil
}

func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pintores, err := s.userRepo.ListByRole(gctx, domain.RolePintor, true)
		overview.Pintores = pintores
		return err
	})
	g.Go(func() error {
		pendentes, err := s.userRepo.ListByRole(gctx, domain.RolePintor, false)
		overview.Pendentes = pendentes
		return err
	})
	g.Go(func() error {
		ledger, err := s.transactionRepo.FindAll(gctx)
		overview.Ledger = ledger
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build admin overview", zap.Error(err))
		return nil, err
	}
	return &overview, nil
}
