package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account awaiting activation")
)

// Register creates a pintor account. New accounts start inactive and cannot
// log in until an administrator activates them.
func (s *Service) Register(ctx context.Context, nome, email, cpfCnpj, senha string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("email already registered", zap.String("email", email))
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
		Ativo:     false,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Authenticate verifies credentials and the activation gate: an inactive
// pintor is refused even with the right password. Admins bypass the gate.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.SenhaHash, senha); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.Ativo && user.Role != domain.RoleAdmin {
		zap.L().Info("account awaiting activation", zap.String("email", email))
		return nil, ErrAccountPending
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// SeedAdmin ensures the single administrator account exists. Called once at
// startup with the configured credentials.
func (s *Service) SeedAdmin(ctx context.Context, nome, email, senha string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hashedPassword, err := s.hashService.HashPassword(senha)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &domain.User{
		Nome:      nome,
		Email:     email,
		CpfCnpj:   "00000000000",
		SenhaHash: hashedPassword,
		Role:      domain.RoleAdmin,
		Ativo:     true,
	})
	if err != nil {
		return err
	}
	zap.L().Info("admin account seeded", zap.String("email", email))
	return nil
}
