package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/andrehsilva/novomundodastintas/internal/domain"
	"github.com/andrehsilva/novomundodastintas/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTransactionRepo, *MockProductRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	productRepo := NewMockProductRepo(ctrl)
	trm := pg.NewMockTXManager(ctrl)

	service := New(userRepo, transactionRepo, productRepo, trm)
	defer ctrl.Finish()
	return service, userRepo, transactionRepo, productRepo, trm
}

func passthroughTx(trm *pg.MockTXManager) {
	trm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestCredit(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		pontos        int
		prepareMock   func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager)
		expectedError error
	}{
		{
			name:   "Successful credit",
			userID: 1,
			pontos: 2000,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 0}, nil)
				passthroughTx(trm)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, 2000, transaction.Pontos)
					assert.Equal(t, StatusAprovado, transaction.Status)
					transaction.ID = 10
					return transaction, nil
				})
				userRepo.EXPECT().CreditBalance(gomock.Any(), 1, 2000).Return(2000, nil)
			},
			expectedError: nil,
		},
		{
			name:   "Negative correction is allowed",
			userID: 1,
			pontos: -500,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 1000}, nil)
				passthroughTx(trm)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 11}, nil)
				userRepo.EXPECT().CreditBalance(gomock.Any(), 1, -500).Return(500, nil)
			},
			expectedError: nil,
		},
		{
			name:          "Zero amount is rejected",
			userID:        1,
			pontos:        0,
			prepareMock:   func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "User not found",
			userID: 99,
			pontos: 100,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				userRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Insert failure rolls the whole credit back",
			userID: 1,
			pontos: 100,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				passthroughTx(trm)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, transactionRepo, _, trm := NewMock(t)
			tt.prepareMock(userRepo, transactionRepo, trm)

			transaction, err := service.Credit(context.Background(), tt.userID, tt.pontos, "Crédito manual")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.pontos, transaction.Pontos)
			}
		})
	}
}

func TestRequestRedemption(t *testing.T) {
	product := &domain.Product{ID: 3, Nome: "Pistola de Pintura", ValorPontos: 1500}

	tests := []struct {
		name          string
		prepareMock   func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager)
		expectedError error
	}{
		{
			name: "Successful redemption opens a pendente transaction",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager) {
				productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(product, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 2000}, nil)
				passthroughTx(trm)
				userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 1500).Return(true, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
					assert.Equal(t, -1500, transaction.Pontos)
					assert.Equal(t, StatusPendente, transaction.Status)
					assert.Equal(t, "Resgate: Pistola de Pintura", transaction.Descricao)
					transaction.ID = 20
					return transaction, nil
				})
			},
			expectedError: nil,
		},
		{
			name: "Product not found",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager) {
				productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrProductNotFound,
		},
		{
			name: "User not found",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager) {
				productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(product, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Insufficient balance leaves the ledger untouched",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager) {
				productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(product, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 100}, nil)
				passthroughTx(trm)
				userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 1500).Return(false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Insert failure after debit aborts the transaction",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, productRepo *MockProductRepo, trm *pg.MockTXManager) {
				productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(product, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 2000}, nil)
				passthroughTx(trm)
				userRepo.EXPECT().DebitBalance(gomock.Any(), 1, 1500).Return(true, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, transactionRepo, productRepo, trm := NewMock(t)
			tt.prepareMock(userRepo, transactionRepo, productRepo, trm)

			transaction, err := service.RequestRedemption(context.Background(), 1, 3)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusPendente, transaction.Status)
			}
		})
	}
}

func TestDecideRedemption(t *testing.T) {
	pending := &domain.Transaction{ID: 20, UserID: 1, Pontos: -1500, Status: StatusPendente}

	tests := []struct {
		name          string
		decision      string
		prepareMock   func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager)
		expectedError error
	}{
		{
			name:     "Confirm settles without touching the balance",
			decision: DecisionConfirm,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(pending, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusPendente, StatusConcluido).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Confirm on already decided transaction fails",
			decision: DecisionConfirm,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.Transaction{ID: 20, Status: StatusConcluido}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusPendente, StatusConcluido).Return(false, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:     "Reject refunds the reserved points",
			decision: DecisionReject,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(pending, nil)
				passthroughTx(trm)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusPendente, StatusReprovado).Return(true, nil)
				userRepo.EXPECT().CreditBalance(gomock.Any(), 1, 1500).Return(2000, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Second reject cannot refund twice",
			decision: DecisionReject,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.Transaction{ID: 20, UserID: 1, Pontos: -1500, Status: StatusReprovado}, nil)
				passthroughTx(trm)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusPendente, StatusReprovado).Return(false, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name:     "Unknown decision",
			decision: "talvez",
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(pending, nil)
			},
			expectedError: ErrUnknownDecision,
		},
		{
			name:     "Transaction not found",
			decision: DecisionConfirm,
			prepareMock: func(userRepo *MockUserRepo, transactionRepo *MockTransactionRepo, trm *pg.MockTXManager) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, transactionRepo, _, trm := NewMock(t)
			tt.prepareMock(userRepo, transactionRepo, trm)

			err := service.DecideRedemption(context.Background(), 20, tt.decision)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfirmDelivery(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(transactionRepo *MockTransactionRepo)
		expectedError error
	}{
		{
			name: "Successful delivery",
			prepareMock: func(transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.Transaction{ID: 20, Status: StatusConcluido}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusConcluido, StatusEntregue).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Pendente redemption cannot be delivered",
			prepareMock: func(transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(&domain.Transaction{ID: 20, Status: StatusPendente}, nil)
				transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, StatusConcluido, StatusEntregue).Return(false, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Transaction not found",
			prepareMock: func(transactionRepo *MockTransactionRepo) {
				transactionRepo.EXPECT().FindByID(gomock.Any(), 20).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, transactionRepo, _, _ := NewMock(t)
			tt.prepareMock(transactionRepo)

			err := service.ConfirmDelivery(context.Background(), 20)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(userRepo *MockUserRepo)
		expectedBalance int
		expectedError   error
	}{
		{
			name: "Returns the materialized balance",
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, SaldoTotal: 2000}, nil)
			},
			expectedBalance: 2000,
			expectedError:   nil,
		},
		{
			name: "User not found",
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedBalance: 0,
			expectedError:   ErrUserNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedBalance: 0,
			expectedError:   errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _, _ := NewMock(t)
			tt.prepareMock(userRepo)

			balance, err := service.GetBalance(context.Background(), 1)
			assert.Equal(t, tt.expectedBalance, balance)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetStatement(t *testing.T) {
	service, _, transactionRepo, _, _ := NewMock(t)

	expected := []domain.Transaction{
		{ID: 1, UserID: 1, Pontos: 2000, Status: StatusAprovado},
		{ID: 2, UserID: 1, Pontos: -1500, Status: StatusConcluido},
	}
	transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(expected, nil)

	transactions, err := service.GetStatement(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, transactions)
}

func TestListAll(t *testing.T) {
	service, _, transactionRepo, _, _ := NewMock(t)

	expected := []domain.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}
	transactionRepo.EXPECT().FindAll(gomock.Any()).Return(expected, nil)

	transactions, err := service.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, transactions)
}

// A full lifecycle: credit 2000, redeem a 1500-point product, reject the
// redemption. The refund restores exactly the escrowed amount, so total
// credited minus debited always equals the materialized balance.
func TestRedemptionLifecycleConservation(t *testing.T) {
	service, userRepo, transactionRepo, productRepo, trm := NewMock(t)

	saldo := 0

	userRepo.EXPECT().FindByID(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, id int) (*domain.User, error) {
		return &domain.User{ID: 1, SaldoTotal: saldo}, nil
	}).AnyTimes()
	userRepo.EXPECT().CreditBalance(gomock.Any(), 1, gomock.Any()).DoAndReturn(func(ctx context.Context, userID, pontos int) (int, error) {
		saldo += pontos
		return saldo, nil
	}).AnyTimes()
	userRepo.EXPECT().DebitBalance(gomock.Any(), 1, gomock.Any()).DoAndReturn(func(ctx context.Context, userID, pontos int) (bool, error) {
		if saldo < pontos {
			return false, nil
		}
		saldo -= pontos
		return true, nil
	}).AnyTimes()
	trm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	status := ""
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
		transaction.ID = 20
		status = transaction.Status
		return transaction, nil
	}).AnyTimes()
	transactionRepo.EXPECT().FindByID(gomock.Any(), 20).DoAndReturn(func(ctx context.Context, id int) (*domain.Transaction, error) {
		return &domain.Transaction{ID: 20, UserID: 1, Pontos: -1500, Status: status}, nil
	}).AnyTimes()
	transactionRepo.EXPECT().UpdateStatus(gomock.Any(), 20, gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, id int, from, to string) (bool, error) {
		if status != from {
			return false, nil
		}
		status = to
		return true, nil
	}).AnyTimes()

	productRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.Product{ID: 3, Nome: "Kit Rolos", ValorPontos: 1500}, nil).AnyTimes()

	_, err := service.Credit(context.Background(), 1, 2000, "Campanha de lançamento")
	assert.NoError(t, err)
	assert.Equal(t, 2000, saldo)

	_, err = service.RequestRedemption(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 500, saldo)

	err = service.DecideRedemption(context.Background(), 20, DecisionReject)
	assert.NoError(t, err)
	assert.Equal(t, 2000, saldo)

	// A repeat reject hits the status guard, never the balance.
	err = service.DecideRedemption(context.Background(), 20, DecisionReject)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 2000, saldo)
}
