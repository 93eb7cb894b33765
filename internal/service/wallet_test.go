package service

import (
	"context"
	"testing"

	"homestay-settlement/internal/model"
	mocks "homestay-settlement/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passthroughTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

func TestDeposit_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 100000,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.ID == 10 && w.Balance == 600000 && w.TotalDeposited == 500000
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.WalletID == 10 &&
			trans.Type == model.TypeDeposit &&
			trans.Amount == 500000 &&
			trans.BalanceBefore == 100000 &&
			trans.BalanceAfter == 600000 &&
			trans.Status == model.TxCompleted &&
			trans.Reference != ""
	}), mock.Anything).Return(nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	trans, err := service.Deposit(ctx, 1, 500000, "bank_transfer")

	require.NoError(t, err)
	assert.Equal(t, int64(600000), trans.BalanceAfter)
	assert.Equal(t, "bank_transfer", trans.PaymentMethod)
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	service := NewWalletService(mocks.NewWalletRepository(t), mocks.NewLedgerRepository(t), mocks.NewDBManager(t), logger)

	_, err := service.Deposit(ctx, 1, 0, "bank_transfer")
	assert.ErrorIs(t, err, model.ErrInvalidAmount)

	_, err = service.Deposit(ctx, 1, -500, "bank_transfer")
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 100,
		Status:  model.WalletActive,
	}, nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	_, err := service.Withdraw(ctx, 1, 500, "bank_transfer")

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	mockWalletRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdraw_LockedWallet(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 1000000,
		Status:  model.WalletLocked,
	}, nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	_, err := service.Withdraw(ctx, 1, 500, "bank_transfer")

	assert.ErrorIs(t, err, model.ErrWalletLocked)
}

func TestChargeMaintenanceFee_FullCharge(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 500000,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.Balance == 425000
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TypeMaintenanceFee && trans.Amount == 75000
	}), mock.Anything).Return(nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.ChargeMaintenanceFee(ctx, 1, 75000)

	require.NoError(t, err)
	assert.Equal(t, int64(75000), result.Charged)
	assert.False(t, result.InsufficientBalance)
	assert.Equal(t, int64(0), result.MissingAmount)
}

func TestChargeMaintenanceFee_ClampsToBalance(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 50000,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.Balance == 0
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Type == model.TypeMaintenanceFee &&
			trans.Amount == 50000 &&
			trans.Metadata["missing_amount"] == "25000"
	}), mock.Anything).Return(nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.ChargeMaintenanceFee(ctx, 1, 75000)

	require.NoError(t, err)
	assert.Equal(t, int64(50000), result.Charged)
	assert.True(t, result.InsufficientBalance)
	assert.Equal(t, int64(25000), result.MissingAmount)
}

func TestChargeMaintenanceFee_EmptyWallet(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 0,
		Status:  model.WalletActive,
	}, nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	result, err := service.ChargeMaintenanceFee(ctx, 1, 75000)

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Charged)
	assert.True(t, result.InsufficientBalance)
	assert.Equal(t, int64(75000), result.MissingAmount)
	mockWalletRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	mockLedgerRepo.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_BothLegsShareGroup(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	guestWallet := &model.Wallet{ID: 10, UserID: 1, Balance: 2000000, Status: model.WalletActive}
	hostWallet := &model.Wallet{ID: 20, UserID: 2, Balance: 0, Status: model.WalletActive}

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(guestWallet, nil)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(2), mock.Anything).Return(hostWallet, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.Anything, mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.Anything, mock.Anything).Return(nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	debit, credit, err := service.Transfer(ctx, TransferParams{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     1850000,
		DebitType:  model.TypePayment,
		CreditType: model.TypeDeposit,
		Method:     "wallet",
	})

	require.NoError(t, err)
	assert.Equal(t, model.TypePayment, debit.Type)
	assert.Equal(t, model.TypeDeposit, credit.Type)
	require.NotNil(t, debit.TransferGroup)
	require.NotNil(t, credit.TransferGroup)
	assert.Equal(t, *debit.TransferGroup, *credit.TransferGroup)
	assert.Equal(t, int64(150000), guestWallet.Balance)
	assert.Equal(t, int64(1850000), hostWallet.Balance)
}

func TestTransfer_DebitFailureSkipsCredit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletForUpdate", ctx, int64(1), mock.Anything).Return(&model.Wallet{
		ID:      10,
		UserID:  1,
		Balance: 100,
		Status:  model.WalletActive,
	}, nil)

	service := NewWalletService(mockWalletRepo, mockLedgerRepo, mockDBManager, logger)

	_, _, err := service.Transfer(ctx, TransferParams{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     1850000,
		DebitType:  model.TypePayment,
		CreditType: model.TypeDeposit,
		Method:     "wallet",
	})

	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	mockWalletRepo.AssertNotCalled(t, "GetWalletForUpdate", ctx, int64(2), mock.Anything)
}

func TestLockWallet(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockWalletRepo.On("SetStatus", ctx, int64(1), model.WalletLocked).Return(nil)

	service := NewWalletService(mockWalletRepo, mocks.NewLedgerRepository(t), mocks.NewDBManager(t), logger)

	require.NoError(t, service.LockWallet(ctx, 1))
}
