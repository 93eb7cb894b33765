package service

import (
	"context"
	"testing"
	"time"

	"homestay-settlement/internal/model"
	mocks "homestay-settlement/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileTransfers_CompensatesOrphanedDebit(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	group := "group-1"
	debit := &model.Transaction{
		ID:            7,
		Reference:     "ref-1",
		WalletID:      3,
		Type:          model.TypePayment,
		Amount:        500000,
		Status:        model.TxCompleted,
		TransferGroup: &group,
	}

	mockLedgerRepo.On("FindHalfAppliedTransfers", ctx, mock.Anything, 10).Return([]*model.Transaction{debit}, nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletByIDForUpdate", ctx, int64(3), mock.Anything).Return(&model.Wallet{
		ID:      3,
		UserID:  1,
		Balance: 100000,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.ID == 3 && w.Balance == 600000
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Reference == "ref-1:compensation" &&
			trans.Type == model.TypeRefund &&
			trans.Amount == 500000 &&
			trans.TransferGroup != nil && *trans.TransferGroup == "group-1"
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("FlagTransaction", ctx, int64(7), mock.Anything).Return(nil)

	service := NewReconciliationService(mockWalletRepo, mockLedgerRepo, mockDBManager, 10*time.Minute, logger)

	require.NoError(t, service.ReconcileTransfers(ctx))
}

func TestReconcileTransfers_NothingToRepair(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockLedgerRepo.On("FindHalfAppliedTransfers", ctx, mock.Anything, 10).Return(nil, nil)

	service := NewReconciliationService(mockWalletRepo, mockLedgerRepo, mockDBManager, 10*time.Minute, logger)

	require.NoError(t, service.ReconcileTransfers(ctx))
	mockDBManager.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestReconcileTransfers_VanishedDebitRowIsNotRepaired(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	debit := &model.Transaction{ID: 7, Reference: "ref-1", WalletID: 3, Amount: 100}

	mockLedgerRepo.On("FindHalfAppliedTransfers", ctx, mock.Anything, 10).Return([]*model.Transaction{debit}, nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletByIDForUpdate", ctx, int64(3), mock.Anything).Return(&model.Wallet{
		ID:      3,
		Balance: 0,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.Anything, mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.Anything, mock.Anything).Return(nil)
	mockLedgerRepo.On("FlagTransaction", ctx, int64(7), mock.Anything).Return(model.ErrTransferNotFound)

	service := NewReconciliationService(mockWalletRepo, mockLedgerRepo, mockDBManager, 10*time.Minute, logger)

	// The per-item transaction fails and rolls back; the sweep itself
	// finishes without error.
	require.NoError(t, service.ReconcileTransfers(ctx))
}

func TestReconcileTransfers_OneFailureDoesNotStopSweep(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockWalletRepo := mocks.NewWalletRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	first := &model.Transaction{ID: 7, Reference: "ref-1", WalletID: 3, Amount: 100}
	second := &model.Transaction{ID: 8, Reference: "ref-2", WalletID: 4, Amount: 200}

	mockLedgerRepo.On("FindHalfAppliedTransfers", ctx, mock.Anything, 10).Return([]*model.Transaction{first, second}, nil)
	mockDBManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	mockWalletRepo.On("GetWalletByIDForUpdate", ctx, int64(3), mock.Anything).Return(nil, assert.AnError)
	mockWalletRepo.On("GetWalletByIDForUpdate", ctx, int64(4), mock.Anything).Return(&model.Wallet{
		ID:      4,
		Balance: 0,
		Status:  model.WalletActive,
	}, nil)
	mockWalletRepo.On("UpdateBalance", ctx, mock.MatchedBy(func(w *model.Wallet) bool {
		return w.ID == 4 && w.Balance == 200
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.Reference == "ref-2:compensation"
	}), mock.Anything).Return(nil)
	mockLedgerRepo.On("FlagTransaction", ctx, int64(8), mock.Anything).Return(nil)

	service := NewReconciliationService(mockWalletRepo, mockLedgerRepo, mockDBManager, 10*time.Minute, logger)

	require.NoError(t, service.ReconcileTransfers(ctx))
	mockLedgerRepo.AssertNotCalled(t, "FlagTransaction", ctx, int64(7), mock.Anything)
}
