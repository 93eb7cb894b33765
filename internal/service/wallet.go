package service

import (
	"context"
	"fmt"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type WalletServiceImpl struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewWalletService(
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID int64) (*model.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

func (s *WalletServiceImpl) GetTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	transactions, err := s.ledgerRepo.ListByWallet(ctx, wallet.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// apply locks the wallet, validates status and balance, and persists the new
// balance together with its ledger entry. Every mutation funnels through
// here; there is no path that writes a balance without its audit record.
func (s *WalletServiceImpl) apply(ctx context.Context, tx pgx.Tx, userID int64, entry LedgerEntry) (*model.Transaction, error) {
	if entry.Amount < 0 {
		return nil, model.ErrInvalidAmount
	}

	wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID, tx)
	if err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}
	if wallet.Status != model.WalletActive {
		return nil, fmt.Errorf("%w: wallet %d is %s", model.ErrWalletLocked, wallet.ID, wallet.Status)
	}

	balanceBefore := wallet.Balance
	signed := entry.Amount * entry.Type.Sign()
	balanceAfter := balanceBefore + signed
	if balanceAfter < 0 {
		return nil, model.ErrInsufficientBalance
	}

	wallet.Balance = balanceAfter
	switch entry.Type {
	case model.TypeDeposit:
		wallet.TotalDeposited += entry.Amount
	case model.TypeWithdraw:
		wallet.TotalWithdrawn += entry.Amount
	case model.TypePayment:
		wallet.TotalSpent += entry.Amount
	}

	if err := s.walletRepo.UpdateBalance(ctx, wallet, tx); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	trans := &model.Transaction{
		Reference:     uuid.New().String(),
		WalletID:      wallet.ID,
		BookingID:     entry.BookingID,
		Type:          entry.Type,
		Amount:        entry.Amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceAfter,
		Status:        model.TxCompleted,
		PaymentMethod: entry.Method,
		GatewayRef:    entry.GatewayRef,
		TransferGroup: entry.TransferGroup,
		Metadata:      entry.Metadata,
	}
	if err := s.ledgerRepo.InsertTransaction(ctx, trans, tx); err != nil {
		return nil, fmt.Errorf("append ledger entry: %w", err)
	}

	s.logger.Info().
		Int64("wallet_id", wallet.ID).
		Int64("user_id", userID).
		Str("type", string(entry.Type)).
		Int64("amount", entry.Amount).
		Int64("balance_before", balanceBefore).
		Int64("balance_after", balanceAfter).
		Str("reference", trans.Reference).
		Msg("wallet mutation applied")

	return trans, nil
}

// Debit applies a debit-type entry inside the caller's transaction.
func (s *WalletServiceImpl) Debit(ctx context.Context, tx pgx.Tx, userID int64, entry LedgerEntry) (*model.Transaction, error) {
	if entry.Type.Sign() != -1 {
		return nil, fmt.Errorf("%w: %s is not a debit type", model.ErrInvalidAmount, entry.Type)
	}
	return s.apply(ctx, tx, userID, entry)
}

// Credit applies a credit-type entry inside the caller's transaction.
func (s *WalletServiceImpl) Credit(ctx context.Context, tx pgx.Tx, userID int64, entry LedgerEntry) (*model.Transaction, error) {
	if entry.Type.Sign() != 1 {
		return nil, fmt.Errorf("%w: %s is not a credit type", model.ErrInvalidAmount, entry.Type)
	}
	return s.apply(ctx, tx, userID, entry)
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, userID, amount int64, method string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deposit must be positive", model.ErrInvalidAmount)
	}

	var trans *model.Transaction
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		trans, err = s.apply(ctx, tx, userID, LedgerEntry{
			Type:   model.TypeDeposit,
			Amount: amount,
			Method: method,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return trans, nil
}

func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID, amount int64, method string) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdrawal must be positive", model.ErrInvalidAmount)
	}

	var trans *model.Transaction
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		trans, err = s.apply(ctx, tx, userID, LedgerEntry{
			Type:   model.TypeWithdraw,
			Amount: amount,
			Method: method,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// ChargeMaintenanceFee deducts min(balance, fee) and clamps the balance to
// zero. Maintenance fees are collected opportunistically, so a shortfall is
// reported, not failed.
func (s *WalletServiceImpl) ChargeMaintenanceFee(ctx context.Context, userID, fee int64) (*model.MaintenanceFeeResult, error) {
	if fee <= 0 {
		return nil, fmt.Errorf("%w: fee must be positive", model.ErrInvalidAmount)
	}

	result := &model.MaintenanceFeeResult{}
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}
		if wallet.Status != model.WalletActive {
			return fmt.Errorf("%w: wallet %d is %s", model.ErrWalletLocked, wallet.ID, wallet.Status)
		}

		charged := fee
		if wallet.Balance < fee {
			charged = wallet.Balance
			result.InsufficientBalance = true
			result.MissingAmount = fee - wallet.Balance
		}
		result.Charged = charged

		if charged == 0 {
			s.logger.Warn().
				Int64("wallet_id", wallet.ID).
				Int64("fee", fee).
				Msg("maintenance fee skipped: empty wallet")
			return nil
		}

		balanceBefore := wallet.Balance
		wallet.Balance -= charged
		if err := s.walletRepo.UpdateBalance(ctx, wallet, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		trans := &model.Transaction{
			Reference:     uuid.New().String(),
			WalletID:      wallet.ID,
			Type:          model.TypeMaintenanceFee,
			Amount:        charged,
			BalanceBefore: balanceBefore,
			BalanceAfter:  wallet.Balance,
			Status:        model.TxCompleted,
		}
		if result.InsufficientBalance {
			trans.Metadata = map[string]string{
				"fee":            fmt.Sprintf("%d", fee),
				"missing_amount": fmt.Sprintf("%d", result.MissingAmount),
			}
		}
		if err := s.ledgerRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("append ledger entry: %w", err)
		}

		s.logger.Info().
			Int64("wallet_id", wallet.ID).
			Int64("fee", fee).
			Int64("charged", charged).
			Bool("insufficient_balance", result.InsufficientBalance).
			Msg("maintenance fee charged")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TransferTx executes both legs inside the caller's transaction. Legs share
// a transfer group so the reconciliation sweep can pair them, and the debit
// runs first so an insufficient balance aborts before any credit.
func (s *WalletServiceImpl) TransferTx(ctx context.Context, tx pgx.Tx, params TransferParams) (*model.Transaction, *model.Transaction, error) {
	if params.Amount <= 0 {
		return nil, nil, fmt.Errorf("%w: transfer must be positive", model.ErrInvalidAmount)
	}

	group := uuid.New().String()

	debit, err := s.Debit(ctx, tx, params.FromUserID, LedgerEntry{
		Type:          params.DebitType,
		Amount:        params.Amount,
		BookingID:     params.BookingID,
		Method:        params.Method,
		TransferGroup: &group,
		Metadata:      params.Metadata,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("debit leg: %w", err)
	}

	credit, err := s.Credit(ctx, tx, params.ToUserID, LedgerEntry{
		Type:          params.CreditType,
		Amount:        params.Amount,
		BookingID:     params.BookingID,
		Method:        params.Method,
		TransferGroup: &group,
		Metadata:      params.Metadata,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("credit leg: %w", err)
	}

	return debit, credit, nil
}

// Transfer executes a two-leg transfer as one database transaction.
func (s *WalletServiceImpl) Transfer(ctx context.Context, params TransferParams) (*model.Transaction, *model.Transaction, error) {
	var debit, credit *model.Transaction
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		debit, credit, err = s.TransferTx(ctx, tx, params)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return debit, credit, nil
}

func (s *WalletServiceImpl) LockWallet(ctx context.Context, userID int64) error {
	if err := s.walletRepo.SetStatus(ctx, userID, model.WalletLocked); err != nil {
		return fmt.Errorf("lock wallet: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Msg("wallet locked")
	return nil
}

func (s *WalletServiceImpl) UnlockWallet(ctx context.Context, userID int64) error {
	if err := s.walletRepo.SetStatus(ctx, userID, model.WalletActive); err != nil {
		return fmt.Errorf("unlock wallet: %w", err)
	}
	s.logger.Info().Int64("user_id", userID).Msg("wallet unlocked")
	return nil
}
