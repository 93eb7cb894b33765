package service

import (
	"context"
	"fmt"
	"time"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ReconciliationServiceImpl repairs the one failure mode the transactional
// transfers should make impossible: a debit leg on disk without its credit
// leg. It compensates by re-crediting the debited wallet and flags the
// original entry for operators.
type ReconciliationServiceImpl struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerRepository
	dbManager  repository.DBManager
	grace      time.Duration
	logger     zerolog.Logger
}

func NewReconciliationService(
	walletRepo repository.WalletRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	grace time.Duration,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		dbManager:  dbManager,
		grace:      grace,
		logger:     logger,
	}
}

// ReconcileTransfers scans for half-applied transfer groups and compensates
// each in its own transaction.
func (s *ReconciliationServiceImpl) ReconcileTransfers(ctx context.Context) error {
	cutoff := time.Now().Add(-s.grace)
	debits, err := s.ledgerRepo.FindHalfAppliedTransfers(ctx, cutoff, 10)
	if err != nil {
		return fmt.Errorf("find half-applied transfers: %w", err)
	}

	if len(debits) == 0 {
		s.logger.Debug().Msg("no half-applied transfers found")
		return nil
	}

	var repaired int
	for _, debit := range debits {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.compensate(ctx, debit); err != nil {
			s.logger.Error().Err(err).
				Str("reference", debit.Reference).
				Str("transfer_group", deref(debit.TransferGroup)).
				Msg("failed to compensate half-applied transfer")
			continue
		}
		repaired++
	}

	s.logger.Info().
		Int("found", len(debits)).
		Int("repaired", repaired).
		Msg("transfer reconciliation completed")
	return nil
}

// compensate re-credits the wallet the orphaned debit came from, under the
// same transfer group so the pair reads balanced afterwards, and flags the
// original entry.
func (s *ReconciliationServiceImpl) compensate(ctx context.Context, debit *model.Transaction) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		wallet, err := s.walletRepo.GetWalletByIDForUpdate(ctx, debit.WalletID, tx)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}

		balanceBefore := wallet.Balance
		wallet.Balance += debit.Amount
		if err := s.walletRepo.UpdateBalance(ctx, wallet, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		compensation := &model.Transaction{
			Reference:     debit.Reference + ":compensation",
			WalletID:      wallet.ID,
			BookingID:     debit.BookingID,
			Type:          model.TypeRefund,
			Amount:        debit.Amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  wallet.Balance,
			Status:        model.TxCompleted,
			TransferGroup: debit.TransferGroup,
			Metadata: map[string]string{
				"reason":          "reconciliation_compensation",
				"debit_reference": debit.Reference,
			},
		}
		if err := s.ledgerRepo.InsertTransaction(ctx, compensation, tx); err != nil {
			return fmt.Errorf("append compensation entry: %w", err)
		}

		if err := s.ledgerRepo.FlagTransaction(ctx, debit.ID, tx); err != nil {
			return fmt.Errorf("flag debit entry: %w", err)
		}

		s.logger.Warn().
			Str("debit_reference", debit.Reference).
			Int64("wallet_id", wallet.ID).
			Int64("amount", debit.Amount).
			Msg("half-applied transfer compensated, flagged for review")
		return nil
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
