package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const ledgerColumns = `id, reference, wallet_id, booking_id, type, amount, balance_before,
        balance_after, status, payment_method, gateway_ref, transfer_group, flagged, metadata, created_at`

func scanLedgerEntry(row pgx.Row) (*model.Transaction, error) {
	trans := &model.Transaction{}
	err := row.Scan(&trans.ID, &trans.Reference, &trans.WalletID, &trans.BookingID,
		&trans.Type, &trans.Amount, &trans.BalanceBefore, &trans.BalanceAfter,
		&trans.Status, &trans.PaymentMethod, &trans.GatewayRef, &trans.TransferGroup,
		&trans.Flagged, &trans.Metadata, &trans.CreatedAt)
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// InsertTransaction appends a ledger entry
func (r *LedgerRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO wallet_transactions
            (reference, wallet_id, booking_id, type, amount, balance_before,
             balance_after, status, payment_method, gateway_ref, transfer_group, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		trans.Reference, trans.WalletID, trans.BookingID, trans.Type, trans.Amount,
		trans.BalanceBefore, trans.BalanceAfter, trans.Status, trans.PaymentMethod,
		trans.GatewayRef, trans.TransferGroup, trans.Metadata).
		Scan(&trans.ID, &trans.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.ErrDuplicateSettlement
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// GetByReference retrieves a ledger entry by its unique reference
func (r *LedgerRepositoryImpl) GetByReference(ctx context.Context, reference string, tx ...pgx.Tx) (*model.Transaction, error) {
	executor := r.getExecutor(tx...)
	trans, err := scanLedgerEntry(executor.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM wallet_transactions WHERE reference = $1`, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return trans, nil
}

// GetByGatewayRef retrieves a completed entry carrying a gateway reference
func (r *LedgerRepositoryImpl) GetByGatewayRef(ctx context.Context, gatewayRef string, tx ...pgx.Tx) (*model.Transaction, error) {
	executor := r.getExecutor(tx...)
	trans, err := scanLedgerEntry(executor.QueryRow(ctx, `
        SELECT `+ledgerColumns+`
        FROM wallet_transactions
        WHERE gateway_ref = $1 AND status = 'completed'
        ORDER BY id
        LIMIT 1`, gatewayRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry by gateway ref: %w", err)
	}
	return trans, nil
}

// ListByWallet retrieves paginated entries for a wallet, newest first
func (r *LedgerRepositoryImpl) ListByWallet(ctx context.Context, walletID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// FindHalfAppliedTransfers returns debit legs of transfer groups whose credit
// leg is missing or not completed. Recent groups are skipped so in-flight
// transactions are not flagged.
func (r *LedgerRepositoryImpl) FindHalfAppliedTransfers(ctx context.Context, olderThan time.Time, limit int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM wallet_transactions d
        WHERE d.transfer_group IS NOT NULL
          AND d.type IN ('payment', 'withdraw')
          AND d.status = 'completed'
          AND d.flagged = FALSE
          AND d.created_at < $1
          AND NOT EXISTS (
              SELECT 1 FROM wallet_transactions c
              WHERE c.transfer_group = d.transfer_group
                AND c.id <> d.id
                AND c.status = 'completed'
          )
        ORDER BY d.created_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query half-applied transfers: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		trans, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan half-applied transfer: %w", err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// FlagTransaction marks an entry for operator attention
func (r *LedgerRepositoryImpl) FlagTransaction(ctx context.Context, id int64, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx,
		`UPDATE wallet_transactions SET flagged = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to flag ledger entry: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrTransferNotFound
	}
	return nil
}
