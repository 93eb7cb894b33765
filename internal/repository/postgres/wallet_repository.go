package postgres

import (
	"context"
	"errors"
	"fmt"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const walletColumns = `id, user_id, balance, status, total_deposited, total_withdrawn, total_spent, created_at, updated_at`

func scanWallet(row pgx.Row) (*model.Wallet, error) {
	w := &model.Wallet{}
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.Status, &w.TotalDeposited,
		&w.TotalWithdrawn, &w.TotalSpent, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetOrCreateWallet returns the wallet for a user, creating it lazily on
// first need.
func (r *WalletRepositoryImpl) GetOrCreateWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	executor := r.getExecutor(tx...)

	w, err := scanWallet(executor.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID))
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	// ON CONFLICT covers two requests creating the same wallet concurrently.
	w, err = scanWallet(executor.QueryRow(ctx, `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET updated_at = wallets.updated_at
        RETURNING `+walletColumns, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return w, nil
}

// GetWalletForUpdate retrieves a user's wallet with a row-level lock,
// creating it first if needed.
func (r *WalletRepositoryImpl) GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error) {
	w, err := scanWallet(tx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 FOR UPDATE`, userID))
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}

	if _, err := r.GetOrCreateWallet(ctx, userID, tx); err != nil {
		return nil, err
	}

	w, err = scanWallet(tx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 FOR UPDATE`, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet after create: %w", err)
	}
	return w, nil
}

// GetWalletByIDForUpdate locks an existing wallet by wallet id.
func (r *WalletRepositoryImpl) GetWalletByIDForUpdate(ctx context.Context, walletID int64, tx pgx.Tx) (*model.Wallet, error) {
	w, err := scanWallet(tx.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE id = $1 FOR UPDATE`, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return w, nil
}

// UpdateBalance persists a new balance and running totals.
func (r *WalletRepositoryImpl) UpdateBalance(ctx context.Context, w *model.Wallet, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET balance = $1,
            total_deposited = $2,
            total_withdrawn = $3,
            total_spent = $4,
            updated_at = NOW()
        WHERE id = $5`

	commandTag, err := tx.Exec(ctx, query,
		w.Balance, w.TotalDeposited, w.TotalWithdrawn, w.TotalSpent, w.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		// CONSTRAINT wallets_balance_non_negative CHECK (balance >= 0)
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}

// SetStatus transitions wallet status (lock/unlock/suspend).
func (r *WalletRepositoryImpl) SetStatus(ctx context.Context, userID int64, status model.WalletStatus) error {
	commandTag, err := r.pool.Exec(ctx,
		`UPDATE wallets SET status = $1, updated_at = NOW() WHERE user_id = $2`,
		status, userID)
	if err != nil {
		return fmt.Errorf("failed to set wallet status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}
