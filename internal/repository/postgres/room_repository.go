package postgres

import (
	"context"
	"errors"
	"fmt"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.RoomRepository = (*RoomRepositoryImpl)(nil)

// RoomRepositoryImpl is the PostgreSQL implementation of RoomRepository
type RoomRepositoryImpl struct {
	*TransactionManager
}

func NewRoomRepository(pool *pgxpool.Pool) repository.RoomRepository {
	return &RoomRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetRoom retrieves a room with its host, capacity and nightly price
func (r *RoomRepositoryImpl) GetRoom(ctx context.Context, id int64) (*model.Room, error) {
	room := &model.Room{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, host_id, capacity, price_per_night, name FROM rooms WHERE id = $1`, id).
		Scan(&room.ID, &room.HostID, &room.Capacity, &room.PricePerNight, &room.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}
