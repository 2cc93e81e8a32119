// Package sqlite implements the repository contracts on the SQLite store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/domain"
)

// UserRepository implements the user repository for SQLite
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertUser writes the identity row, replacing any previous one.
func (r *UserRepository) UpsertUser(ctx context.Context, user domain.User) error {
	if _, err := r.db.ExecWrite(ctx, queryUpsertUser, user.XUID, user.Name, user.LastJoin); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpsertUser, err)
	}
	return nil
}

// UpdateLeaveTime sets last_leave for an existing user.
func (r *UserRepository) UpdateLeaveTime(ctx context.Context, xuid string, leaveTS int64) (bool, error) {
	res, err := r.db.ExecWrite(ctx, queryUpdateLeave, leaveTS, xuid)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgUpdateLeave, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgUpdateLeave, err)
	}
	return n > 0, nil
}

// GetUser returns domain.ErrUserNotFound when no row exists.
func (r *UserRepository) GetUser(ctx context.Context, xuid string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowRead(ctx, queryGetUser, xuid).Scan(&u.XUID, &u.Name, &u.LastJoin, &u.LastLeave)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetUser, r.db.WrapReadError(ctx, err))
	}
	return &u, nil
}

// SearchUsersByName expects folded to already be folded with database.FoldName.
func (r *UserRepository) SearchUsersByName(ctx context.Context, folded string, limit int) ([]domain.User, error) {
	query := querySearchUsers
	args := []any{folded}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryRead(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSearchUsers, err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.XUID, &u.Name, &u.LastJoin, &u.LastLeave); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScanUser, r.db.WrapReadError(ctx, err))
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSearchUsers, r.db.WrapReadError(ctx, err))
	}
	return users, nil
}
