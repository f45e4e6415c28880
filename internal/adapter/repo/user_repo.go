package repo

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
	"aidhub/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// Create inserts user and fills in its generated id and timestamps.
// A duplicate email yields domain.ErrConflict.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Address,
		user.City,
		user.Region,
		string(user.Role),
	)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return translate(err)
	}
	return nil
}

// GetByID fetches a user by id.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByEmail fetches a user by email, case-insensitively.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, strings.TrimSpace(email)))
}

// UpdateProfile rewrites the mutable profile fields and returns the stored user.
func (r *UserRepositoryPG) UpdateProfile(ctx context.Context, id int64, in domain.ProfileUpdate) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QUpdateUserProfile, id, in.Name, in.Phone, in.Address, in.City, in.Region))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.City, &u.Region, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
