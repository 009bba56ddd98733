package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"secondhand/market-service/internal/models"

	"github.com/lib/pq"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfiles(ctx context.Context, ids []string) (map[string]models.Profile, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*models.User, error)
	UpdatePremium(ctx context.Context, id string, premium models.PremiumStatus) error
	ExpirePremium(ctx context.Context, now time.Time) (int64, error)
	AddRefreshToken(ctx context.Context, userID, token string) error
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) error
	RemoveRefreshToken(ctx context.Context, userID, token string) error
	ClearRefreshTokens(ctx context.Context, userID string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

const userColumns = `id, email, password_hash, name, verified, address, avatar_id, avatar_url,
	is_admin, is_active, premium_subscription, premium_registered_at, premium_expires_at,
	premium_available, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var avatarID, avatarURL sql.NullString
	var registeredAt, expiresAt sql.NullTime

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Verified, &user.Address,
		&avatarID, &avatarURL, &user.IsAdmin, &user.IsActive, &user.Premium.Subscription,
		&registeredAt, &expiresAt, &user.Premium.IsAvailable, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if avatarURL.Valid {
		user.Avatar = &models.Image{ID: avatarID.String, URL: avatarURL.String}
	}
	if registeredAt.Valid {
		user.Premium.RegisteredAt = &registeredAt.Time
	}
	if expiresAt.Valid {
		user.Premium.ExpiresAt = &expiresAt.Time
	}

	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
	INSERT INTO users (id, email, password_hash, name, address, is_admin, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING created_at, updated_at
	`

	return r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Address, user.IsAdmin, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetProfiles(ctx context.Context, ids []string) (map[string]models.Profile, error) {
	query := `SELECT id, name, avatar_url FROM users WHERE id = ANY($1::uuid[])`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make(map[string]models.Profile, len(ids))
	for rows.Next() {
		var p models.Profile
		var avatar sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &avatar); err != nil {
			return nil, err
		}
		p.Avatar = avatar.String
		profiles[p.ID] = p
	}

	return profiles, rows.Err()
}

func (r *userRepository) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) SetUserActive(ctx context.Context, id string, active bool) (*models.User, error) {
	query := `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, query, id, active))
}

func (r *userRepository) UpdatePremium(ctx context.Context, id string, premium models.PremiumStatus) error {
	query := `
	UPDATE users
	SET premium_subscription = $2, premium_registered_at = $3, premium_expires_at = $4,
		premium_available = $5, updated_at = NOW()
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, premium.Subscription,
		nullTime(premium.RegisteredAt), nullTime(premium.ExpiresAt), premium.IsAvailable)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *userRepository) ExpirePremium(ctx context.Context, now time.Time) (int64, error) {
	query := `
	UPDATE users
	SET premium_subscription = '', premium_registered_at = NULL, premium_expires_at = NULL,
		premium_available = FALSE, updated_at = NOW()
	WHERE premium_expires_at IS NOT NULL AND premium_expires_at < $1
	`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *userRepository) AddRefreshToken(ctx context.Context, userID, token string) error {
	query := `INSERT INTO refresh_tokens (token, user_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, token, userID)
	return err
}

// RotateRefreshToken swaps oldToken for newToken atomically. It returns
// ErrNotFound when oldToken is not registered for the user.
func (r *userRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1 AND user_id = $2`, oldToken, userID)
	if err != nil {
		return err
	}
	if err := expectAffected(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO refresh_tokens (token, user_id) VALUES ($1, $2)`, newToken, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1 AND user_id = $2`, token, userID)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *userRepository) ClearRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func expectAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
