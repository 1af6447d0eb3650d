package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/pkg/apperrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByRegNo(ctx context.Context, regNo string) (*models.User, error)
	RegNoExists(ctx context.Context, regNo string) (bool, error)
	List(ctx context.Context, offset uint64, limit int) ([]models.User, int64, error)
	UpdateProfile(ctx context.Context, userID int64, name, branch, semester string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	SetBlocked(ctx context.Context, userID int64, blocked bool) error
	SetCanUpload(ctx context.Context, userID int64, canUpload bool) error
	SetRole(ctx context.Context, userID int64, role models.RoleType) error
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, reg_no, branch, semester, password_hash, role, blocked, can_upload, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.RegNo, &user.Branch, &user.Semester,
		&user.PasswordHash, &user.Role, &user.Blocked, &user.CanUpload,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return user, nil
}

// Create creates a new user and returns its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.RegNoExists(ctx, user.RegNo)
	if err != nil {
		return 0, fmt.Errorf("error checking registration number: %w", err)
	}
	if exists {
		return 0, apperrors.ErrRegNoExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (name, reg_no, branch, semester, password_hash, role, blocked, can_upload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Name, user.RegNo, user.Branch, user.Semester, user.PasswordHash,
		user.Role, user.Blocked, user.CanUpload).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)
	return scanUser(row)
}

// GetByRegNo retrieves a user by registration number (exact match)
func (r *UserRepository) GetByRegNo(ctx context.Context, regNo string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE reg_no = $1`, regNo)
	return scanUser(row)
}

// RegNoExists checks if a registration number already exists
func (r *UserRepository) RegNoExists(ctx context.Context, regNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE reg_no = $1)`,
		regNo).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking registration number: %w", err)
	}

	return exists, nil
}

// List retrieves users with pagination
func (r *UserRepository) List(ctx context.Context, offset uint64, limit int) ([]models.User, int64, error) {
	var totalItems int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.RegNo, &user.Branch, &user.Semester,
			&user.PasswordHash, &user.Role, &user.Blocked, &user.CanUpload,
			&user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, totalItems, nil
}

// UpdateProfile updates a user's basic profile information
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, name, branch, semester string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $1, branch = $2, semester = $3, updated_at = $4
		WHERE id = $5`,
		name, branch, semester, time.Now(), userID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = $2
		WHERE id = $3`,
		passwordHash, time.Now(), userID)

	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetBlocked updates the blocked flag
func (r *UserRepository) SetBlocked(ctx context.Context, userID int64, blocked bool) error {
	return r.setFlag(ctx, userID, "blocked", blocked)
}

// SetCanUpload updates the uploader privilege flag
func (r *UserRepository) SetCanUpload(ctx context.Context, userID int64, canUpload bool) error {
	return r.setFlag(ctx, userID, "can_upload", canUpload)
}

func (r *UserRepository) setFlag(ctx context.Context, userID int64, column string, value bool) error {
	// column is a compile-time constant from the two callers above
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET `+column+` = $1, updated_at = $2
		WHERE id = $3`,
		value, time.Now(), userID)

	if err != nil {
		return fmt.Errorf("error updating user flag %s: %w", column, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetRole changes a user's role
func (r *UserRepository) SetRole(ctx context.Context, userID int64, role models.RoleType) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET role = $1, updated_at = $2
		WHERE id = $3`,
		role, time.Now(), userID)

	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
