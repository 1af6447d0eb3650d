package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/pkg/apperrors"
)

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a new feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedback (user_id, subject, message)
		VALUES ($1, $2, $3)
		RETURNING id`,
		fb.UserID, fb.Subject, fb.Message).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting feedback: %w", err)
	}

	return id, nil
}

// List retrieves all feedback entries with pagination, newest first
func (r *FeedbackRepository) List(ctx context.Context, offset uint64, limit int) ([]models.Feedback, int64, error) {
	var totalItems int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("error counting feedback: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.user_id, f.subject, f.message, f.created_at, u.name
		FROM feedback f
		JOIN users u ON f.user_id = u.id
		ORDER BY f.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	var entries []models.Feedback
	for rows.Next() {
		var fb models.Feedback
		err := rows.Scan(&fb.ID, &fb.UserID, &fb.Subject, &fb.Message, &fb.CreatedAt, &fb.UserName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning feedback row: %w", err)
		}
		entries = append(entries, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return entries, totalItems, nil
}

// Delete removes a feedback entry
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting feedback ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeedbackNotFound
	}

	return nil
}

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification for a user
func (r *NotificationRepository) Create(ctx context.Context, userID int64, message string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)`,
		userID, message)
	if err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead marks a notification as read; the notification must belong to the user
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
