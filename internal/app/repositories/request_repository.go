package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/pkg/apperrors"
)

// RequestFilters collects optional list filters for material requests
type RequestFilters struct {
	Branch    string
	Semester  string
	Search    string
	Status    models.RequestStatus
	Requester int64
}

// RequestRepository handles material request database operations
type RequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves material requests with pagination and optional filtering
func (r *RequestRepository) List(ctx context.Context, offset uint64, limit int, filters RequestFilters) ([]models.MaterialRequest, int64, error) {
	baseSelect := r.sb.Select(
		"mr.id", "mr.requester_id", "mr.title", "mr.description", "mr.branch",
		"mr.semester", "mr.status", "mr.created_at", "mr.updated_at",
		"u.name as requester_name",
	).
		From("material_requests mr").
		Join("users u ON mr.requester_id = u.id")

	countSelect := r.sb.Select("COUNT(*)").
		From("material_requests mr").
		Join("users u ON mr.requester_id = u.id")

	where := squirrel.And{}
	if filters.Branch != "" {
		where = append(where, squirrel.Eq{"mr.branch": filters.Branch})
	}
	if filters.Semester != "" {
		where = append(where, squirrel.Eq{"mr.semester": filters.Semester})
	}
	if filters.Search != "" {
		where = append(where, squirrel.ILike{"mr.title": "%" + strings.TrimSpace(filters.Search) + "%"})
	}
	if filters.Status != "" {
		where = append(where, squirrel.Eq{"mr.status": filters.Status})
	}
	if filters.Requester > 0 {
		where = append(where, squirrel.Eq{"mr.requester_id": filters.Requester})
	}

	baseSelect = baseSelect.Where(where)
	countSelect = countSelect.Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count requests query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	if totalItems == 0 {
		return []models.MaterialRequest{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("mr.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var requests []models.MaterialRequest
	for rows.Next() {
		var req models.MaterialRequest
		err := rows.Scan(
			&req.ID, &req.RequesterID, &req.Title, &req.Description, &req.Branch,
			&req.Semester, &req.Status, &req.CreatedAt, &req.UpdatedAt,
			&req.RequesterName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating request rows: %w", err)
	}

	return requests, totalItems, nil
}

// GetByID retrieves a material request by its ID
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.MaterialRequest, error) {
	var req models.MaterialRequest
	err := r.db.QueryRow(ctx, `
		SELECT mr.id, mr.requester_id, mr.title, mr.description, mr.branch,
		       mr.semester, mr.status, mr.created_at, mr.updated_at, u.name
		FROM material_requests mr
		JOIN users u ON mr.requester_id = u.id
		WHERE mr.id = $1`, id).Scan(
		&req.ID, &req.RequesterID, &req.Title, &req.Description, &req.Branch,
		&req.Semester, &req.Status, &req.CreatedAt, &req.UpdatedAt, &req.RequesterName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error querying request ID=%d: %w", id, err)
	}

	return &req, nil
}

// Create inserts a new material request
func (r *RequestRepository) Create(ctx context.Context, req *models.MaterialRequest) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO material_requests (requester_id, title, description, branch, semester, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		req.RequesterID, req.Title, req.Description, req.Branch, req.Semester, req.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting request: %w", err)
	}

	return id, nil
}

// SetStatus changes a material request's status
func (r *RequestRepository) SetStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE material_requests SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating request status ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}

// Delete removes a material request
func (r *RequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM material_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting request ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}

	return nil
}
