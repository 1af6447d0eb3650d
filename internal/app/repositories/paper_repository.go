package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/logger"
)

// PaperRepository handles past-year question paper database operations
type PaperRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaperRepository creates a new PaperRepository
func NewPaperRepository(db *pgxpool.Pool) *PaperRepository {
	return &PaperRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves question papers with pagination and optional filtering.
// year and term filters are specific to papers and passed separately.
func (r *PaperRepository) List(ctx context.Context, offset uint64, limit int, filters ResourceFilters, year int, term models.Term) ([]models.QuestionPaper, int64, error) {
	baseSelect := r.sb.Select(
		"p.id", "p.title", "p.subject", "p.course_code", "p.year", "p.term",
		"p.branch", "p.semester", "p.file_url", "p.uploader_id", "p.status",
		"p.created_at", "p.updated_at",
		"u.name as uploader_name",
	).
		From("question_papers p").
		Join("users u ON p.uploader_id = u.id")

	countSelect := r.sb.Select("COUNT(*)").
		From("question_papers p").
		Join("users u ON p.uploader_id = u.id")

	where := resourceWhere("p", filters)
	if year > 0 {
		where = append(where, squirrel.Eq{"p.year": year})
	}
	if term != "" {
		where = append(where, squirrel.Eq{"p.term": term})
	}
	baseSelect = baseSelect.Where(where)
	countSelect = countSelect.Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count papers query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count papers: %w", err)
	}

	if totalItems == 0 {
		return []models.QuestionPaper{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("p.year DESC", "p.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list papers query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query papers: %w", err)
	}
	defer rows.Close()

	var papers []models.QuestionPaper
	for rows.Next() {
		var paper models.QuestionPaper
		err := rows.Scan(
			&paper.ID, &paper.Title, &paper.Subject, &paper.CourseCode, &paper.Year,
			&paper.Term, &paper.Branch, &paper.Semester, &paper.FileURL,
			&paper.UploaderID, &paper.Status, &paper.CreatedAt, &paper.UpdatedAt,
			&paper.UploaderName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan paper row: %w", err)
		}
		papers = append(papers, paper)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating paper rows: %w", err)
	}

	return papers, totalItems, nil
}

// GetByID retrieves a question paper by its ID including the uploader name
func (r *PaperRepository) GetByID(ctx context.Context, id int64) (*models.QuestionPaper, error) {
	querySql, args, err := r.sb.Select(
		"p.id", "p.title", "p.subject", "p.course_code", "p.year", "p.term",
		"p.branch", "p.semester", "p.file_url", "p.uploader_id", "p.status",
		"p.created_at", "p.updated_at",
		"u.name as uploader_name",
	).
		From("question_papers p").
		Join("users u ON p.uploader_id = u.id").
		Where(squirrel.Eq{"p.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get paper query: %w", err)
	}

	var paper models.QuestionPaper
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&paper.ID, &paper.Title, &paper.Subject, &paper.CourseCode, &paper.Year,
		&paper.Term, &paper.Branch, &paper.Semester, &paper.FileURL,
		&paper.UploaderID, &paper.Status, &paper.CreatedAt, &paper.UpdatedAt,
		&paper.UploaderName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaperNotFound
		}
		return nil, fmt.Errorf("error querying paper ID=%d: %w", id, err)
	}

	return &paper, nil
}

// Create inserts a new question paper
func (r *PaperRepository) Create(ctx context.Context, paper *models.QuestionPaper) (int64, error) {
	querySql, args, err := r.sb.Insert("question_papers").
		Columns("title", "subject", "course_code", "year", "term", "branch", "semester",
			"file_url", "uploader_id", "status").
		Values(paper.Title, paper.Subject, paper.CourseCode, paper.Year, paper.Term,
			paper.Branch, paper.Semester, paper.FileURL, paper.UploaderID, paper.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create paper query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting paper: %w", err)
	}

	logger.Info().Int64("paperID", id).Msg("Question paper created")
	return id, nil
}

// Update updates an existing question paper
func (r *PaperRepository) Update(ctx context.Context, paper *models.QuestionPaper) error {
	querySql, args, err := r.sb.Update("question_papers").
		SetMap(map[string]interface{}{
			"title":       paper.Title,
			"subject":     paper.Subject,
			"course_code": paper.CourseCode,
			"year":        paper.Year,
			"term":        paper.Term,
			"branch":      paper.Branch,
			"semester":    paper.Semester,
			"file_url":    paper.FileURL,
			"status":      paper.Status,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": paper.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update paper query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return fmt.Errorf("error updating paper ID=%d: %w", paper.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}

	return nil
}

// SetStatus changes a question paper's moderation status
func (r *PaperRepository) SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE question_papers SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating paper status ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}

	return nil
}

// Delete removes a question paper
func (r *PaperRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM question_papers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting paper ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}

	return nil
}
