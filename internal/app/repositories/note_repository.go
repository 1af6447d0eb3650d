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
	"github.com/campushare/backend/internal/pkg/logger"
)

// ResourceFilters collects optional list filters shared by the resource
// repositories. Zero values mean "no filter".
type ResourceFilters struct {
	Branch   string
	Semester string
	Subject  string
	Search   string
	Status   models.ResourceStatus
	Uploader int64
}

// NoteRepository handles class note database operations
type NoteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves notes with pagination and optional filtering
func (r *NoteRepository) List(ctx context.Context, offset uint64, limit int, filters ResourceFilters) ([]models.Note, int64, error) {
	baseSelect := r.sb.Select(
		"n.id", "n.title", "n.subject", "n.description", "n.branch", "n.semester",
		"n.file_url", "n.uploader_id", "n.status", "n.created_at", "n.updated_at",
		"u.name as uploader_name",
	).
		From("notes n").
		Join("users u ON n.uploader_id = u.id")

	countSelect := r.sb.Select("COUNT(*)").
		From("notes n").
		Join("users u ON n.uploader_id = u.id")

	where := resourceWhere("n", filters)
	baseSelect = baseSelect.Where(where)
	countSelect = countSelect.Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count notes query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	if totalItems == 0 {
		return []models.Note{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("n.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID, &note.Title, &note.Subject, &note.Description, &note.Branch,
			&note.Semester, &note.FileURL, &note.UploaderID, &note.Status,
			&note.CreatedAt, &note.UpdatedAt, &note.UploaderName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, totalItems, nil
}

// GetByID retrieves a note by its ID including the uploader name
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	querySql, args, err := r.sb.Select(
		"n.id", "n.title", "n.subject", "n.description", "n.branch", "n.semester",
		"n.file_url", "n.uploader_id", "n.status", "n.created_at", "n.updated_at",
		"u.name as uploader_name",
	).
		From("notes n").
		Join("users u ON n.uploader_id = u.id").
		Where(squirrel.Eq{"n.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note query: %w", err)
	}

	var note models.Note
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&note.ID, &note.Title, &note.Subject, &note.Description, &note.Branch,
		&note.Semester, &note.FileURL, &note.UploaderID, &note.Status,
		&note.CreatedAt, &note.UpdatedAt, &note.UploaderName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error querying note ID=%d: %w", id, err)
	}

	return &note, nil
}

// Create inserts a new note
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) (int64, error) {
	querySql, args, err := r.sb.Insert("notes").
		Columns("title", "subject", "description", "branch", "semester", "file_url", "uploader_id", "status").
		Values(note.Title, note.Subject, note.Description, note.Branch, note.Semester,
			note.FileURL, note.UploaderID, note.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create note query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting note: %w", err)
	}

	logger.Info().Int64("noteID", id).Msg("Note created")
	return id, nil
}

// Update updates an existing note
func (r *NoteRepository) Update(ctx context.Context, note *models.Note) error {
	querySql, args, err := r.sb.Update("notes").
		SetMap(map[string]interface{}{
			"title":       note.Title,
			"subject":     note.Subject,
			"description": note.Description,
			"branch":      note.Branch,
			"semester":    note.Semester,
			"file_url":    note.FileURL,
			"status":      note.Status,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": note.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update note query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return fmt.Errorf("error updating note ID=%d: %w", note.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// SetStatus changes a note's moderation status
func (r *NoteRepository) SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notes SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating note status ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting note ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}

// resourceWhere builds the shared filter condition for resource tables.
// alias is the table alias used in the enclosing query.
func resourceWhere(alias string, filters ResourceFilters) squirrel.And {
	where := squirrel.And{}
	if filters.Branch != "" {
		where = append(where, squirrel.Eq{alias + ".branch": filters.Branch})
	}
	if filters.Semester != "" {
		where = append(where, squirrel.Eq{alias + ".semester": filters.Semester})
	}
	if filters.Subject != "" {
		where = append(where, squirrel.ILike{alias + ".subject": "%" + strings.TrimSpace(filters.Subject) + "%"})
	}
	if filters.Search != "" {
		where = append(where, squirrel.ILike{alias + ".title": "%" + strings.TrimSpace(filters.Search) + "%"})
	}
	if filters.Status != "" {
		where = append(where, squirrel.Eq{alias + ".status": filters.Status})
	}
	if filters.Uploader > 0 {
		where = append(where, squirrel.Eq{alias + ".uploader_id": filters.Uploader})
	}
	return where
}
