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

// BookRepository handles book database operations
type BookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves books with pagination and optional filtering
func (r *BookRepository) List(ctx context.Context, offset uint64, limit int, filters ResourceFilters) ([]models.Book, int64, error) {
	baseSelect := r.sb.Select(
		"b.id", "b.title", "b.author", "b.subject", "b.edition", "b.branch", "b.semester",
		"b.file_url", "b.uploader_id", "b.status", "b.created_at", "b.updated_at",
		"u.name as uploader_name",
	).
		From("books b").
		Join("users u ON b.uploader_id = u.id")

	countSelect := r.sb.Select("COUNT(*)").
		From("books b").
		Join("users u ON b.uploader_id = u.id")

	where := resourceWhere("b", filters)
	baseSelect = baseSelect.Where(where)
	countSelect = countSelect.Where(where)

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count books query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	if totalItems == 0 {
		return []models.Book{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.Subject, &book.Edition,
			&book.Branch, &book.Semester, &book.FileURL, &book.UploaderID,
			&book.Status, &book.CreatedAt, &book.UpdatedAt, &book.UploaderName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, totalItems, nil
}

// GetByID retrieves a book by its ID including the uploader name
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	querySql, args, err := r.sb.Select(
		"b.id", "b.title", "b.author", "b.subject", "b.edition", "b.branch", "b.semester",
		"b.file_url", "b.uploader_id", "b.status", "b.created_at", "b.updated_at",
		"u.name as uploader_name",
	).
		From("books b").
		Join("users u ON b.uploader_id = u.id").
		Where(squirrel.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}

	var book models.Book
	err = r.db.QueryRow(ctx, querySql, args...).Scan(
		&book.ID, &book.Title, &book.Author, &book.Subject, &book.Edition,
		&book.Branch, &book.Semester, &book.FileURL, &book.UploaderID,
		&book.Status, &book.CreatedAt, &book.UpdatedAt, &book.UploaderName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error querying book ID=%d: %w", id, err)
	}

	return &book, nil
}

// Create inserts a new book
func (r *BookRepository) Create(ctx context.Context, book *models.Book) (int64, error) {
	querySql, args, err := r.sb.Insert("books").
		Columns("title", "author", "subject", "edition", "branch", "semester", "file_url", "uploader_id", "status").
		Values(book.Title, book.Author, book.Subject, book.Edition, book.Branch,
			book.Semester, book.FileURL, book.UploaderID, book.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create book query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, querySql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting book: %w", err)
	}

	logger.Info().Int64("bookID", id).Msg("Book created")
	return id, nil
}

// Update updates an existing book
func (r *BookRepository) Update(ctx context.Context, book *models.Book) error {
	querySql, args, err := r.sb.Update("books").
		SetMap(map[string]interface{}{
			"title":      book.Title,
			"author":     book.Author,
			"subject":    book.Subject,
			"edition":    book.Edition,
			"branch":     book.Branch,
			"semester":   book.Semester,
			"file_url":   book.FileURL,
			"status":     book.Status,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update book query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, querySql, args...)
	if err != nil {
		return fmt.Errorf("error updating book ID=%d: %w", book.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

// SetStatus changes a book's moderation status
func (r *BookRepository) SetStatus(ctx context.Context, id int64, status models.ResourceStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE books SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating book status ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}

// Delete removes a book
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting book ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookNotFound
	}

	return nil
}
