package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
)

// fakeNoteStore is an in-memory NoteStore for moderation tests
type fakeNoteStore struct {
	notes map[int64]*models.Note
}

func (s *fakeNoteStore) List(_ context.Context, _ uint64, _ int, filters repositories.ResourceFilters) ([]models.Note, int64, error) {
	out := []models.Note{}
	for _, n := range s.notes {
		if filters.Status != "" && n.Status != filters.Status {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (s *fakeNoteStore) GetByID(_ context.Context, id int64) (*models.Note, error) {
	note, ok := s.notes[id]
	if !ok {
		return nil, apperrors.ErrNoteNotFound
	}
	copied := *note
	return &copied, nil
}

func (s *fakeNoteStore) SetStatus(_ context.Context, id int64, status models.ResourceStatus) error {
	note, ok := s.notes[id]
	if !ok {
		return apperrors.ErrNoteNotFound
	}
	note.Status = status
	return nil
}

// fakeBookStore is an in-memory BookStore for moderation tests
type fakeBookStore struct {
	books map[int64]*models.Book
}

func (s *fakeBookStore) List(_ context.Context, _ uint64, _ int, filters repositories.ResourceFilters) ([]models.Book, int64, error) {
	out := []models.Book{}
	for _, b := range s.books {
		if filters.Status != "" && b.Status != filters.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (s *fakeBookStore) GetByID(_ context.Context, id int64) (*models.Book, error) {
	book, ok := s.books[id]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}
	copied := *book
	return &copied, nil
}

func (s *fakeBookStore) SetStatus(_ context.Context, id int64, status models.ResourceStatus) error {
	book, ok := s.books[id]
	if !ok {
		return apperrors.ErrBookNotFound
	}
	book.Status = status
	return nil
}

// fakePaperStore is an in-memory PaperStore for moderation tests
type fakePaperStore struct {
	papers map[int64]*models.QuestionPaper
}

func (s *fakePaperStore) List(_ context.Context, _ uint64, _ int, filters repositories.ResourceFilters, _ int, _ models.Term) ([]models.QuestionPaper, int64, error) {
	out := []models.QuestionPaper{}
	for _, p := range s.papers {
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *fakePaperStore) GetByID(_ context.Context, id int64) (*models.QuestionPaper, error) {
	paper, ok := s.papers[id]
	if !ok {
		return nil, apperrors.ErrPaperNotFound
	}
	copied := *paper
	return &copied, nil
}

func (s *fakePaperStore) SetStatus(_ context.Context, id int64, status models.ResourceStatus) error {
	paper, ok := s.papers[id]
	if !ok {
		return apperrors.ErrPaperNotFound
	}
	paper.Status = status
	return nil
}

// fakeNotificationStore records delivered notifications per user
type fakeNotificationStore struct {
	messages map[int64][]string
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{messages: map[int64][]string{}}
}

func (s *fakeNotificationStore) Create(_ context.Context, userID int64, message string) error {
	s.messages[userID] = append(s.messages[userID], message)
	return nil
}

func newModerationFixture() (*ModerationService, *fakeNoteStore, *fakeBookStore, *fakeNotificationStore) {
	notes := &fakeNoteStore{notes: map[int64]*models.Note{
		1: {ID: 1, Title: "Graph algorithms", UploaderID: 7, Status: models.StatusPending},
		2: {ID: 2, Title: "Number theory", UploaderID: 7, Status: models.StatusApproved},
	}}
	books := &fakeBookStore{books: map[int64]*models.Book{
		5: {ID: 5, Title: "Operating systems", UploaderID: 9, Status: models.StatusRejected},
	}}
	papers := &fakePaperStore{papers: map[int64]*models.QuestionPaper{}}
	notifications := newFakeNotificationStore()

	svc := NewModerationService(notes, books, papers, notifications, zerolog.Nop())
	return svc, notes, books, notifications
}

func TestModerateApprovesPendingNote(t *testing.T) {
	svc, notes, _, notifications := newModerationFixture()

	err := svc.Moderate(context.Background(), KindNote, 1, string(models.StatusApproved))
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, notes.notes[1].Status)
	require.Len(t, notifications.messages[7], 1)
	assert.Contains(t, notifications.messages[7][0], "Graph algorithms")
	assert.Contains(t, notifications.messages[7][0], "approved")
}

func TestModerateRejectsAlreadyModeratedResource(t *testing.T) {
	svc, notes, books, _ := newModerationFixture()

	// An approved note does not accept a second decision
	err := svc.Moderate(context.Background(), KindNote, 2, string(models.StatusRejected))
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Equal(t, models.StatusApproved, notes.notes[2].Status)

	// Neither does a rejected book
	err = svc.Moderate(context.Background(), KindBook, 5, string(models.StatusApproved))
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.Equal(t, models.StatusRejected, books.books[5].Status)
}

func TestModerateRejectsInvalidDecision(t *testing.T) {
	svc, notes, _, _ := newModerationFixture()

	for _, status := range []string{"", "PENDING", "OPEN", "approved"} {
		err := svc.Moderate(context.Background(), KindNote, 1, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatus, "status %q must be refused", status)
	}
	assert.Equal(t, models.StatusPending, notes.notes[1].Status)
}

func TestModerateMissingResource(t *testing.T) {
	svc, _, _, _ := newModerationFixture()

	err := svc.Moderate(context.Background(), KindPaper, 99, string(models.StatusApproved))
	assert.ErrorIs(t, err, apperrors.ErrPaperNotFound)
}

func TestPendingNotesListsOnlyPending(t *testing.T) {
	svc, _, _, _ := newModerationFixture()

	resp, err := svc.PendingNotes(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Notes, 1)
	assert.Equal(t, "Graph algorithms", resp.Notes[0].Title)
	assert.Equal(t, string(models.StatusPending), resp.Notes[0].Status)
}
