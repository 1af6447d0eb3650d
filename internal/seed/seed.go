package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushare/backend/internal/app/models"
	"github.com/campushare/backend/internal/app/repositories"
	"github.com/campushare/backend/internal/pkg/apperrors"
	"github.com/campushare/backend/internal/pkg/auth"
)

// CreateDefaultData seeds demo accounts and sample resources for local
// development. Existing data is left alone; the reserved admin account is
// never seeded because it lives in configuration, not in storage.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	noteRepo := repositories.NewNoteRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	demoHash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	var finalErr error

	student := &models.User{
		Name:         "Demo Student",
		RegNo:        "CS2021001",
		Branch:       "Computer Science",
		Semester:     "5",
		PasswordHash: demoHash,
		Role:         models.RoleStudent,
		CanUpload:    true,
	}
	studentID, err := userRepo.Create(ctx, student)
	if err != nil && !errors.Is(err, apperrors.ErrRegNoExists) {
		lgr.Error().Err(err).Msg("Error creating demo student")
		finalErr = errors.Join(finalErr, err)
	}

	teacher := &models.User{
		Name:         "Demo Teacher",
		RegNo:        "FAC2015002",
		Branch:       "Computer Science",
		Semester:     "-",
		PasswordHash: demoHash,
		Role:         models.RoleTeacher,
		CanUpload:    true,
	}
	if _, err := userRepo.Create(ctx, teacher); err != nil && !errors.Is(err, apperrors.ErrRegNoExists) {
		lgr.Error().Err(err).Msg("Error creating demo teacher")
		finalErr = errors.Join(finalErr, err)
	}

	// A sample approved note so fresh installs have something to browse
	if studentID > 0 {
		note := &models.Note{
			Title:       "Operating Systems Unit 1",
			Subject:     "Operating Systems",
			Description: "Process management and scheduling overview",
			Branch:      "Computer Science",
			Semester:    "5",
			FileURL:     "https://drive.example.com/os-unit-1",
			UploaderID:  studentID,
			Status:      models.StatusApproved,
		}
		if _, err := noteRepo.Create(ctx, note); err != nil {
			lgr.Error().Err(err).Msg("Error creating sample note")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
