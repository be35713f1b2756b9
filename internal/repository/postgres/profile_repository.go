package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/profiles-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const profileColumns = `
	profile_id, account_id, name, description, gender, date_of_birth,
	book_interest, sport_interest, movie_interest, music_interest,
	food_interest, lifestyle_interest, travel_interest, hobby_interest,
	image_paths, created_at, updated_at
`

// profileRow mirrors one row of the profiles table.
type profileRow struct {
	ProfileID         uuid.UUID      `db:"profile_id"`
	AccountID         uuid.UUID      `db:"account_id"`
	Name              string         `db:"name"`
	Description       string         `db:"description"`
	Gender            string         `db:"gender"`
	DateOfBirth       time.Time      `db:"date_of_birth"`
	BookInterest      sql.NullString `db:"book_interest"`
	SportInterest     sql.NullString `db:"sport_interest"`
	MovieInterest     sql.NullString `db:"movie_interest"`
	MusicInterest     sql.NullString `db:"music_interest"`
	FoodInterest      sql.NullString `db:"food_interest"`
	LifestyleInterest sql.NullString `db:"lifestyle_interest"`
	TravelInterest    sql.NullString `db:"travel_interest"`
	HobbyInterest     sql.NullString `db:"hobby_interest"`
	ImagePaths        pq.StringArray `db:"image_paths"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (r *profileRow) toDomain() *domain.Profile {
	p := &domain.Profile{
		ProfileID:         r.ProfileID,
		AccountID:         r.AccountID,
		Name:              r.Name,
		Description:       r.Description,
		Gender:            domain.Gender(r.Gender),
		DateOfBirth:       r.DateOfBirth,
		BookInterest:      fromNull[domain.BookInterest](r.BookInterest),
		SportInterest:     fromNull[domain.SportInterest](r.SportInterest),
		MovieInterest:     fromNull[domain.MovieInterest](r.MovieInterest),
		MusicInterest:     fromNull[domain.MusicInterest](r.MusicInterest),
		FoodInterest:      fromNull[domain.FoodInterest](r.FoodInterest),
		LifestyleInterest: fromNull[domain.LifestyleInterest](r.LifestyleInterest),
		TravelInterest:    fromNull[domain.TravelInterest](r.TravelInterest),
		HobbyInterest:     fromNull[domain.HobbyInterest](r.HobbyInterest),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	copy(p.ImagePaths[:], r.ImagePaths)
	return p
}

// mutableArgs lists the columns Update overwrites, in $2..$14 order.
func mutableArgs(p *domain.Profile) []any {
	return []any{
		p.Name,
		p.Description,
		string(p.Gender),
		p.DateOfBirth,
		toNull(p.BookInterest),
		toNull(p.SportInterest),
		toNull(p.MovieInterest),
		toNull(p.MusicInterest),
		toNull(p.FoodInterest),
		toNull(p.LifestyleInterest),
		toNull(p.TravelInterest),
		toNull(p.HobbyInterest),
		pq.StringArray(p.ImagePaths[:]),
	}
}

func toNull[T ~string](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}

func fromNull[T ~string](ns sql.NullString) *T {
	if !ns.Valid {
		return nil
	}
	v := T(ns.String)
	return &v
}

type profileRepository struct {
	db    *sqlx.DB
	newID func() uuid.UUID
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db, newID: uuid.New}
}

// Create inserts the profile unless one already exists for its AccountID.
// The insert and the duplicate check are one statement, so two concurrent
// creates for the same account cannot both succeed.
func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) (uuid.UUID, error) {
	const op = "repository/postgres/profiles/Create"
	lg := logger.From(ctx).With("op", op)

	if profile == nil {
		lg.Error("profile cannot be empty")
		return uuid.Nil, domain.InvalidInput("Profile cannot be null or empty")
	}
	if profile.AccountID == uuid.Nil {
		lg.Error("account id cannot be empty")
		return uuid.Nil, domain.InvalidInput("AccountID cannot be empty")
	}
	lg = lg.With("account_id", profile.AccountID.String())

	profile.ProfileID = r.newID()

	query := `
		INSERT INTO profiles (
			profile_id, account_id, name, description, gender, date_of_birth,
			book_interest, sport_interest, movie_interest, music_interest,
			food_interest, lifestyle_interest, travel_interest, hobby_interest,
			image_paths
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (account_id) DO NOTHING
		RETURNING account_id
	`
	args := append([]any{profile.ProfileID, profile.AccountID}, mutableArgs(profile)...)

	var accountID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			lg.Warn("profile with the same account id already exists")
			return uuid.Nil, domain.Conflict("Profile with the same AccountID already exists")
		}
		lg.Error("failed to add profile", "err", err)
		return uuid.Nil, domain.StorageFailure("Failed to add profile to the database", fmt.Errorf("%s: %w", op, err))
	}

	lg.Info("profile added", "profile_id", profile.ProfileID.String())
	return accountID, nil
}

func (r *profileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	const op = "repository/postgres/profiles/GetByAccountID"
	lg := logger.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil {
		lg.Error("account id cannot be empty")
		return nil, domain.InvalidInput("Profile ID cannot be empty")
	}

	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE account_id = $1`
	if err := r.db.GetContext(ctx, &row, query, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			lg.Warn("profile not found")
			return nil, domain.NotFound("Profile with the given ID does not exist")
		}
		lg.Error("failed to get profile", "err", err)
		return nil, domain.StorageFailure("Failed to read profile from the database", fmt.Errorf("%s: %w", op, err))
	}

	lg.Debug("profile retrieved")
	return row.toDomain(), nil
}

// Update replaces all mutable columns. ProfileID, AccountID and CreatedAt are kept.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	const op = "repository/postgres/profiles/Update"
	lg := logger.From(ctx).With("op", op)

	if profile == nil {
		lg.Error("profile cannot be empty")
		return domain.InvalidInput("Profile cannot be null or empty")
	}
	if profile.AccountID == uuid.Nil {
		lg.Error("account id cannot be empty")
		return domain.InvalidInput("AccountID cannot be empty")
	}
	lg = lg.With("account_id", profile.AccountID.String())

	query := `
		UPDATE profiles
		SET name = $2, description = $3, gender = $4, date_of_birth = $5,
		    book_interest = $6, sport_interest = $7, movie_interest = $8,
		    music_interest = $9, food_interest = $10, lifestyle_interest = $11,
		    travel_interest = $12, hobby_interest = $13, image_paths = $14,
		    updated_at = CURRENT_TIMESTAMP
		WHERE account_id = $1
	`
	args := append([]any{profile.AccountID}, mutableArgs(profile)...)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		lg.Error("failed to update profile", "err", err)
		return domain.StorageFailure("Failed to update profile in the database", fmt.Errorf("%s: %w", op, err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		lg.Error("failed to read affected rows", "err", err)
		return domain.StorageFailure("Failed to update profile in the database", fmt.Errorf("%s: %w", op, err))
	}
	if rows == 0 {
		lg.Warn("profile not found")
		return domain.NotFound("Profile with the given AccountID does not exist")
	}

	lg.Info("profile updated")
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	const op = "repository/postgres/profiles/Delete"
	lg := logger.From(ctx).With("op", op, "account_id", accountID.String())

	if accountID == uuid.Nil {
		lg.Error("account id cannot be empty")
		return domain.InvalidInput("Profile ID cannot be empty")
	}

	query := `DELETE FROM profiles WHERE account_id = $1`
	result, err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		lg.Error("failed to delete profile", "err", err)
		return domain.StorageFailure("Failed to delete profile from the database", fmt.Errorf("%s: %w", op, err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		lg.Error("failed to read affected rows", "err", err)
		return domain.StorageFailure("Failed to delete profile from the database", fmt.Errorf("%s: %w", op, err))
	}
	if rows == 0 {
		lg.Warn("profile not found")
		return domain.NotFound("Profile with the given ID does not exist")
	}

	lg.Info("profile deleted")
	return nil
}
