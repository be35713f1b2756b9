package profile

import (
	"mime/multipart"
	"time"

	"github.com/gdugdh24/profiles-backend/internal/domain"
	"github.com/google/uuid"
)

// ProfileRequest is the payload of both create and update. It binds from a
// multipart form (with photo files under "images") or from JSON.
type ProfileRequest struct {
	AccountID         string                    `form:"account_id" json:"account_id" validate:"required,uuid"`
	Name              string                    `form:"name" json:"name" validate:"required,max=30"`
	Description       string                    `form:"description" json:"description" validate:"required,max=500"`
	Gender            domain.Gender             `form:"gender" json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth       time.Time                 `form:"date_of_birth" json:"date_of_birth" time_format:"2006-01-02" validate:"required,past"`
	BookInterest      *domain.BookInterest      `form:"book_interest" json:"book_interest,omitempty" validate:"omitempty,oneof=Fantasy ScienceFiction Mystery Thriller Romance Horror Biography History Poetry SelfHelp"`
	SportInterest     *domain.SportInterest     `form:"sport_interest" json:"sport_interest,omitempty" validate:"omitempty,oneof=Football Basketball Tennis Running Swimming Cycling Yoga Gym Hiking MartialArts"`
	MovieInterest     *domain.MovieInterest     `form:"movie_interest" json:"movie_interest,omitempty" validate:"omitempty,oneof=Action Comedy Drama Thriller Horror Romance ScienceFiction Documentary Animation Fantasy"`
	MusicInterest     *domain.MusicInterest     `form:"music_interest" json:"music_interest,omitempty" validate:"omitempty,oneof=Rock Pop Jazz Classical HipHop Electronic Metal Country Indie Blues"`
	FoodInterest      *domain.FoodInterest      `form:"food_interest" json:"food_interest,omitempty" validate:"omitempty,oneof=Italian Japanese Mexican Indian Chinese French Vegan Vegetarian StreetFood FastFood"`
	LifestyleInterest *domain.LifestyleInterest `form:"lifestyle_interest" json:"lifestyle_interest,omitempty" validate:"omitempty,oneof=Active Homebody NightOwl EarlyBird Minimalist Social Introvert Adventurous"`
	TravelInterest    *domain.TravelInterest    `form:"travel_interest" json:"travel_interest,omitempty" validate:"omitempty,oneof=Beach Mountains CityBreaks Backpacking RoadTrips Cruises Camping Luxury"`
	HobbyInterest     *domain.HobbyInterest     `form:"hobby_interest" json:"hobby_interest,omitempty" validate:"omitempty,oneof=Photography Gaming Cooking Painting Reading Gardening Dancing Writing Crafts Volunteering"`

	Images []*multipart.FileHeader `form:"images" json:"-"`
}

// normalize turns interests sent as empty form fields into unset ones.
func (r *ProfileRequest) normalize() {
	r.BookInterest = nilIfEmpty(r.BookInterest)
	r.SportInterest = nilIfEmpty(r.SportInterest)
	r.MovieInterest = nilIfEmpty(r.MovieInterest)
	r.MusicInterest = nilIfEmpty(r.MusicInterest)
	r.FoodInterest = nilIfEmpty(r.FoodInterest)
	r.LifestyleInterest = nilIfEmpty(r.LifestyleInterest)
	r.TravelInterest = nilIfEmpty(r.TravelInterest)
	r.HobbyInterest = nilIfEmpty(r.HobbyInterest)
}

func nilIfEmpty[T ~string](v *T) *T {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

// toEntity maps a validated request. ProfileID and ImagePaths are left for
// the caller to fill.
func (r *ProfileRequest) toEntity(accountID uuid.UUID) *domain.Profile {
	return &domain.Profile{
		AccountID:         accountID,
		Name:              r.Name,
		Description:       r.Description,
		Gender:            r.Gender,
		DateOfBirth:       r.DateOfBirth,
		BookInterest:      r.BookInterest,
		SportInterest:     r.SportInterest,
		MovieInterest:     r.MovieInterest,
		MusicInterest:     r.MusicInterest,
		FoodInterest:      r.FoodInterest,
		LifestyleInterest: r.LifestyleInterest,
		TravelInterest:    r.TravelInterest,
		HobbyInterest:     r.HobbyInterest,
	}
}
