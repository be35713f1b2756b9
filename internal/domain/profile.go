package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoSlots is the number of image slots a profile has.
const PhotoSlots = 3

type Profile struct {
	ProfileID         uuid.UUID          `json:"profile_id"`
	AccountID         uuid.UUID          `json:"account_id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Gender            Gender             `json:"gender"`
	DateOfBirth       time.Time          `json:"date_of_birth"`
	BookInterest      *BookInterest      `json:"book_interest"`
	SportInterest     *SportInterest     `json:"sport_interest"`
	MovieInterest     *MovieInterest     `json:"movie_interest"`
	MusicInterest     *MusicInterest     `json:"music_interest"`
	FoodInterest      *FoodInterest      `json:"food_interest"`
	LifestyleInterest *LifestyleInterest `json:"lifestyle_interest"`
	TravelInterest    *TravelInterest    `json:"travel_interest"`
	HobbyInterest     *HobbyInterest     `json:"hobby_interest"`
	ImagePaths        [PhotoSlots]string `json:"image_paths"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// InterestCount returns how many of the eight interest fields are set.
func (p *Profile) InterestCount() int {
	n := 0
	for _, set := range []bool{
		p.BookInterest != nil,
		p.SportInterest != nil,
		p.MovieInterest != nil,
		p.MusicInterest != nil,
		p.FoodInterest != nil,
		p.LifestyleInterest != nil,
		p.TravelInterest != nil,
		p.HobbyInterest != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// StoredPhotos returns the non-empty image file names.
func (p *Profile) StoredPhotos() []string {
	names := make([]string, 0, PhotoSlots)
	for _, name := range p.ImagePaths {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
