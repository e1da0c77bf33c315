package dbmodels

import (
	"fmt"
	"math"
	"strings"

	"academic-records-backend/models"
)

const maxImpactFactor = 999.999

type Publisher struct {
	BaseModel
	Name string               `gorm:"type:varchar(255)"`
	Abbr string               `gorm:"type:varchar(255)"`
	Kind models.PublisherKind `gorm:"type:varchar(1)"`
}

func (p Publisher) Validate() error {
	if err := validateName("name", p.Name); err != nil {
		return err
	}
	if err := validateName("abbr", p.Abbr); err != nil {
		return err
	}
	if !p.Kind.IsValid() {
		return models.NewValidationErrorf("kind", "unknown publisher kind %q", p.Kind)
	}
	return nil
}

func (p Publisher) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Abbr)
}

type Journal struct {
	BaseModel
	PublisherID  *string    `gorm:"type:uuid;index"`
	Publisher    *Publisher `gorm:"constraint:OnDelete:SET NULL"`
	Title        string     `gorm:"type:varchar(255)"`
	Abbr         string     `gorm:"type:varchar(255)"`
	ImpactFactor float64    `gorm:"type:numeric(6,3);default:0"`
	Rating       int        `gorm:"type:smallint;default:0"`
	AncestorID   *string    `gorm:"type:uuid;index"`
	Ancestor     *Journal   `gorm:"constraint:OnDelete:SET NULL"`
}

func (j *Journal) Clean() {
	j.ImpactFactor = RoundImpactFactor(j.ImpactFactor)
}

func (j Journal) Validate() error {
	if err := validateName("title", j.Title); err != nil {
		return err
	}
	if err := validateName("abbr", j.Abbr); err != nil {
		return err
	}
	if j.ImpactFactor < 0 || j.ImpactFactor > maxImpactFactor {
		return models.NewValidationErrorf("impact_factor", "impact factor must be between 0 and %.3f", maxImpactFactor)
	}
	if !models.IsValidJournalRating(j.Rating) {
		return models.NewValidationError("rating", models.JournalRatingError(j.Rating))
	}
	if j.AncestorID != nil && j.ID != "" && *j.AncestorID == j.ID {
		return models.NewValidationError("ancestor_id", "a journal cannot be its own predecessor")
	}
	return nil
}

func (j Journal) String() string {
	if strings.EqualFold(j.Abbr, j.Title) {
		return j.Title
	}
	return strings.TrimSpace(fmt.Sprintf("%s (%s)", j.Title, j.Abbr))
}

// RoundImpactFactor keeps three decimal places, as stored in the database.
func RoundImpactFactor(value float64) float64 {
	return math.Round(value*1000) / 1000
}
