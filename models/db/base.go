package dbmodels

import (
	"strings"
	"time"
	"unicode/utf8"

	"academic-records-backend/models"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Approvable marks records taking part in the approval workflow.
type Approvable struct {
	Approved bool `gorm:"default:false;index" json:"approved"`
}

const (
	codeAbbrMaxLen = 2
	nameMaxLen     = 255
)

func NewRequiredError(field string) error {
	return models.NewValidationError(field, "this field is required")
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewRequiredError(field)
	}
	if utf8.RuneCountInString(value) > nameMaxLen {
		return models.NewValidationErrorf(field, "at most %d characters allowed", nameMaxLen)
	}
	return nil
}

// validateCodeAbbr checks one- or two-letter uppercase codes.
func validateCodeAbbr(abbr string) error {
	if strings.TrimSpace(abbr) == "" {
		return NewRequiredError("abbr")
	}
	if utf8.RuneCountInString(abbr) > codeAbbrMaxLen {
		return models.NewValidationError("abbr", "one- or two-letter code expected")
	}
	if abbr != strings.ToUpper(abbr) {
		return models.NewValidationError("abbr", "only uppercase letters allowed")
	}
	return nil
}

// DateOf drops the clock part of t keeping its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// validateDateRange fails when both dates are given and until precedes since.
func validateDateRange(since, until *time.Time, field, what string) error {
	if since == nil || until == nil {
		return nil
	}
	if DateOf(*since).After(DateOf(*until)) {
		return models.NewValidationErrorf(field,
			"%s cannot end before it started. Set the date to %s or later", what, formatDate(since))
	}
	return nil
}
