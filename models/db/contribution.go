package dbmodels

import (
	"fmt"

	"academic-records-backend/models"
)

const (
	MinPercentage = 0
	MaxPercentage = 100
)

type Contribution struct {
	BaseModel
	Approvable
	ContentType    string        `gorm:"type:varchar(16);index:idx_contribution_content"`
	ContentID      string        `gorm:"type:uuid;index:idx_contribution_content"`
	AuthorID       string        `gorm:"type:uuid;index"`
	Author         *Author       `gorm:"constraint:OnDelete:CASCADE"`
	Percentage     int           `gorm:"type:smallint;default:0"`
	AuthorStatusID *string       `gorm:"type:uuid;index"`
	AuthorStatus   *AuthorStatus `gorm:"constraint:OnDelete:SET NULL"`
}

func (c Contribution) Kind() models.ElementKind {
	return models.ElementKind(c.ContentType)
}

// Validate covers the checks not needing other records.
func (c Contribution) Validate() error {
	if !c.Kind().IsValid() {
		return models.NewValidationErrorf("content_type", "unknown element type %q", c.ContentType)
	}
	if c.ContentID == "" {
		return NewRequiredError("content_id")
	}
	if c.AuthorID == "" {
		return NewRequiredError("author_id")
	}
	if c.Percentage < MinPercentage {
		return models.NewValidationErrorf("percentage",
			"the author's contribution must be greater than or equal to %d", MinPercentage)
	}
	if c.Percentage > MaxPercentage {
		return models.NewValidationErrorf("percentage",
			"the author's contribution cannot exceed %d%%", MaxPercentage)
	}
	return nil
}

// ByEmployee expects Author to be loaded.
func (c Contribution) ByEmployee() bool {
	return c.Author != nil && c.Author.IsEmployee()
}

func (c Contribution) String() string {
	author, status := "", ""
	if c.Author != nil {
		author = c.Author.String()
	}
	if c.AuthorStatus != nil {
		status = " as " + c.AuthorStatus.Name
	}
	return fmt.Sprintf("%s%s in element of type %q (ID = %s)", author, status, c.Kind().ToHuman(), c.ContentID)
}

// ResolveAuthorStatus validates the explicit status against the author's group or,
// when no status is given, picks the single default status of that group.
// defaults holds the default statuses of the author's group.
func ResolveAuthorStatus(author Author, explicit *AuthorStatus, defaults []AuthorStatus) (AuthorStatus, error) {
	group := author.Group()
	if explicit != nil {
		if explicit.Group != group {
			return AuthorStatus{}, models.NewValidationErrorf("author_status_id",
				"the selected status is not allowed for authors of the group %q", group.ToHuman())
		}
		return *explicit, nil
	}
	switch len(defaults) {
	case 0:
		return AuthorStatus{}, models.NewValidationErrorf("author_status_id",
			"there is no default status for the group of authors %q the selected author belongs to. Choose the status manually",
			group.ToHuman())
	case 1:
		return defaults[0], nil
	}
	return AuthorStatus{}, models.NewValidationErrorf("author_status_id",
		"there is more than one default status for the group of authors %q the selected author belongs to. Change the statuses data or choose the status manually",
		group.ToHuman())
}
