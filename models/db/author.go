package dbmodels

import (
	"fmt"
	"strings"

	"academic-records-backend/models"
)

type Author struct {
	BaseModel
	EmployeeID *string   `gorm:"type:uuid;uniqueIndex:idx_author_employee_alias"`
	Employee   *Employee `gorm:"constraint:OnDelete:SET NULL"`
	Alias      string    `gorm:"type:varchar(255);uniqueIndex:idx_author_employee_alias"`
}

// Clean derives the alias from the employee's short name when only the employee is given.
// Aliases given explicitly take precedence. Employee.User must be loaded.
func (a *Author) Clean() error {
	a.Alias = strings.TrimSpace(a.Alias)
	if !a.IsEmployee() && a.Alias == "" {
		return models.NewValidationError("",
			"creating or changing an author requires an alias or an employee; both fields cannot be empty")
	}
	if a.IsEmployee() && a.Alias == "" && a.Employee != nil {
		a.Alias = a.Employee.ShortName()
	}
	if a.Alias == "" {
		return NewRequiredError("alias")
	}
	return nil
}

func (a Author) IsEmployee() bool {
	return a.EmployeeID != nil && *a.EmployeeID != ""
}

func (a Author) Group() models.AuthorGroup {
	if a.IsEmployee() {
		return models.AuthorsEmployees
	}
	return models.AuthorsNotEmployees
}

func (a Author) String() string {
	if a.IsEmployee() && a.Employee != nil {
		return fmt.Sprintf("%s (employee: %s)", a.Alias, a.Employee)
	}
	return a.Alias
}

type AuthorStatus struct {
	BaseModel
	Name    string             `gorm:"type:varchar(255)"`
	Abbr    string             `gorm:"type:varchar(2)"`
	Group   models.AuthorGroup `gorm:"type:varchar(1);index"`
	Default models.YesNo       `gorm:"type:varchar(1);default:N"`
}

func (s AuthorStatus) Validate() error {
	if err := validateName("name", s.Name); err != nil {
		return err
	}
	if err := validateCodeAbbr(s.Abbr); err != nil {
		return err
	}
	if !s.Group.IsValid() {
		return models.NewValidationErrorf("group", "unknown group of authors %q", s.Group)
	}
	if !s.Default.IsValid() {
		return models.NewValidationErrorf("default", "unknown answer %q", s.Default)
	}
	return nil
}

func (s AuthorStatus) IsDefault() bool {
	return s.Default.Bool()
}

func (s AuthorStatus) ShortString() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Abbr)
}

func (s AuthorStatus) String() string {
	result := fmt.Sprintf("%s for group %q", s.ShortString(), s.Group.ToHuman())
	if s.IsDefault() {
		result += " (default)"
	}
	return result
}

// DuplicateDefaultStatusError is returned when the group already has a default status.
func DuplicateDefaultStatusError(group models.AuthorGroup, existing AuthorStatus) error {
	return models.NewValidationErrorf("default",
		"the group %q already has a default status: %q", group.ToHuman(), existing.ShortString())
}
