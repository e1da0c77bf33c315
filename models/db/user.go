package dbmodels

import (
	"strings"
	"time"
	"unicode"

	"academic-records-backend/models"
)

type User struct {
	BaseModel
	Username    string     `gorm:"type:varchar(150);uniqueIndex"`
	Password    string     `gorm:"type:varchar(128)"`
	FirstName   string     `gorm:"type:varchar(150)"`
	LastName    string     `gorm:"type:varchar(150)"`
	Email       string     `gorm:"type:varchar(254)"`
	Sex         models.Sex `gorm:"type:varchar(1)"`
	Slug        string     `gorm:"type:varchar(50);index"`
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	LastLogin   *time.Time
	DateJoined  time.Time
}

// Clean fills the derived fields before the user is saved.
func (u *User) Clean() {
	if u.Slug == "" {
		u.Slug = u.Username
	}
	u.Sex = u.Sex.Normalize()
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return NewRequiredError("username")
	}
	if u.Password == "" {
		return NewRequiredError("password")
	}
	if !u.Sex.IsValid() {
		return models.NewValidationErrorf("sex", "unknown value %q", u.Sex)
	}
	return nil
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ShortName returns the surname followed by the initials of the given names,
// e.g. "Kowalski J. K." for Jan Krzysztof Kowalski.
func (u User) ShortName() string {
	parts := []string{}
	if last := strings.TrimSpace(u.LastName); last != "" {
		parts = append(parts, last)
	}
	for _, name := range strings.Fields(u.FirstName) {
		first := []rune(name)[0]
		parts = append(parts, string(unicode.ToUpper(first))+".")
	}
	return strings.Join(parts, " ")
}

// HasMissingData reports whether any of the personal data fields is empty.
func (u User) HasMissingData() bool {
	return u.FirstName == "" || u.LastName == "" || u.Email == ""
}

func (u User) Role() models.UserRole {
	return models.RoleOf(u.IsStaff, u.IsSuperuser)
}

func (u User) String() string {
	return u.Username
}
