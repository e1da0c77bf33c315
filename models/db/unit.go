package dbmodels

import (
	"strings"
)

const (
	FullNameSep = ", "
	FullAbbrSep = "/"
)

// Unit is a level of the University -> Faculty -> Department chain.
type Unit interface {
	UnitName() string
	UnitAbbr() string
	Parent() Unit
}

// Ancestors walks the chain upwards, starting with the unit itself when includeSelf is set.
func Ancestors(unit Unit, includeSelf bool) []Unit {
	result := []Unit{}
	if unit == nil {
		return result
	}
	current := unit
	if !includeSelf {
		current = unit.Parent()
	}
	for current != nil {
		result = append(result, current)
		current = current.Parent()
	}
	return result
}

func UnitFullName(unit Unit, sep string) string {
	names := []string{}
	for _, item := range Ancestors(unit, true) {
		names = append(names, item.UnitName())
	}
	return strings.Join(names, sep)
}

func UnitFullAbbr(unit Unit, sep string) string {
	abbrs := []string{}
	for _, item := range Ancestors(unit, true) {
		abbrs = append(abbrs, item.UnitAbbr())
	}
	return strings.Join(abbrs, sep)
}

func validateUnit(name, abbr string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	return validateName("abbr", abbr)
}

type University struct {
	BaseModel
	Name      string    `gorm:"type:varchar(255)"`
	Abbr      string    `gorm:"type:varchar(255)"`
	Faculties []Faculty `gorm:"foreignKey:AncestorID;constraint:OnDelete:CASCADE"`
}

func (u University) UnitName() string { return u.Name }
func (u University) UnitAbbr() string { return u.Abbr }
func (u University) Parent() Unit     { return nil }
func (u University) String() string   { return UnitFullName(u, FullNameSep) }

func (u University) Validate() error {
	return validateUnit(u.Name, u.Abbr)
}

type Faculty struct {
	BaseModel
	Name        string       `gorm:"type:varchar(255)"`
	Abbr        string       `gorm:"type:varchar(255)"`
	AncestorID  string       `gorm:"type:uuid;index"`
	Ancestor    *University  `gorm:"foreignKey:AncestorID"`
	Departments []Department `gorm:"foreignKey:AncestorID;constraint:OnDelete:CASCADE"`
}

func (f Faculty) UnitName() string { return f.Name }
func (f Faculty) UnitAbbr() string { return f.Abbr }
func (f Faculty) String() string   { return UnitFullName(f, FullNameSep) }

func (f Faculty) Parent() Unit {
	if f.Ancestor == nil {
		return nil
	}
	return *f.Ancestor
}

func (f Faculty) University() *University {
	return f.Ancestor
}

func (f Faculty) Validate() error {
	if f.AncestorID == "" {
		return NewRequiredError("ancestor_id")
	}
	return validateUnit(f.Name, f.Abbr)
}

type Department struct {
	BaseModel
	Name       string   `gorm:"type:varchar(255)"`
	Abbr       string   `gorm:"type:varchar(255)"`
	AncestorID string   `gorm:"type:uuid;index"`
	Ancestor   *Faculty `gorm:"foreignKey:AncestorID"`
}

func (d Department) UnitName() string { return d.Name }
func (d Department) UnitAbbr() string { return d.Abbr }
func (d Department) String() string   { return UnitFullName(d, FullNameSep) }

func (d Department) Parent() Unit {
	if d.Ancestor == nil {
		return nil
	}
	return *d.Ancestor
}

func (d Department) Faculty() *Faculty {
	return d.Ancestor
}

func (d Department) University() *University {
	if d.Ancestor == nil {
		return nil
	}
	return d.Ancestor.Ancestor
}

func (d Department) FullAbbr() string {
	return UnitFullAbbr(d, FullAbbrSep)
}

func (d Department) Validate() error {
	if d.AncestorID == "" {
		return NewRequiredError("ancestor_id")
	}
	return validateUnit(d.Name, d.Abbr)
}
