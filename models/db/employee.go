package dbmodels

import (
	"fmt"
	"strings"
	"time"

	"academic-records-backend/lib/utils/orcid"
	"academic-records-backend/models"
)

type EmployeeStatus struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
	Abbr string `gorm:"type:varchar(2)"`
}

func (s EmployeeStatus) Validate() error {
	if err := validateName("name", s.Name); err != nil {
		return err
	}
	return validateCodeAbbr(s.Abbr)
}

func (s EmployeeStatus) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Abbr)
}

type EmployeeGroup struct {
	BaseModel
	Name     string       `gorm:"type:varchar(255)"`
	Abbr     string       `gorm:"type:varchar(20)"`
	Teachers models.YesNo `gorm:"type:varchar(1);default:Y"`
}

func (g EmployeeGroup) Validate() error {
	if err := validateName("name", g.Name); err != nil {
		return err
	}
	if strings.TrimSpace(g.Abbr) == "" {
		return NewRequiredError("abbr")
	}
	if len([]rune(g.Abbr)) > 20 {
		return models.NewValidationError("abbr", "at most 20 characters allowed")
	}
	if !g.Teachers.IsValid() {
		return models.NewValidationErrorf("teachers", "unknown answer %q", g.Teachers)
	}
	return nil
}

func (g EmployeeGroup) namePrefix() string {
	if g.Teachers.Bool() {
		return "teachers"
	}
	return "employees"
}

func (g EmployeeGroup) String() string {
	return fmt.Sprintf("%s %s (%s)", g.namePrefix(), g.Name, g.Abbr)
}

type Position struct {
	BaseModel
	Name   string          `gorm:"type:varchar(255)"`
	Groups []EmployeeGroup `gorm:"many2many:position_groups;constraint:OnDelete:CASCADE"`
}

func (p Position) Validate() error {
	if err := validateName("name", p.Name); err != nil {
		return err
	}
	return ValidatePositionGroups(p.Groups)
}

// ValidatePositionGroups requires the groups to be either all teachers or all non-teachers.
func ValidatePositionGroups(groups []EmployeeGroup) error {
	teachers := 0
	for _, group := range groups {
		if group.Teachers.Bool() {
			teachers++
		}
	}
	if teachers != 0 && teachers != len(groups) {
		return models.NewValidationError("groups",
			"all the selected groups must either belong or not belong to the teachers group")
	}
	return nil
}

// IsTeacher is true when every group of the position is a teachers group.
func (p Position) IsTeacher() bool {
	for _, group := range p.Groups {
		if !group.Teachers.Bool() {
			return false
		}
	}
	return true
}

func (p Position) HasGroup(groupID string) bool {
	for _, group := range p.Groups {
		if group.ID == groupID {
			return true
		}
	}
	return false
}

func (p Position) String() string {
	return p.Name
}

type AcademicDegree struct {
	BaseModel
	Name string `gorm:"type:varchar(255)"`
}

func (d AcademicDegree) Validate() error {
	return validateName("name", d.Name)
}

func (d AcademicDegree) String() string {
	return d.Name
}

type Discipline struct {
	BaseModel
	Name   string                  `gorm:"type:varchar(255)"`
	Abbr   string                  `gorm:"type:varchar(2)"`
	Domain models.DisciplineDomain `gorm:"type:varchar(3);default:SCI"`
}

func (d Discipline) Validate() error {
	if err := validateName("name", d.Name); err != nil {
		return err
	}
	if err := validateCodeAbbr(d.Abbr); err != nil {
		return err
	}
	if !d.Domain.IsValid() {
		return models.NewValidationErrorf("domain", "unknown domain %q", d.Domain)
	}
	return nil
}

func (d Discipline) String() string {
	return fmt.Sprintf("%s (%s); %s", d.Name, d.Abbr, d.Domain.ToHuman())
}

type Employee struct {
	BaseModel
	Approvable
	UserID           string          `gorm:"type:uuid;uniqueIndex"`
	User             *User           `gorm:"constraint:OnDelete:CASCADE"`
	StatusID         string          `gorm:"type:uuid;index"`
	Status           *EmployeeStatus `gorm:"constraint:OnDelete:CASCADE"`
	AcademicDegreeID *string         `gorm:"type:uuid;index"`
	AcademicDegree   *AcademicDegree `gorm:"constraint:OnDelete:SET NULL"`
	InEvaluation     models.YesNo    `gorm:"type:varchar(1);default:Y"`
	DisciplineID     *string         `gorm:"type:uuid;index"`
	Discipline       *Discipline     `gorm:"constraint:OnDelete:SET NULL"`
	Orcid            *string         `gorm:"type:varchar(19);uniqueIndex"`
	Employments      []Employment    `gorm:"constraint:OnDelete:CASCADE"`
}

func (e Employee) Validate() error {
	if e.UserID == "" {
		return NewRequiredError("user_id")
	}
	if e.StatusID == "" {
		return NewRequiredError("status_id")
	}
	if !e.InEvaluation.IsValid() {
		return models.NewValidationErrorf("in_evaluation", "unknown answer %q", e.InEvaluation)
	}
	if e.HasOrcid() {
		if !orcid.IsValidFormat(*e.Orcid) {
			return models.NewValidationError("orcid", "invalid ORCID format")
		}
		if !orcid.Check(*e.Orcid) {
			return models.NewValidationError("orcid", "invalid ORCID: the checksum does not match the last digit")
		}
	}
	return nil
}

func (e Employee) HasOrcid() bool {
	return e.Orcid != nil && *e.Orcid != ""
}

func (e Employee) user() User {
	if e.User == nil {
		return User{}
	}
	return *e.User
}

func (e Employee) FirstName() string { return e.user().FirstName }
func (e Employee) LastName() string  { return e.user().LastName }
func (e Employee) Email() string     { return e.user().Email }
func (e Employee) FullName() string  { return e.user().FullName() }
func (e Employee) ShortName() string { return e.user().ShortName() }

func (e Employee) OrcidURL(prefix string) string {
	if !e.HasOrcid() {
		return ""
	}
	return orcid.URL(prefix, *e.Orcid)
}

func (e Employee) String() string {
	degree := ""
	if e.AcademicDegree != nil {
		degree = e.AcademicDegree.Name
	}
	if name := strings.TrimSpace(degree + " " + e.FullName()); name != "" {
		return name
	}
	return e.user().Username
}

// IsEmployed reports whether at least one employment is active on the given day.
func (e Employee) IsEmployed(today time.Time) bool {
	return len(e.ActiveEmployments(today)) > 0
}

func (e Employee) ActiveEmployments(today time.Time) []Employment {
	result := []Employment{}
	for _, employment := range e.Employments {
		if employment.IsActive(today) {
			result = append(result, employment)
		}
	}
	return result
}

type Employment struct {
	BaseModel
	EmployeeID   string `gorm:"type:uuid;index"`
	Employee     *Employee
	PositionID   string         `gorm:"type:uuid;index"`
	Position     *Position      `gorm:"constraint:OnDelete:CASCADE"`
	GroupID      string         `gorm:"type:uuid;index"`
	Group        *EmployeeGroup `gorm:"constraint:OnDelete:CASCADE"`
	DepartmentID string         `gorm:"type:uuid;index"`
	Department   *Department    `gorm:"constraint:OnDelete:CASCADE"`
	SinceDate    *time.Time     `gorm:"type:date"`
	UntilDate    *time.Time     `gorm:"type:date"`
}

// Validate expects Position to be loaded together with its groups.
func (e Employment) Validate() error {
	if e.EmployeeID == "" {
		return NewRequiredError("employee_id")
	}
	if e.PositionID == "" {
		return NewRequiredError("position_id")
	}
	if e.GroupID == "" {
		return NewRequiredError("group_id")
	}
	if e.DepartmentID == "" {
		return NewRequiredError("department_id")
	}
	if e.Position != nil && !e.Position.HasGroup(e.GroupID) {
		names := make([]string, 0, len(e.Position.Groups))
		for _, group := range e.Position.Groups {
			names = append(names, group.Name)
		}
		return models.NewValidationErrorf("group_id",
			"the selected position (%s) does not belong to this group. Choose one of the groups: %s",
			e.Position.Name, strings.Join(names, ", "))
	}
	return validateDateRange(e.SinceDate, e.UntilDate, "until_date", "employment")
}

// IsActive is true when the employment has started and has not expired yet.
// Missing dates mean started and not expiring.
func (e Employment) IsActive(today time.Time) bool {
	day := DateOf(today)
	started := e.SinceDate == nil || !DateOf(*e.SinceDate).After(day)
	expired := e.UntilDate != nil && DateOf(*e.UntilDate).Before(day)
	return started && !expired
}

func (e Employment) FullPositionName() string {
	position, group := "", ""
	if e.Position != nil {
		position = e.Position.Name
	}
	if e.Group != nil {
		group = e.Group.Abbr
	}
	return strings.TrimSpace(position + " " + group)
}

func (e Employment) String() string {
	employee, department := "", ""
	if e.Employee != nil {
		employee = e.Employee.String()
	}
	if e.Department != nil {
		department = e.Department.FullAbbr()
	}
	return fmt.Sprintf("%s as %s in %s", employee, e.FullPositionName(), department)
}

func (e Employment) Faculty() *Faculty {
	if e.Department == nil {
		return nil
	}
	return e.Department.Faculty()
}

func (e Employment) University() *University {
	if e.Department == nil {
		return nil
	}
	return e.Department.University()
}
