package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
)

func date(year int, month time.Month, day int) *time.Time {
	value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &value
}

func strPtr(value string) *string {
	return &value
}

func TestEmployeeDicts(t *testing.T) {
	t.Run(`abbr code check`, func(t *testing.T) {
		require.NoError(t, EmployeeStatus{Name: "active", Abbr: "A"}.Validate())
		require.NoError(t, Discipline{Name: "chemistry", Abbr: "CH", Domain: models.DomainSciences}.Validate())

		err := EmployeeStatus{Name: "active", Abbr: "a"}.Validate()
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "abbr", vErr.Field)
		require.Equal(t, "only uppercase letters allowed", vErr.Message)

		require.Error(t, EmployeeStatus{Name: "active", Abbr: "ABC"}.Validate())
		require.Error(t, Discipline{Name: "chemistry", Abbr: "CH", Domain: "XYZ"}.Validate())
	})

	t.Run(`String check`, func(t *testing.T) {
		require.Equal(t, "active (A)", EmployeeStatus{Name: "active", Abbr: "A"}.String())
		require.Equal(t, "teachers research (B)", EmployeeGroup{Name: "research", Abbr: "B", Teachers: models.Yes}.String())
		require.Equal(t, "employees technical (T)", EmployeeGroup{Name: "technical", Abbr: "T", Teachers: models.No}.String())
		require.Equal(t, "chemistry (CH); engineering and technical sciences",
			Discipline{Name: "chemistry", Abbr: "CH", Domain: models.DomainEngineering}.String())
	})

	t.Run(`Position groups check`, func(t *testing.T) {
		teachersA := EmployeeGroup{BaseModel: BaseModel{ID: "a"}, Name: "research", Teachers: models.Yes}
		teachersB := EmployeeGroup{BaseModel: BaseModel{ID: "b"}, Name: "didactic", Teachers: models.Yes}
		others := EmployeeGroup{BaseModel: BaseModel{ID: "c"}, Name: "technical", Teachers: models.No}

		require.NoError(t, ValidatePositionGroups(nil))
		require.NoError(t, ValidatePositionGroups([]EmployeeGroup{teachersA, teachersB}))
		require.NoError(t, ValidatePositionGroups([]EmployeeGroup{others}))
		err := ValidatePositionGroups([]EmployeeGroup{teachersA, others})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "groups", vErr.Field)

		require.True(t, Position{Groups: []EmployeeGroup{teachersA, teachersB}}.IsTeacher())
		require.False(t, Position{Groups: []EmployeeGroup{others}}.IsTeacher())
		require.True(t, Position{}.IsTeacher())
	})
}

func TestEmployee(t *testing.T) {
	user := &User{Username: "jkowalski", FirstName: "Jan Krzysztof", LastName: "Kowalski", Email: "jk@example.com"}

	t.Run(`ORCID check`, func(t *testing.T) {
		rec := Employee{UserID: "u", StatusID: "s", InEvaluation: models.Yes}
		require.NoError(t, rec.Validate())

		rec.Orcid = strPtr("0000-0002-1825-0097")
		require.NoError(t, rec.Validate())

		rec.Orcid = strPtr("0000-0002-1825-0098")
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "orcid", vErr.Field)
		require.Contains(t, vErr.Message, "checksum")

		rec.Orcid = strPtr("0000000218250097")
		vErr, ok = models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "invalid ORCID format", vErr.Message)
	})

	t.Run(`derived names check`, func(t *testing.T) {
		rec := Employee{User: user}
		require.Equal(t, "Jan Krzysztof Kowalski", rec.FullName())
		require.Equal(t, "Kowalski J. K.", rec.ShortName())
		require.Equal(t, "Jan Krzysztof Kowalski", rec.String())

		rec.AcademicDegree = &AcademicDegree{Name: "dr hab."}
		require.Equal(t, "dr hab. Jan Krzysztof Kowalski", rec.String())

		noName := Employee{User: &User{Username: "anonymous"}}
		require.Equal(t, "anonymous", noName.String())
	})

	t.Run(`OrcidURL check`, func(t *testing.T) {
		rec := Employee{Orcid: strPtr("0000-0002-1825-0097")}
		require.Equal(t, "https://orcid.org/0000-0002-1825-0097", rec.OrcidURL(""))
		require.Equal(t, "", Employee{}.OrcidURL(""))
	})

	t.Run(`IsEmployed check`, func(t *testing.T) {
		today := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
		rec := Employee{Employments: []Employment{
			{UntilDate: date(2023, 12, 31)},
		}}
		require.False(t, rec.IsEmployed(today))
		rec.Employments = append(rec.Employments, Employment{SinceDate: date(2024, 1, 1)})
		require.True(t, rec.IsEmployed(today))
		require.Len(t, rec.ActiveEmployments(today), 1)
	})
}

func TestEmployment(t *testing.T) {
	today := time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

	t.Run(`IsActive check`, func(t *testing.T) {
		require.True(t, Employment{}.IsActive(today))
		require.True(t, Employment{SinceDate: date(2024, 5, 10)}.IsActive(today))
		require.True(t, Employment{UntilDate: date(2024, 5, 10)}.IsActive(today))
		require.False(t, Employment{SinceDate: date(2024, 5, 11)}.IsActive(today))
		require.False(t, Employment{UntilDate: date(2024, 5, 9)}.IsActive(today))
		require.True(t, Employment{SinceDate: date(2020, 1, 1), UntilDate: date(2030, 1, 1)}.IsActive(today))
	})

	position := &Position{
		Name: "assistant professor",
		Groups: []EmployeeGroup{
			{BaseModel: BaseModel{ID: "research"}, Name: "research", Abbr: "B"},
			{BaseModel: BaseModel{ID: "didactic"}, Name: "didactic", Abbr: "D"},
		},
	}
	valid := Employment{
		EmployeeID:   "e",
		PositionID:   "p",
		Position:     position,
		GroupID:      "research",
		DepartmentID: "d",
	}

	t.Run(`Validate group check`, func(t *testing.T) {
		require.NoError(t, valid.Validate())

		rec := valid
		rec.GroupID = "technical"
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "group_id", vErr.Field)
		require.Equal(t,
			"the selected position (assistant professor) does not belong to this group. Choose one of the groups: research, didactic",
			vErr.Message)
	})

	t.Run(`Validate dates check`, func(t *testing.T) {
		rec := valid
		rec.SinceDate = date(2024, 1, 1)
		rec.UntilDate = date(2024, 1, 1)
		require.NoError(t, rec.Validate())

		rec.UntilDate = date(2023, 12, 31)
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "until_date", vErr.Field)
		require.Contains(t, vErr.Message, "2024-01-01")
	})

	t.Run(`String check`, func(t *testing.T) {
		department := testDepartment()
		rec := valid
		rec.Employee = &Employee{User: &User{FirstName: "Anna", LastName: "Nowak"}}
		rec.Group = &EmployeeGroup{Abbr: "B"}
		rec.Department = &department
		require.Equal(t, "assistant professor B", rec.FullPositionName())
		require.Equal(t, "Anna Nowak as assistant professor B in DPCh/FCh/SUT", rec.String())
		require.Equal(t, "SUT", rec.University().Abbr)
	})
}

func TestUser(t *testing.T) {
	t.Run(`Clean check`, func(t *testing.T) {
		rec := User{Username: "anowak", Sex: models.SexUnknown}
		rec.Clean()
		require.Equal(t, "anowak", rec.Slug)
		require.Equal(t, models.SexNotGiven, rec.Sex)

		rec = User{Username: "anowak", Slug: "anna"}
		rec.Clean()
		require.Equal(t, "anna", rec.Slug)
	})

	t.Run(`ShortName check`, func(t *testing.T) {
		require.Equal(t, "Nowak A.", User{FirstName: "anna", LastName: "Nowak"}.ShortName())
		require.Equal(t, "Nowak", User{LastName: "Nowak"}.ShortName())
		require.Equal(t, "", User{}.ShortName())
	})

	t.Run(`HasMissingData check`, func(t *testing.T) {
		require.True(t, User{FirstName: "Anna", LastName: "Nowak"}.HasMissingData())
		require.False(t, User{FirstName: "Anna", LastName: "Nowak", Email: "a@example.com"}.HasMissingData())
	})
}
