package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
)

func TestAuthor(t *testing.T) {
	employee := &Employee{User: &User{FirstName: "Jan Krzysztof", LastName: "Kowalski"}}

	t.Run(`Clean requires alias or employee`, func(t *testing.T) {
		rec := Author{}
		vErr, ok := models.AsValidationError(rec.Clean())
		require.True(t, ok)
		require.Equal(t, "", vErr.Field)
	})

	t.Run(`Clean derives alias from employee`, func(t *testing.T) {
		rec := Author{EmployeeID: strPtr("e"), Employee: employee}
		require.NoError(t, rec.Clean())
		require.Equal(t, "Kowalski J. K.", rec.Alias)
		require.Equal(t, models.AuthorsEmployees, rec.Group())
		require.Equal(t, "Kowalski J. K. (employee: Jan Krzysztof Kowalski)", rec.String())
	})

	t.Run(`Clean keeps explicit alias`, func(t *testing.T) {
		rec := Author{EmployeeID: strPtr("e"), Employee: employee, Alias: "Kowalski J."}
		require.NoError(t, rec.Clean())
		require.Equal(t, "Kowalski J.", rec.Alias)
	})

	t.Run(`non-employee author`, func(t *testing.T) {
		rec := Author{Alias: "Smith J."}
		require.NoError(t, rec.Clean())
		require.Equal(t, models.AuthorsNotEmployees, rec.Group())
		require.Equal(t, "Smith J.", rec.String())
	})
}

func TestAuthorStatus(t *testing.T) {
	t.Run(`Validate check`, func(t *testing.T) {
		rec := AuthorStatus{Name: "first author", Abbr: "FA", Group: models.AuthorsEmployees, Default: models.No}
		require.NoError(t, rec.Validate())
		rec.Abbr = "fa"
		require.Error(t, rec.Validate())
		rec.Abbr = "FA"
		rec.Group = "X"
		require.Error(t, rec.Validate())
	})

	t.Run(`String check`, func(t *testing.T) {
		rec := AuthorStatus{Name: "first author", Abbr: "FA", Group: models.AuthorsEmployees, Default: models.Yes}
		require.Equal(t, `first author (FA) for group "employee authors" (default)`, rec.String())
		rec.Default = models.No
		require.Equal(t, `first author (FA) for group "employee authors"`, rec.String())
	})
}

func TestContribution(t *testing.T) {
	employeeAuthor := Author{EmployeeID: strPtr("e"), Alias: "Kowalski J."}
	externalAuthor := Author{Alias: "Smith J."}
	employeeDefault := AuthorStatus{BaseModel: BaseModel{ID: "ed"}, Name: "author", Abbr: "A", Group: models.AuthorsEmployees, Default: models.Yes}
	externalStatus := AuthorStatus{BaseModel: BaseModel{ID: "ex"}, Name: "co-author", Abbr: "C", Group: models.AuthorsNotEmployees}

	t.Run(`Validate percentage check`, func(t *testing.T) {
		rec := Contribution{ContentType: "article", ContentID: "a", AuthorID: "x", Percentage: 100}
		require.NoError(t, rec.Validate())
		rec.Percentage = 0
		require.NoError(t, rec.Validate())
		rec.Percentage = 101
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "the author's contribution cannot exceed 100%", vErr.Message)
		rec.Percentage = -1
		require.Error(t, rec.Validate())
	})

	t.Run(`Validate content type check`, func(t *testing.T) {
		rec := Contribution{ContentType: "book", ContentID: "a", AuthorID: "x"}
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "content_type", vErr.Field)
	})

	t.Run(`ResolveAuthorStatus explicit check`, func(t *testing.T) {
		status, err := ResolveAuthorStatus(externalAuthor, &externalStatus, nil)
		require.NoError(t, err)
		require.Equal(t, "ex", status.ID)

		_, err = ResolveAuthorStatus(employeeAuthor, &externalStatus, nil)
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "author_status_id", vErr.Field)
		require.Contains(t, vErr.Message, "employee authors")
	})

	t.Run(`ResolveAuthorStatus default check`, func(t *testing.T) {
		status, err := ResolveAuthorStatus(employeeAuthor, nil, []AuthorStatus{employeeDefault})
		require.NoError(t, err)
		require.Equal(t, "ed", status.ID)

		_, err = ResolveAuthorStatus(employeeAuthor, nil, nil)
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Contains(t, vErr.Message, "there is no default status")

		_, err = ResolveAuthorStatus(employeeAuthor, nil, []AuthorStatus{employeeDefault, employeeDefault})
		vErr, ok = models.AsValidationError(err)
		require.True(t, ok)
		require.Contains(t, vErr.Message, "more than one default status")
	})

}

func TestElement(t *testing.T) {
	contributions := []Contribution{
		{Author: &Author{EmployeeID: strPtr("e"), Alias: "Kowalski J."}},
		{Author: &Author{Alias: "Smith J."}},
		{Author: &Author{Alias: "Nowak A."}},
	}

	t.Run(`JoinAuthors check`, func(t *testing.T) {
		require.Equal(t, "Kowalski J., Smith J., Nowak A.", JoinAuthors(contributions, ", ", 0))
		require.Equal(t, "Kowalski J.; Smith J.; Nowak A.", JoinAuthors(contributions, "; ", 3))
		require.Equal(t, "Kowalski J. et al.", JoinAuthors(contributions, ", ", 2))
		require.Equal(t, "", JoinAuthors(nil, ", ", 0))
	})

	t.Run(`ByEmployeesOnly check`, func(t *testing.T) {
		require.False(t, ByEmployeesOnly(contributions))
		require.True(t, ByEmployeesOnly(contributions[:1]))
		require.False(t, ByEmployeesOnly(nil))
	})

	t.Run(`String check`, func(t *testing.T) {
		rec := Article{Element: Element{Title: "one two three four five six seven eight nine ten eleven"}}
		require.Equal(t, "one two three four five six seven eight nine ten…", rec.String())
		rec.Contributions = contributions[:2]
		require.Equal(t, "Kowalski J., Smith J.: one two three four five six seven eight nine ten…", rec.String())
		require.Equal(t, "short title", Patent{Element: Element{Title: "short title"}}.String())
	})
}

func TestArticle(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	valid := Article{Element: Element{Title: "On catalysis"}, JournalID: "j", Year: 2024, DOI: "10.1021/acs.jpcc.0c01234"}

	t.Run(`Validate year check`, func(t *testing.T) {
		require.NoError(t, valid.Validate(now, DefaultYearBounds))

		rec := valid
		rec.Year = 2025
		require.NoError(t, rec.Validate(now, DefaultYearBounds))
		rec.Year = 2026
		vErr, ok := models.AsValidationError(rec.Validate(now, DefaultYearBounds))
		require.True(t, ok)
		require.Equal(t, "cannot add articles published after the year 2025", vErr.Message)
		rec.Year = 1899
		vErr, ok = models.AsValidationError(rec.Validate(now, DefaultYearBounds))
		require.True(t, ok)
		require.Equal(t, "cannot add articles published before the year 1900", vErr.Message)
	})

	t.Run(`Validate DOI check`, func(t *testing.T) {
		rec := valid
		rec.DOI = "https://doi.org/10.1021/acs.jpcc.0c01234"
		vErr, ok := models.AsValidationError(rec.Validate(now, DefaultYearBounds))
		require.True(t, ok)
		require.Equal(t, "doi", vErr.Field)
		rec.DOI = ""
		require.NoError(t, rec.Validate(now, DefaultYearBounds))
	})

	t.Run(`DOIURL check`, func(t *testing.T) {
		require.Equal(t, "https://doi.org/10.1021/acs.jpcc.0c01234", valid.DOIURL(""))
		require.Equal(t, "https://doi.org/10.1021/acs.jpcc.0c01234", valid.DOIURL("https://doi.org/"))
		require.Equal(t, "", Article{}.DOIURL(""))
	})

	t.Run(`Clean copies journal snapshot`, func(t *testing.T) {
		rec := valid
		rec.Journal = &Journal{ImpactFactor: 4.126, Rating: 100}
		rec.Clean()
		require.Equal(t, 4.126, rec.JournalImpactFactor)
		require.Equal(t, 100, rec.JournalRating)
	})
}

func TestJournal(t *testing.T) {
	t.Run(`String check`, func(t *testing.T) {
		require.Equal(t, "Journal of Physical Chemistry C (J. Phys. Chem. C)",
			Journal{Title: "Journal of Physical Chemistry C", Abbr: "J. Phys. Chem. C"}.String())
		require.Equal(t, "Nature", Journal{Title: "Nature", Abbr: "NATURE"}.String())
	})

	t.Run(`Validate check`, func(t *testing.T) {
		rec := Journal{Title: "Nature", Abbr: "Nature", Rating: 200, ImpactFactor: 64.8}
		require.NoError(t, rec.Validate())
		rec.Rating = 50
		vErr, ok := models.AsValidationError(rec.Validate())
		require.True(t, ok)
		require.Equal(t, "rating", vErr.Field)
		rec.Rating = 0
		rec.ID = "self"
		rec.AncestorID = strPtr("self")
		require.Error(t, rec.Validate())
	})

	t.Run(`RoundImpactFactor check`, func(t *testing.T) {
		require.Equal(t, 1.235, RoundImpactFactor(1.23456))
	})
}

func TestProject(t *testing.T) {
	rec := Project{Element: Element{Title: "Green hydrogen"}, SinceDate: date(2024, 1, 1), UntilDate: date(2023, 1, 1)}
	vErr, ok := models.AsValidationError(rec.Validate())
	require.True(t, ok)
	require.Equal(t, "until_date", vErr.Field)
}
