package outputsapimodels

import (
	"academic-records-backend/lib/utils/helpers"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

// OutputFilter is shared by the article, patent and project lists.
type OutputFilter struct {
	apimodels.Pagination
	Search     string `json:"search" query:"search"`
	Year       int    `json:"year" query:"year" validate:"gte=0"`
	EmployeeID string `json:"employee_id" query:"employee_id" validate:"id"`
	Approved   string `json:"approved" query:"approved" validate:"omitempty,oneof=true false"`
}

func (r OutputFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ArticleData struct {
	Title      string `json:"title" validate:"notblank"`
	JournalID  string `json:"journal_id" validate:"required,id"`
	Year       *int   `json:"year"` // current year when empty
	Volume     string `json:"volume" validate:"max=255"`
	Pages      string `json:"pages" validate:"max=255"`
	DOI        string `json:"doi" validate:"max=255"`
	OpenAccess bool   `json:"open_access"`
}

func (r ArticleData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type PatentData struct {
	Title  string `json:"title" validate:"notblank"`
	Number string `json:"number" validate:"max=64"`
	Year   *int   `json:"year"`
}

func (r PatentData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ProjectData struct {
	Title     string `json:"title" validate:"notblank"`
	Acronym   string `json:"acronym" validate:"max=64"`
	SinceDate string `json:"since_date" validate:"omitempty,datetime=2006-01-02"`
	UntilDate string `json:"until_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r ProjectData) Validate() error {
	return apimodels.ValidateStruct(r)
}

// ElementView holds the fields common to the output views.
type ElementView struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	ByEmployeesOnly bool   `json:"by_employees_only"`
	Approved        bool   `json:"approved"`
}

func elementConvert(id, label, title string, approved bool, contributions []dbmodels.Contribution) ElementView {
	return ElementView{
		ID:              id,
		Label:           label,
		Title:           title,
		Authors:         dbmodels.JoinAuthors(contributions, ", ", 3),
		ByEmployeesOnly: dbmodels.ByEmployeesOnly(contributions),
		Approved:        approved,
	}
}

type ArticleView struct {
	ElementView
	JournalID     string  `json:"journal_id"`
	Journal       string  `json:"journal"`
	Year          int     `json:"year"`
	Volume        string  `json:"volume"`
	Pages         string  `json:"pages"`
	DOI           string  `json:"doi"`
	DOIURL        string  `json:"doi_url"`
	OpenAccess    bool    `json:"open_access"`
	ImpactFactor  float64 `json:"impact_factor"`
	JournalRating int     `json:"journal_rating"`
}

func ArticleConvert(rec dbmodels.Article, doiPrefix string) ArticleView {
	result := ArticleView{
		ElementView:   elementConvert(rec.ID, rec.String(), rec.Title, rec.Approved, rec.Contributions),
		JournalID:     rec.JournalID,
		Year:          rec.Year,
		Volume:        rec.Volume,
		Pages:         rec.Pages,
		DOI:           rec.DOI,
		DOIURL:        rec.DOIURL(doiPrefix),
		OpenAccess:    rec.OpenAccess,
		ImpactFactor:  rec.JournalImpactFactor,
		JournalRating: rec.JournalRating,
	}
	if rec.Journal != nil {
		result.Journal = rec.Journal.Title
	}
	return result
}

type PatentView struct {
	ElementView
	Number string `json:"number"`
	Year   int    `json:"year"`
}

func PatentConvert(rec dbmodels.Patent) PatentView {
	return PatentView{
		ElementView: elementConvert(rec.ID, rec.String(), rec.Title, rec.Approved, rec.Contributions),
		Number:      rec.Number,
		Year:        rec.Year,
	}
}

type ProjectView struct {
	ElementView
	Acronym   string `json:"acronym"`
	SinceDate string `json:"since_date"`
	UntilDate string `json:"until_date"`
}

func ProjectConvert(rec dbmodels.Project) ProjectView {
	return ProjectView{
		ElementView: elementConvert(rec.ID, rec.String(), rec.Title, rec.Approved, rec.Contributions),
		Acronym:     rec.Acronym,
		SinceDate:   helpers.FormatDate(rec.SinceDate),
		UntilDate:   helpers.FormatDate(rec.UntilDate),
	}
}
