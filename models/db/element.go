package dbmodels

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"academic-records-backend/models"
)

const (
	TitleWords        = 10
	DefaultDOIPrefix  = "https://doi.org"
	DefaultMinYear    = 1900
	DefaultYearOffset = 1
)

var doiRegex = regexp.MustCompile(`^10.\d{4,9}/[-._;()/:a-zA-Z0-9]+$`)

// YearBounds limits the publication years accepted for outputs.
type YearBounds struct {
	Min       int
	MaxOffset int
}

var DefaultYearBounds = YearBounds{Min: DefaultMinYear, MaxOffset: DefaultYearOffset}

func (b YearBounds) Validate(year, currentYear int, what string) error {
	if year < b.Min {
		return models.NewValidationErrorf("year", "cannot add %s published before the year %d", what, b.Min)
	}
	if limit := currentYear + b.MaxOffset; year > limit {
		return models.NewValidationErrorf("year", "cannot add %s published after the year %d", what, limit)
	}
	return nil
}

// Element holds the fields shared by the research outputs.
type Element struct {
	Title string `gorm:"type:text"`
}

func (e Element) validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return NewRequiredError("title")
	}
	return nil
}

// TruncateWords keeps the first numWords words of text and marks the cut with an ellipsis.
func TruncateWords(text string, numWords int) string {
	words := strings.Fields(text)
	if numWords <= 0 || len(words) <= numWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:numWords], " ") + "…"
}

// JoinAuthors lists the author aliases of the contributions. When numExplicit is positive
// and there are more contributions, only the first author followed by "et al." is returned.
// Authors must be loaded.
func JoinAuthors(contributions []Contribution, sep string, numExplicit int) string {
	if len(contributions) == 0 {
		return ""
	}
	aliases := make([]string, 0, len(contributions))
	for _, contribution := range contributions {
		if contribution.Author != nil {
			aliases = append(aliases, contribution.Author.Alias)
		}
	}
	if len(aliases) == 0 {
		return ""
	}
	if numExplicit > 0 && len(contributions) > numExplicit {
		return fmt.Sprintf("%s et al.", aliases[0])
	}
	return strings.Join(aliases, sep)
}

// ByEmployeesOnly is false for elements without contributions.
func ByEmployeesOnly(contributions []Contribution) bool {
	if len(contributions) == 0 {
		return false
	}
	for _, contribution := range contributions {
		if !contribution.ByEmployee() {
			return false
		}
	}
	return true
}

func ElementString(title string, contributions []Contribution) string {
	authors := JoinAuthors(contributions, ", ", 0)
	if authors != "" {
		authors += ":"
	}
	return strings.TrimSpace(authors + " " + TruncateWords(title, TitleWords))
}

type Article struct {
	BaseModel
	Approvable
	Element
	JournalID           string         `gorm:"type:uuid;index"`
	Journal             *Journal       `gorm:"constraint:OnDelete:CASCADE"`
	Year                int            `gorm:"type:smallint"`
	Volume              string         `gorm:"type:varchar(255)"`
	Pages               string         `gorm:"type:varchar(255)"`
	DOI                 string         `gorm:"column:doi;type:varchar(255)"`
	OpenAccess          bool           `gorm:"default:false"`
	JournalImpactFactor float64        `gorm:"type:numeric(6,3);default:0"`
	JournalRating       int            `gorm:"type:smallint;default:0"`
	Contributions       []Contribution `gorm:"polymorphic:Content;polymorphicValue:article"`
}

// Clean copies the journal's impact factor and rating to the article. Journal must be loaded.
func (a *Article) Clean() {
	a.DOI = strings.TrimSpace(a.DOI)
	if a.Journal != nil {
		a.JournalImpactFactor = a.Journal.ImpactFactor
		a.JournalRating = a.Journal.Rating
	}
}

func (a Article) Validate(now time.Time, bounds YearBounds) error {
	if err := a.Element.validate(); err != nil {
		return err
	}
	if a.JournalID == "" {
		return NewRequiredError("journal_id")
	}
	if err := bounds.Validate(a.Year, now.Year(), "articles"); err != nil {
		return err
	}
	if a.DOI != "" && !doiRegex.MatchString(a.DOI) {
		return models.NewValidationError("doi", "invalid DOI format")
	}
	return nil
}

func (a Article) DOIURL(prefix string) string {
	if a.DOI == "" {
		return ""
	}
	if prefix == "" {
		prefix = DefaultDOIPrefix
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(prefix, "/"), a.DOI)
}

func (a Article) String() string {
	return ElementString(a.Title, a.Contributions)
}

type Patent struct {
	BaseModel
	Approvable
	Element
	Number        string         `gorm:"type:varchar(64)"`
	Year          int            `gorm:"type:smallint"`
	Contributions []Contribution `gorm:"polymorphic:Content;polymorphicValue:patent"`
}

func (p Patent) Validate(now time.Time, bounds YearBounds) error {
	if err := p.Element.validate(); err != nil {
		return err
	}
	return bounds.Validate(p.Year, now.Year(), "patents")
}

func (p Patent) String() string {
	return ElementString(p.Title, p.Contributions)
}

type Project struct {
	BaseModel
	Approvable
	Element
	Acronym       string         `gorm:"type:varchar(64)"`
	SinceDate     *time.Time     `gorm:"type:date"`
	UntilDate     *time.Time     `gorm:"type:date"`
	Contributions []Contribution `gorm:"polymorphic:Content;polymorphicValue:project"`
}

func (p Project) Validate() error {
	if err := p.Element.validate(); err != nil {
		return err
	}
	return validateDateRange(p.SinceDate, p.UntilDate, "until_date", "project")
}

func (p Project) String() string {
	return ElementString(p.Title, p.Contributions)
}
