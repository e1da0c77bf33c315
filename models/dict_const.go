package models

import "fmt"

// YesNo is a general question answer stored as a single letter.
type YesNo string

const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

func (a YesNo) Bool() bool {
	return a == Yes
}

func (a YesNo) IsValid() bool {
	return a == Yes || a == No
}

func (a YesNo) ToHuman() string {
	if a == Yes {
		return "yes"
	}
	return "no"
}

func YesNoOf(value bool) YesNo {
	if value {
		return Yes
	}
	return No
}

type DisciplineDomain string

const (
	DomainSciences    DisciplineDomain = "SCI"
	DomainEngineering DisciplineDomain = "ENG"
)

var domainHumanName = map[DisciplineDomain]string{
	DomainSciences:    "natural and exact sciences",
	DomainEngineering: "engineering and technical sciences",
}

func (d DisciplineDomain) ToHuman() string {
	if human, exist := domainHumanName[d]; exist {
		return human
	}
	return string(d)
}

func (d DisciplineDomain) IsValid() bool {
	_, ok := domainHumanName[d]
	return ok
}

// AuthorGroup is the group of authors a status can be assigned to.
type AuthorGroup string

const (
	AuthorsEmployees    AuthorGroup = "E"
	AuthorsNotEmployees AuthorGroup = "A"
)

var authorGroupHumanName = map[AuthorGroup]string{
	AuthorsEmployees:    "employee authors",
	AuthorsNotEmployees: "non-employee authors",
}

func (g AuthorGroup) ToHuman() string {
	if human, exist := authorGroupHumanName[g]; exist {
		return human
	}
	return string(g)
}

func (g AuthorGroup) IsValid() bool {
	_, ok := authorGroupHumanName[g]
	return ok
}

type PublisherKind string

const (
	PublisherForeign  PublisherKind = "F"
	PublisherDomestic PublisherKind = "D"
)

var publisherKindHumanName = map[PublisherKind]string{
	PublisherForeign:  "foreign",
	PublisherDomestic: "domestic",
}

func (k PublisherKind) ToHuman() string {
	if human, exist := publisherKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

func (k PublisherKind) IsValid() bool {
	_, ok := publisherKindHumanName[k]
	return ok
}

// ElementKind names the output record types a contribution can point to.
type ElementKind string

const (
	ElementArticle ElementKind = "article"
	ElementPatent  ElementKind = "patent"
	ElementProject ElementKind = "project"
)

var ElementKinds = []ElementKind{ElementArticle, ElementPatent, ElementProject}

var elementKindHumanName = map[ElementKind]string{
	ElementArticle: "article",
	ElementPatent:  "patent",
	ElementProject: "project",
}

func (k ElementKind) ToHuman() string {
	if human, exist := elementKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

func (k ElementKind) IsValid() bool {
	_, ok := elementKindHumanName[k]
	return ok
}

// JournalRatingPoints is the ministry points scale for journals.
var JournalRatingPoints = []int{0, 20, 40, 70, 100, 140, 200}

func IsValidJournalRating(points int) bool {
	for _, p := range JournalRatingPoints {
		if p == points {
			return true
		}
	}
	return false
}

func JournalRatingError(points int) string {
	return fmt.Sprintf("rating %d is not on the points scale %v", points, JournalRatingPoints)
}
