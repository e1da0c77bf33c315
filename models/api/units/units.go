package unitsapimodels

import (
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type UnitData struct {
	Name string `json:"name" validate:"notblank,max=255"`
	Abbr string `json:"abbr" validate:"notblank,max=255"`
}

type UniversityData struct {
	UnitData
}

func (r UniversityData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type FacultyData struct {
	UnitData
	UniversityID string `json:"university_id" validate:"required,id"`
}

func (r FacultyData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DepartmentData struct {
	UnitData
	FacultyID string `json:"faculty_id" validate:"required,id"`
}

func (r DepartmentData) Validate() error {
	return apimodels.ValidateStruct(r)
}

// UnitFilter narrows unit lists: Search matches name or abbreviation, ParentID
// the immediate ancestor.
type UnitFilter struct {
	Search   string `json:"search" query:"search"`
	ParentID string `json:"parent_id" query:"parent_id" validate:"id"`
}

func (r UnitFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type UnitView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Abbr     string `json:"abbr"`
	FullName string `json:"full_name"`
	FullAbbr string `json:"full_abbr"`
}

type UniversityView struct {
	UnitView
}

type FacultyView struct {
	UnitView
	UniversityID   string `json:"university_id"`
	UniversityName string `json:"university_name"`
}

type DepartmentView struct {
	UnitView
	FacultyID      string `json:"faculty_id"`
	FacultyName    string `json:"faculty_name"`
	UniversityName string `json:"university_name"`
}

func unitView(id string, unit dbmodels.Unit) UnitView {
	return UnitView{
		ID:       id,
		Name:     unit.UnitName(),
		Abbr:     unit.UnitAbbr(),
		FullName: dbmodels.UnitFullName(unit, dbmodels.FullNameSep),
		FullAbbr: dbmodels.UnitFullAbbr(unit, dbmodels.FullAbbrSep),
	}
}

func UniversityConvert(rec dbmodels.University) UniversityView {
	return UniversityView{UnitView: unitView(rec.ID, rec)}
}

func FacultyConvert(rec dbmodels.Faculty) FacultyView {
	result := FacultyView{
		UnitView:     unitView(rec.ID, rec),
		UniversityID: rec.AncestorID,
	}
	if university := rec.University(); university != nil {
		result.UniversityName = university.Name
	}
	return result
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		UnitView:  unitView(rec.ID, rec),
		FacultyID: rec.AncestorID,
	}
	if faculty := rec.Faculty(); faculty != nil {
		result.FacultyName = faculty.Name
	}
	if university := rec.University(); university != nil {
		result.UniversityName = university.Name
	}
	return result
}

type FacultyTreeItem struct {
	FacultyView
	Departments []DepartmentView `json:"departments"`
}

type UniversityTreeItem struct {
	UniversityView
	Faculties []FacultyTreeItem `json:"faculties"`
}
