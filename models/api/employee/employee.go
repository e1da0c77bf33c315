package employeeapimodels

import (
	"time"

	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type EmployeeData struct {
	UserID           string       `json:"user_id" validate:"required,id"`
	StatusID         string       `json:"status_id" validate:"required,id"`
	AcademicDegreeID *string      `json:"academic_degree_id" validate:"omitempty,id"`
	InEvaluation     models.YesNo `json:"in_evaluation" validate:"omitempty,oneof=Y N"`
	DisciplineID     *string      `json:"discipline_id" validate:"omitempty,id"`
	Orcid            *string      `json:"orcid" validate:"omitempty,max=19"`
}

func (r EmployeeData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search   string `json:"search" query:"search"`
	StatusID string `json:"status_id" query:"status_id" validate:"id"`
	Employed string `json:"employed" query:"employed" validate:"omitempty,oneof=true false"`
	Approved string `json:"approved" query:"approved" validate:"omitempty,oneof=true false"`
}

func (r EmployeeFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type EmployeeView struct {
	ID               string           `json:"id"`
	Label            string           `json:"label"`
	UserID           string           `json:"user_id"`
	Username         string           `json:"username"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	FullName         string           `json:"full_name"`
	ShortName        string           `json:"short_name"`
	Email            string           `json:"email"`
	StatusID         string           `json:"status_id"`
	Status           string           `json:"status"`
	AcademicDegreeID *string          `json:"academic_degree_id"`
	AcademicDegree   string           `json:"academic_degree,omitempty"`
	InEvaluation     models.YesNo     `json:"in_evaluation"`
	DisciplineID     *string          `json:"discipline_id"`
	Discipline       string           `json:"discipline,omitempty"`
	Orcid            *string          `json:"orcid"`
	OrcidURL         string           `json:"orcid_url,omitempty"`
	IsEmployed       bool             `json:"is_employed"`
	Approved         bool             `json:"approved"`
	Employments      []EmploymentView `json:"employments,omitempty"`
}

// EmployeeConvert builds the view; employments are listed only when withEmployments is set.
func EmployeeConvert(rec dbmodels.Employee, today time.Time, orcidPrefix string, withEmployments bool) EmployeeView {
	result := EmployeeView{
		ID:               rec.ID,
		Label:            rec.String(),
		UserID:           rec.UserID,
		FirstName:        rec.FirstName(),
		LastName:         rec.LastName(),
		FullName:         rec.FullName(),
		ShortName:        rec.ShortName(),
		Email:            rec.Email(),
		StatusID:         rec.StatusID,
		AcademicDegreeID: rec.AcademicDegreeID,
		InEvaluation:     rec.InEvaluation,
		DisciplineID:     rec.DisciplineID,
		Orcid:            rec.Orcid,
		OrcidURL:         rec.OrcidURL(orcidPrefix),
		IsEmployed:       rec.IsEmployed(today),
		Approved:         rec.Approved,
	}
	if rec.User != nil {
		result.Username = rec.User.Username
	}
	if rec.Status != nil {
		result.Status = rec.Status.String()
	}
	if rec.AcademicDegree != nil {
		result.AcademicDegree = rec.AcademicDegree.Name
	}
	if rec.Discipline != nil {
		result.Discipline = rec.Discipline.String()
	}
	if withEmployments {
		result.Employments = make([]EmploymentView, 0, len(rec.Employments))
		for _, employment := range rec.Employments {
			result.Employments = append(result.Employments, EmploymentConvert(employment, today))
		}
	}
	return result
}
