package employeeapimodels

import (
	"time"

	"academic-records-backend/lib/utils/helpers"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type EmploymentData struct {
	EmployeeID   string `json:"employee_id" validate:"required,id"`
	PositionID   string `json:"position_id" validate:"required,id"`
	GroupID      string `json:"group_id" validate:"required,id"`
	DepartmentID string `json:"department_id" validate:"required,id"`
	SinceDate    string `json:"since_date" validate:"omitempty,datetime=2006-01-02"`
	UntilDate    string `json:"until_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r EmploymentData) Validate() error {
	return apimodels.ValidateStruct(r)
}

// Dates parses both dates; a malformed one is reported on its own field.
func (r EmploymentData) Dates() (since, until *time.Time, err error) {
	if since, err = helpers.ParseDate(r.SinceDate); err != nil {
		return nil, nil, models.NewValidationError("since_date", dateFormatMessage)
	}
	if until, err = helpers.ParseDate(r.UntilDate); err != nil {
		return nil, nil, models.NewValidationError("until_date", dateFormatMessage)
	}
	return since, until, nil
}

const dateFormatMessage = "date must be in YYYY-MM-DD format"

type EmploymentFilter struct {
	EmployeeID   string `json:"employee_id" query:"employee_id" validate:"id"`
	DepartmentID string `json:"department_id" query:"department_id" validate:"id"`
	Active       string `json:"active" query:"active" validate:"omitempty,oneof=true false"`
}

func (r EmploymentFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type EmploymentView struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	EmployeeID       string `json:"employee_id"`
	Employee         string `json:"employee,omitempty"`
	PositionID       string `json:"position_id"`
	Position         string `json:"position"`
	GroupID          string `json:"group_id"`
	Group            string `json:"group"`
	FullPositionName string `json:"full_position_name"`
	DepartmentID     string `json:"department_id"`
	Department       string `json:"department"`
	DepartmentAbbr   string `json:"department_abbr"`
	Faculty          string `json:"faculty"`
	University       string `json:"university"`
	SinceDate        string `json:"since_date"`
	UntilDate        string `json:"until_date"`
	IsActive         bool   `json:"is_active"`
}

func EmploymentConvert(rec dbmodels.Employment, today time.Time) EmploymentView {
	result := EmploymentView{
		ID:               rec.ID,
		Label:            rec.String(),
		EmployeeID:       rec.EmployeeID,
		PositionID:       rec.PositionID,
		GroupID:          rec.GroupID,
		FullPositionName: rec.FullPositionName(),
		DepartmentID:     rec.DepartmentID,
		SinceDate:        helpers.FormatDate(rec.SinceDate),
		UntilDate:        helpers.FormatDate(rec.UntilDate),
		IsActive:         rec.IsActive(today),
	}
	if rec.Employee != nil {
		result.Employee = rec.Employee.String()
	}
	if rec.Position != nil {
		result.Position = rec.Position.Name
	}
	if rec.Group != nil {
		result.Group = rec.Group.String()
	}
	if rec.Department != nil {
		result.Department = rec.Department.Name
		result.DepartmentAbbr = rec.Department.FullAbbr()
	}
	if faculty := rec.Faculty(); faculty != nil {
		result.Faculty = faculty.Name
	}
	if university := rec.University(); university != nil {
		result.University = university.Name
	}
	return result
}
