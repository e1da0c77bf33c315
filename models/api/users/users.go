package usersapimodels

import (
	"time"

	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type UserData struct {
	Username    string     `json:"username" validate:"notblank,max=150"`
	Password    string     `json:"password" validate:"omitempty,min=8,max=128"` // required on create, kept when empty on update
	FirstName   string     `json:"first_name" validate:"max=150"`
	LastName    string     `json:"last_name" validate:"max=150"`
	Email       string     `json:"email" validate:"omitempty,email,max=254"`
	Sex         models.Sex `json:"sex" validate:"omitempty,oneof=F M"`
	IsActive    *bool      `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
}

func (r UserData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type UserFilter struct {
	apimodels.Pagination
	Search      string `json:"search" query:"search"`
	MissingData string `json:"missing_data" query:"missing_data" validate:"omitempty,oneof=true false"`
	IsActive    string `json:"is_active" query:"is_active" validate:"omitempty,oneof=true false"`
	IsStaff     string `json:"is_staff" query:"is_staff" validate:"omitempty,oneof=true false"`
}

func (r UserFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

// SelectionRequest carries the records an action is applied to.
type SelectionRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

func (r SelectionRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type UserView struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	ShortName   string     `json:"short_name"`
	Email       string     `json:"email"`
	Sex         models.Sex `json:"sex"`
	SexName     string     `json:"sex_name"`
	Slug        string     `json:"slug"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	Role        string     `json:"role"`
	MissingData bool       `json:"missing_data"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `json:"date_joined"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Username:    rec.Username,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		FullName:    rec.FullName(),
		ShortName:   rec.ShortName(),
		Email:       rec.Email,
		Sex:         rec.Sex,
		SexName:     rec.Sex.ToHuman(),
		Slug:        rec.Slug,
		IsActive:    rec.IsActive,
		IsStaff:     rec.IsStaff,
		IsSuperuser: rec.IsSuperuser,
		Role:        rec.Role().ToHuman(),
		MissingData: rec.HasMissingData(),
		LastLogin:   rec.LastLogin,
		DateJoined:  rec.DateJoined,
	}
}
