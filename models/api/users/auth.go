package usersapimodels

import apimodels "academic-records-backend/models/api"

type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}
