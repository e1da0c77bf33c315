package dictapimodels

import (
	apimodels "academic-records-backend/models/api"
)

type DictFilter struct {
	Search string `json:"search" query:"search"`
}

// Option is a lightweight choice for select boxes.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (r DictFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}
