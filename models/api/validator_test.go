package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
)

type sample struct {
	Name     string  `json:"name" validate:"notblank,max=10"`
	ParentID string  `json:"parent_id" validate:"id"`
	Ref      *string `json:"ref" validate:"omitempty,id"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateStruct(sample{Name: "x", ParentID: "8d0ee1a6-8c4a-4d5c-b6bb-6b0b8b1d2a3e"}))
	})
	t.Run("blank name", func(t *testing.T) {
		err := ValidateStruct(sample{Name: "  "})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "name", vErr.Field)
		require.Equal(t, "this field is required", vErr.Message)
	})
	t.Run("too long name", func(t *testing.T) {
		err := ValidateStruct(sample{Name: "abcdefghijkl"})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "name", vErr.Field)
		require.Contains(t, vErr.Message, "10 characters")
	})
	t.Run("bad id", func(t *testing.T) {
		bad := "42"
		err := ValidateStruct(sample{Name: "x", Ref: &bad})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "ref", vErr.Field)
		require.Equal(t, "invalid identifier", vErr.Message)
	})
	t.Run("pagination", func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
		page, limit = Pagination{Page: 3, Limit: 500}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 100, limit)
	})
}
