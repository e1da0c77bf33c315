package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
)

func TestEmployeeSheet(t *testing.T) {
	sheet := EmployeeSheet{
		Employee:    "Jan Kowalski",
		Degree:      "PhD",
		OrcidURL:    "https://orcid.org/0000-0002-1825-0097",
		Employments: []string{"Professor in UN/FS/DA"},
		GeneratedAt: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	}
	t.Run("with lines", func(t *testing.T) {
		withLines := sheet
		for n := 0; n < 60; n++ {
			withLines.Lines = append(withLines.Lines, SheetLine{
				Kind:       models.ElementArticle,
				Title:      "On the chromatic number of sparse graphs with bounded maximum average degree and girth",
				Year:       "2023",
				Percentage: 50,
				Status:     "Main author",
			})
		}
		data, err := impl{}.EmployeeSheet(withLines)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
	t.Run("no lines", func(t *testing.T) {
		data, err := impl{}.EmployeeSheet(sheet)
		require.NoError(t, err)
		require.NotEmpty(t, data)
	})
	t.Run("missing fonts", func(t *testing.T) {
		_, err := impl{fontDir: t.TempDir()}.EmployeeSheet(sheet)
		require.Error(t, err)
	})
}
