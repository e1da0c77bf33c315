package exportprovider

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	pdfexport "academic-records-backend/lib/export/pdf"
	"academic-records-backend/lib/export/store"
	xlsexport "academic-records-backend/lib/export/xls"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	employeeapimodels "academic-records-backend/models/api/employee"
	exportapimodels "academic-records-backend/models/api/export"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	employees     []dbmodels.Employee
	contributions []dbmodels.Contribution
	elements      map[string]store.ElementRow
}

func (f fakeStore) Employees(_ employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return f.employees, nil
}

func (f fakeStore) Contributions(_ contributionapimodels.ContributionFilter) ([]dbmodels.Contribution, error) {
	return f.contributions, nil
}

func (f fakeStore) GetEmployee(id string) (*dbmodels.Employee, error) {
	for _, rec := range f.employees {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f fakeStore) Elements(_ models.ElementKind, ids []string) (map[string]store.ElementRow, error) {
	result := map[string]store.ElementRow{}
	for _, id := range ids {
		result[id] = f.elements[id]
	}
	return result, nil
}

type fakeArchive struct {
	files map[string]dbmodels.ArchivedFile
	data  map[string][]byte
}

func (f *fakeArchive) Archive(_ context.Context, kind dbmodels.ArchiveKind, fileName, contentType string, data []byte, userID string) (string, error) {
	id := uuid.NewString()
	f.files[id] = dbmodels.ArchivedFile{
		BaseModel:   dbmodels.BaseModel{ID: id},
		Kind:        kind,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	f.data[id] = data
	return id, nil
}

func (f *fakeArchive) GetFile(_ context.Context, id string) (*dbmodels.ArchivedFile, []byte, error) {
	rec := f.files[id]
	return &rec, f.data[id], nil
}

func (f *fakeArchive) List(kind dbmodels.ArchiveKind) ([]dbmodels.ArchivedFile, error) {
	list := []dbmodels.ArchivedFile{}
	for _, rec := range f.files {
		if kind == "" || rec.Kind == kind {
			list = append(list, rec)
		}
	}
	return list, nil
}

func TestExportProvider(t *testing.T) {
	ctx := context.Background()
	xlsexport.NewHandler()
	pdfexport.NewHandler("")
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	past := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	employed := dbmodels.Employee{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		User:        &dbmodels.User{FirstName: "Jan", LastName: "Kowalski"},
		Employments: []dbmodels.Employment{{Position: &dbmodels.Position{Name: "Professor"}}},
	}
	former := dbmodels.Employee{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		User:        &dbmodels.User{FirstName: "Anna", LastName: "Nowak"},
		Employments: []dbmodels.Employment{{Position: &dbmodels.Position{Name: "Assistant"}, UntilDate: &past}},
	}
	fake := fakeStore{
		employees: []dbmodels.Employee{employed, former},
		contributions: []dbmodels.Contribution{
			{ContentType: string(models.ElementArticle), ContentID: "a1", Percentage: 50, Author: &dbmodels.Author{Alias: "Kowalski J."}},
			{ContentType: string(models.ElementProject), ContentID: "p1", Percentage: 100, Author: &dbmodels.Author{Alias: "Kowalski J."}},
		},
		elements: map[string]store.ElementRow{
			"a1": {ID: "a1", Title: "Graph colouring revisited", Year: "2023"},
			"p1": {ID: "p1", Title: "Sparse graphs", Year: "2022"},
		},
	}
	archive := &fakeArchive{files: map[string]dbmodels.ArchivedFile{}, data: map[string][]byte{}}
	newProvider := func(archive *fakeArchive) impl {
		var p Provider
		if archive == nil {
			p = NewProvider(fake, xlsexport.Instance, pdfexport.Instance, nil, "https://orcid.org/")
		} else {
			p = NewProvider(fake, xlsexport.Instance, pdfexport.Instance, archive, "https://orcid.org/")
		}
		result := p.(impl)
		result.today = func() time.Time { return today }
		return result
	}

	t.Run("employed only", func(t *testing.T) {
		file, err := newProvider(nil).EmployeesWorkbook(ctx, employeeapimodels.EmployeeFilter{Employed: "true"}, false, "")
		require.NoError(t, err)
		require.Equal(t, "employees-2024-05-10.xlsx", file.Name)
		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		rows, err := f.GetRows(xlsexport.EmployeesSheet)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Jan Kowalski", rows[1][0])
	})
	t.Run("contributions archived", func(t *testing.T) {
		userID := uuid.NewString()
		file, err := newProvider(archive).ContributionsWorkbook(ctx, contributionapimodels.ContributionFilter{}, true, userID)
		require.NoError(t, err)
		require.NotEmpty(t, file.ArchiveID)
		require.Equal(t, dbmodels.ArchiveContributionsExport, archive.files[file.ArchiveID].Kind)

		stored, err := newProvider(archive).ArchivedFile(ctx, file.ArchiveID)
		require.NoError(t, err)
		require.Equal(t, file.Data, stored.Data)

		list, err := newProvider(archive).Archives(exportapimodels.ArchiveFilter{Kind: dbmodels.ArchiveContributionsExport})
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
	t.Run("archive without storage", func(t *testing.T) {
		_, err := newProvider(nil).ContributionsWorkbook(ctx, contributionapimodels.ContributionFilter{}, true, "")
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "archive", vErr.Field)
	})
	t.Run("employee sheet", func(t *testing.T) {
		file, err := newProvider(nil).EmployeeSheet(ctx, employed.ID, false, "")
		require.NoError(t, err)
		require.Equal(t, exportapimodels.ContentTypePDF, file.ContentType)
		require.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
	})
	t.Run("sheet of missing employee", func(t *testing.T) {
		_, err := newProvider(nil).EmployeeSheet(ctx, uuid.NewString(), false, "")
		require.True(t, models.IsNotFound(err))
	})
}
