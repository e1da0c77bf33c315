package employeeprovider

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/lib/utils/helpers"
	"academic-records-backend/models"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	employees map[string]dbmodels.Employee
	existing  map[string]bool
}

func (f *fakeStore) Create(rec dbmodels.Employee) (string, error) {
	rec.ID = uuid.NewString()
	f.employees[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) GetByUserID(userID string) (*dbmodels.Employee, error) {
	for _, rec := range f.employees {
		if rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(filter employeeapimodels.EmployeeFilter, today time.Time) ([]dbmodels.Employee, int64, error) {
	list := []dbmodels.Employee{}
	employed := helpers.ParseBoolFilter(filter.Employed)
	for _, rec := range f.employees {
		if employed != nil && rec.IsEmployed(today) != *employed {
			continue
		}
		list = append(list, rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.employees[id]
	rec.Orcid = updMap["orcid"].(*string)
	rec.StatusID = updMap["status_id"].(string)
	f.employees[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeStore) OrcidTaken(orcid, excludeID string) (bool, error) {
	for id, rec := range f.employees {
		if id != excludeID && rec.Orcid != nil && *rec.Orcid == orcid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UserTaken(userID, excludeID string) (bool, error) {
	for id, rec := range f.employees {
		if id != excludeID && rec.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Exists(model interface{}, id string) (bool, error) {
	return f.existing[id], nil
}

func TestEmployeeProvider(t *testing.T) {
	userA, userB, status := uuid.NewString(), uuid.NewString(), uuid.NewString()
	fake := &fakeStore{
		employees: map[string]dbmodels.Employee{},
		existing:  map[string]bool{userA: true, userB: true, status: true},
	}
	provider := NewProvider(fake, "https://orcid.org/").(impl)
	provider.today = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }

	var firstID string
	t.Run("create", func(t *testing.T) {
		id, err := provider.Create(employeeapimodels.EmployeeData{
			UserID:   userA,
			StatusID: status,
			Orcid:    helpers.StrPtr("0000-0002-1825-0097"),
		})
		require.NoError(t, err)
		firstID = id
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.Yes, item.InEvaluation)
		require.Equal(t, "https://orcid.org/0000-0002-1825-0097", item.OrcidURL)
		require.False(t, item.IsEmployed)
	})
	t.Run("invalid orcid checksum", func(t *testing.T) {
		_, err := provider.Create(employeeapimodels.EmployeeData{
			UserID:   userB,
			StatusID: status,
			Orcid:    helpers.StrPtr("0000-0002-1825-0098"),
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "orcid", vErr.Field)
	})
	t.Run("duplicate orcid", func(t *testing.T) {
		_, err := provider.Create(employeeapimodels.EmployeeData{
			UserID:   userB,
			StatusID: status,
			Orcid:    helpers.StrPtr("0000-0002-1825-0097"),
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "orcid", vErr.Field)
	})
	t.Run("user already employed", func(t *testing.T) {
		_, err := provider.Create(employeeapimodels.EmployeeData{UserID: userA, StatusID: status})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "user_id", vErr.Field)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := provider.Create(employeeapimodels.EmployeeData{UserID: userB, StatusID: uuid.NewString()})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "status_id", vErr.Field)
	})
	t.Run("update keeps own orcid", func(t *testing.T) {
		err := provider.Update(firstID, employeeapimodels.EmployeeData{
			UserID:   userA,
			StatusID: status,
			Orcid:    helpers.StrPtr("0000-0002-1825-0097"),
		})
		require.NoError(t, err)
	})
	t.Run("update missing", func(t *testing.T) {
		err := provider.Update(uuid.NewString(), employeeapimodels.EmployeeData{UserID: userA, StatusID: status})
		require.True(t, models.IsNotFound(err))
	})
	t.Run("employments", func(t *testing.T) {
		past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		expired := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
		rec := fake.employees[firstID]
		rec.Employments = []dbmodels.Employment{
			{BaseModel: dbmodels.BaseModel{ID: "active"}, SinceDate: &past},
			{BaseModel: dbmodels.BaseModel{ID: "expired"}, SinceDate: &past, UntilDate: &expired},
		}
		fake.employees[firstID] = rec

		all, err := provider.Employments(firstID, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		active, err := provider.Employments(firstID, true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Equal(t, "active", active[0].ID)

		list, rowCount, err := provider.List(employeeapimodels.EmployeeFilter{Employed: "true"})
		require.NoError(t, err)
		require.EqualValues(t, 1, rowCount)
		require.True(t, list[0].IsEmployed)
	})
}
