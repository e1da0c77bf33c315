package contributionprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	authorprovider "academic-records-backend/lib/author"
	authorstatusprovider "academic-records-backend/lib/dicts/author-status"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	recs     map[string]dbmodels.Contribution
	elements map[string]string
}

func (f *fakeStore) Create(rec dbmodels.Contribution) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Contribution, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(filter contributionapimodels.ContributionFilter) ([]dbmodels.Contribution, int64, error) {
	list := []dbmodels.Contribution{}
	for _, rec := range f.recs {
		if filter.ContentID == "" || rec.ContentID == filter.ContentID {
			list = append(list, rec)
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	rec.Percentage = updMap["percentage"].(int)
	rec.AuthorStatusID = updMap["author_status_id"].(*string)
	f.recs[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeStore) ElementExists(_ models.ElementKind, contentID string) (bool, error) {
	_, ok := f.elements[contentID]
	return ok, nil
}

func (f *fakeStore) ElementTitles(_ models.ElementKind, ids []string) (map[string]string, error) {
	result := map[string]string{}
	for _, id := range ids {
		result[id] = f.elements[id]
	}
	return result, nil
}

type fakeAuthors struct {
	authorprovider.Provider
	recs map[string]dbmodels.Author
}

func (f fakeAuthors) GetRec(id string) (*dbmodels.Author, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, errors.Wrap(models.ErrNotFound, "author not found")
	}
	return &rec, nil
}

type fakeStatuses struct {
	authorstatusprovider.Provider
	recs map[string]dbmodels.AuthorStatus
}

func (f fakeStatuses) GetRec(id string) (*dbmodels.AuthorStatus, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, errors.Wrap(models.ErrNotFound, "author status not found")
	}
	return &rec, nil
}

func (f fakeStatuses) Defaults(group models.AuthorGroup) ([]dbmodels.AuthorStatus, error) {
	list := []dbmodels.AuthorStatus{}
	for _, rec := range f.recs {
		if rec.Group == group && rec.IsDefault() {
			list = append(list, rec)
		}
	}
	return list, nil
}

func TestContributionProvider(t *testing.T) {
	articleID := uuid.NewString()
	employeeID := uuid.NewString()
	staffAuthor := dbmodels.Author{
		BaseModel:  dbmodels.BaseModel{ID: uuid.NewString()},
		EmployeeID: &employeeID,
		Alias:      "Kowalski J.",
	}
	guestAuthor := dbmodels.Author{BaseModel: dbmodels.BaseModel{ID: uuid.NewString()}, Alias: "Smith J."}
	mainAuthor := dbmodels.AuthorStatus{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		Name:      "Main author",
		Abbr:      "MA",
		Group:     models.AuthorsEmployees,
		Default:   models.Yes,
	}
	coAuthor := dbmodels.AuthorStatus{
		BaseModel: dbmodels.BaseModel{ID: uuid.NewString()},
		Name:      "Co-author",
		Abbr:      "CA",
		Group:     models.AuthorsNotEmployees,
		Default:   models.No,
	}
	fake := &fakeStore{
		recs:     map[string]dbmodels.Contribution{},
		elements: map[string]string{articleID: "Graph colouring revisited"},
	}
	provider := NewProvider(fake,
		fakeAuthors{recs: map[string]dbmodels.Author{staffAuthor.ID: staffAuthor, guestAuthor.ID: guestAuthor}},
		fakeStatuses{recs: map[string]dbmodels.AuthorStatus{mainAuthor.ID: mainAuthor, coAuthor.ID: coAuthor}},
	)

	var staffContribution string
	t.Run("default status of the group", func(t *testing.T) {
		id, err := provider.Create(contributionapimodels.ContributionData{
			ContentType: models.ElementArticle,
			ContentID:   articleID,
			AuthorID:    staffAuthor.ID,
			Percentage:  60,
		})
		require.NoError(t, err)
		require.Equal(t, mainAuthor.ID, *fake.recs[id].AuthorStatusID)
		staffContribution = id
	})
	t.Run("no default status", func(t *testing.T) {
		_, err := provider.Create(contributionapimodels.ContributionData{
			ContentType: models.ElementArticle,
			ContentID:   articleID,
			AuthorID:    guestAuthor.ID,
			Percentage:  10,
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "author_status_id", vErr.Field)
	})
	t.Run("status of another group", func(t *testing.T) {
		_, err := provider.Create(contributionapimodels.ContributionData{
			ContentType:    models.ElementArticle,
			ContentID:      articleID,
			AuthorID:       staffAuthor.ID,
			Percentage:     10,
			AuthorStatusID: &coAuthor.ID,
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "author_status_id", vErr.Field)
	})
	t.Run("percentages of one element are not summed", func(t *testing.T) {
		for n := 0; n < 2; n++ {
			_, err := provider.Create(contributionapimodels.ContributionData{
				ContentType:    models.ElementArticle,
				ContentID:      articleID,
				AuthorID:       guestAuthor.ID,
				Percentage:     60,
				AuthorStatusID: &coAuthor.ID,
			})
			require.NoError(t, err)
		}
		require.Len(t, fake.recs, 3)
	})
	t.Run("update", func(t *testing.T) {
		err := provider.Update(staffContribution, contributionapimodels.ContributionData{
			ContentType: models.ElementArticle,
			ContentID:   articleID,
			AuthorID:    staffAuthor.ID,
			Percentage:  100,
		})
		require.NoError(t, err)
		require.Equal(t, 100, fake.recs[staffContribution].Percentage)
	})
	t.Run("percentage out of range", func(t *testing.T) {
		_, err := provider.Create(contributionapimodels.ContributionData{
			ContentType:    models.ElementArticle,
			ContentID:      articleID,
			AuthorID:       guestAuthor.ID,
			Percentage:     101,
			AuthorStatusID: &coAuthor.ID,
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "percentage", vErr.Field)
	})
	t.Run("unknown element", func(t *testing.T) {
		_, err := provider.Create(contributionapimodels.ContributionData{
			ContentType: models.ElementPatent,
			ContentID:   uuid.NewString(),
			AuthorID:    staffAuthor.ID,
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "content_id", vErr.Field)
		require.Contains(t, vErr.Message, "does not exist")
	})
	t.Run("unknown author", func(t *testing.T) {
		_, err := provider.Create(contributionapimodels.ContributionData{
			ContentType: models.ElementArticle,
			ContentID:   articleID,
			AuthorID:    uuid.NewString(),
		})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "author_id", vErr.Field)
	})
	t.Run("list carries element titles", func(t *testing.T) {
		list, rowCount, err := provider.List(contributionapimodels.ContributionFilter{ContentID: articleID})
		require.NoError(t, err)
		require.EqualValues(t, 3, rowCount)
		for _, item := range list {
			require.Equal(t, "Graph colouring revisited", item.Element)
		}
	})
	t.Run("update missing", func(t *testing.T) {
		err := provider.Update(uuid.NewString(), contributionapimodels.ContributionData{})
		require.True(t, models.IsNotFound(err))
	})
}
