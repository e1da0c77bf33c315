package journalprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	publisherprovider "academic-records-backend/lib/dicts/publisher"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	journals map[string]dbmodels.Journal
	// articles maps article id to its journal id and snapshots
	articles map[string]dbmodels.Article
}

func (f *fakeStore) Create(rec dbmodels.Journal) (string, error) {
	rec.Clean()
	if err := rec.Validate(); err != nil {
		return "", err
	}
	rec.ID = uuid.NewString()
	f.journals[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Journal, error) {
	rec, ok := f.journals[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(search, publisherID string) ([]dbmodels.Journal, error) {
	list := []dbmodels.Journal{}
	for _, rec := range f.journals {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeStore) Update(rec dbmodels.Journal) (int64, error) {
	rec.Clean()
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	f.journals[rec.ID] = rec
	var n int64
	for id, article := range f.articles {
		if article.JournalID == rec.ID {
			article.JournalImpactFactor = rec.ImpactFactor
			article.JournalRating = rec.Rating
			f.articles[id] = article
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.journals, id)
	return nil
}

type fakePublisher struct {
	publisherprovider.Provider
	known string
}

func (f fakePublisher) Get(id string) (dictapimodels.PublisherView, error) {
	if id != f.known {
		return dictapimodels.PublisherView{}, errors.Wrap(models.ErrNotFound, "publisher not found")
	}
	return dictapimodels.PublisherView{ID: id}, nil
}

func TestJournalProvider(t *testing.T) {
	publisherID := uuid.NewString()
	fake := &fakeStore{journals: map[string]dbmodels.Journal{}, articles: map[string]dbmodels.Article{}}
	provider := NewProvider(fake, fakePublisher{known: publisherID})

	id, err := provider.Create(dictapimodels.JournalData{
		PublisherID:  &publisherID,
		Title:        "Journal of Applied Physics",
		Abbr:         "J APPL PHYS",
		ImpactFactor: 2.87654,
		Rating:       100,
	})
	require.NoError(t, err)

	t.Run("impact factor keeps three decimals", func(t *testing.T) {
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, 2.877, item.ImpactFactor)
		require.Equal(t, "Journal of Applied Physics (J APPL PHYS)", item.Label)
	})
	t.Run("rating must be on the scale", func(t *testing.T) {
		_, err := provider.Create(dictapimodels.JournalData{Title: "T", Abbr: "T", Rating: 50})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "rating", vErr.Field)
	})
	t.Run("unknown publisher", func(t *testing.T) {
		unknown := uuid.NewString()
		_, err := provider.Create(dictapimodels.JournalData{PublisherID: &unknown, Title: "T", Abbr: "T"})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "publisher_id", vErr.Field)
	})
	t.Run("journal cannot precede itself", func(t *testing.T) {
		err := provider.Update(id, dictapimodels.JournalData{Title: "T", Abbr: "T", AncestorID: &id})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "ancestor_id", vErr.Field)
	})
	t.Run("saving refreshes article snapshots", func(t *testing.T) {
		fake.articles["a1"] = dbmodels.Article{JournalID: id, JournalImpactFactor: 2.877, JournalRating: 100}
		fake.articles["a2"] = dbmodels.Article{JournalID: uuid.NewString(), JournalImpactFactor: 1, JournalRating: 20}
		err := provider.Update(id, dictapimodels.JournalData{
			PublisherID:  &publisherID,
			Title:        "Journal of Applied Physics",
			Abbr:         "J APPL PHYS",
			ImpactFactor: 3.1,
			Rating:       140,
		})
		require.NoError(t, err)
		require.Equal(t, 3.1, fake.articles["a1"].JournalImpactFactor)
		require.Equal(t, 140, fake.articles["a1"].JournalRating)
		require.Equal(t, 20, fake.articles["a2"].JournalRating)
	})
}
