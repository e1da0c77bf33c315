package approvalprovider

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
	approvalapimodels "academic-records-backend/models/api/approval"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	mu       sync.Mutex
	approved map[string]bool
	history  []dbmodels.ApprovalHistory
}

func (f *fakeStore) SetApproved(_ models.ApprovalKind, ids []string, approved bool, history func(string) dbmodels.ApprovalHistory) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	changed := []string{}
	for _, id := range ids {
		current, ok := f.approved[id]
		if !ok || current == approved {
			continue
		}
		f.approved[id] = approved
		f.history = append(f.history, history(id))
		changed = append(changed, id)
	}
	return changed, nil
}

func (f *fakeStore) List(_ models.ApprovalKind, approved *bool, _, _ int) ([]approvalapimodels.ApprovalRecord, int64, error) {
	list := []approvalapimodels.ApprovalRecord{}
	for id, value := range f.approved {
		if approved == nil || *approved == value {
			list = append(list, approvalapimodels.ApprovalRecord{ID: id, Approved: value})
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) History(kind models.ApprovalKind, recordID string) ([]dbmodels.ApprovalHistory, error) {
	list := []dbmodels.ApprovalHistory{}
	for _, rec := range f.history {
		if rec.Kind == kind && rec.RecordID == recordID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func TestApprovalProvider(t *testing.T) {
	first, second, third := uuid.NewString(), uuid.NewString(), uuid.NewString()
	fake := &fakeStore{
		approved: map[string]bool{first: false, second: false, third: true},
	}
	provider := NewProvider(fake)
	userID := uuid.NewString()

	t.Run("approve only changes pending records", func(t *testing.T) {
		result, err := provider.Approve(models.ApprovalArticle, approvalapimodels.ApprovalRequest{
			IDs:     []string{first, third},
			Comment: "checked against the journal",
		}, userID)
		require.NoError(t, err)
		require.Equal(t, []string{first}, result.Affected)
		require.Equal(t, "Approved 1 of 2 selected records. The others already were approved.", result.Message)
		require.True(t, fake.approved[first])
		require.Len(t, fake.history, 1)
		require.Equal(t, userID, *fake.history[0].UserID)
		require.Equal(t, "checked against the journal", fake.history[0].Comment)
	})
	t.Run("disapprove", func(t *testing.T) {
		result, err := provider.Disapprove(models.ApprovalArticle, approvalapimodels.ApprovalRequest{IDs: []string{first}}, "")
		require.NoError(t, err)
		require.Equal(t, "Disapproved the selected record.", result.Message)
		require.False(t, fake.approved[first])
		require.Nil(t, fake.history[1].UserID)
	})
	t.Run("history of one record", func(t *testing.T) {
		list, err := provider.History(models.ApprovalArticle, first)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.True(t, list[0].Approved)
		require.False(t, list[1].Approved)
	})
	t.Run("list by state", func(t *testing.T) {
		list, rowCount, err := provider.List(models.ApprovalArticle, approvalapimodels.ApprovalFilter{Approved: "true"})
		require.NoError(t, err)
		require.EqualValues(t, 1, rowCount)
		require.Equal(t, third, list[0].ID)
	})
	t.Run("concurrent approvals write one history row per record", func(t *testing.T) {
		ids := []string{uuid.NewString(), uuid.NewString()}
		shared := &fakeStore{approved: map[string]bool{ids[0]: false, ids[1]: false}}
		sharedProvider := NewProvider(shared)
		wg := sync.WaitGroup{}
		affected := make(chan int, 4)
		errs := make(chan error, 4)
		for n := 0; n < 4; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := sharedProvider.Approve(models.ApprovalProject, approvalapimodels.ApprovalRequest{IDs: ids}, userID)
				errs <- err
				affected <- len(result.Affected)
			}()
		}
		wg.Wait()
		close(affected)
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		total := 0
		for n := range affected {
			total += n
		}
		require.Equal(t, 2, total)
		require.Len(t, shared.history, 2)
	})
	t.Run("unknown kind", func(t *testing.T) {
		_, err := provider.Approve("journal", approvalapimodels.ApprovalRequest{IDs: []string{first}}, userID)
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "kind", vErr.Field)
	})
	t.Run("empty selection", func(t *testing.T) {
		_, err := provider.Approve(models.ApprovalEmployee, approvalapimodels.ApprovalRequest{}, userID)
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "ids", vErr.Field)
	})
}
