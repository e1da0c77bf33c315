package approvalprovider

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/approval/store"
	"academic-records-backend/lib/metrics"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	approvalapimodels "academic-records-backend/models/api/approval"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	// Approve sets the flag on the selected records of the kind; userID may be empty.
	Approve(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string) (result apimodels.ActionResult, err error)
	Disapprove(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string) (result apimodels.ActionResult, err error)
	List(kind models.ApprovalKind, filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalRecordView, rowCount int64, err error)
	History(kind models.ApprovalKind, recordID string) (list []approvalapimodels.ApprovalHistoryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(approvalStore store.Provider) Provider {
	instance := impl{
		store: approvalStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Approve(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string) (apimodels.ActionResult, error) {
	return i.setApproved(kind, request, userID, true)
}

func (i impl) Disapprove(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string) (apimodels.ActionResult, error) {
	return i.setApproved(kind, request, userID, false)
}

func (i impl) List(kind models.ApprovalKind, filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalRecordView, rowCount int64, err error) {
	if err = checkKind(kind); err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(kind, helpers.ParseBoolFilter(filter.Approved), page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]approvalapimodels.ApprovalRecordView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, approvalapimodels.ApprovalRecordConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) History(kind models.ApprovalKind, recordID string) (list []approvalapimodels.ApprovalHistoryView, err error) {
	if err = checkKind(kind); err != nil {
		return nil, err
	}
	recList, err := i.store.History(kind, recordID)
	if err != nil {
		return nil, err
	}
	list = make([]approvalapimodels.ApprovalHistoryView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, approvalapimodels.ApprovalHistoryConvert(rec))
	}
	return list, nil
}

// setApproved touches only the records whose flag actually changes; each of them gets a history row.
func (i impl) setApproved(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string, approved bool) (apimodels.ActionResult, error) {
	if err := checkKind(kind); err != nil {
		return apimodels.ActionResult{}, err
	}
	if err := request.Validate(); err != nil {
		return apimodels.ActionResult{}, err
	}
	pending, err := i.store.SetApproved(kind, request.IDs, approved, func(recordID string) dbmodels.ApprovalHistory {
		return dbmodels.ApprovalHistory{
			Kind:     kind,
			RecordID: recordID,
			Approved: approved,
			UserID:   helpers.StrPtr(userID),
			Comment:  request.Comment,
			Changes: dbmodels.EntityChanges{
				Description: decision(approved),
				Data: []dbmodels.FieldChanges{
					{Field: "approved", OldValue: !approved, NewValue: approved},
				},
			},
		}
	})
	if err != nil {
		return apimodels.ActionResult{}, err
	}
	metrics.ObserveApproval(string(kind), approved, len(pending))
	log.WithField("kind", kind).
		WithField("approved", approved).
		WithField("affected", len(pending)).
		Info("approval changed")
	return apimodels.ActionResult{
		Message:  resultMessage(approved, len(pending), len(request.IDs)),
		Affected: pending,
	}, nil
}

func checkKind(kind models.ApprovalKind) error {
	if !kind.IsValid() {
		return models.NewValidationErrorf("kind", "unknown record type %q", kind)
	}
	return nil
}

func decision(approved bool) string {
	if approved {
		return "approved"
	}
	return "disapproved"
}

func resultMessage(approved bool, changed, selected int) string {
	action := "Approved"
	if !approved {
		action = "Disapproved"
	}
	if changed == selected {
		return fmt.Sprintf("%s the selected %s.", action, helpers.Plural(selected, "record", "records"))
	}
	return fmt.Sprintf("%s %d of %d selected records. The others already were %s.",
		action, changed, selected, decision(approved))
}
