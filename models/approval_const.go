package models

// ApprovalKind names a record type taking part in the approval workflow.
type ApprovalKind string

const (
	ApprovalArticle      ApprovalKind = "article"
	ApprovalPatent       ApprovalKind = "patent"
	ApprovalProject      ApprovalKind = "project"
	ApprovalContribution ApprovalKind = "contribution"
	ApprovalEmployee     ApprovalKind = "employee"
)

var ApprovalKinds = []ApprovalKind{
	ApprovalArticle,
	ApprovalPatent,
	ApprovalProject,
	ApprovalContribution,
	ApprovalEmployee,
}

func (k ApprovalKind) IsValid() bool {
	for _, kind := range ApprovalKinds {
		if kind == k {
			return true
		}
	}
	return false
}
