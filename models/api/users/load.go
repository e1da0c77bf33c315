package usersapimodels

// LoadFailure describes a workbook row that could not be saved. Row is 1-based
// and counts the header row.
type LoadFailure struct {
	Row      int    `json:"row"`
	Username string `json:"username"`
	Error    string `json:"error"`
}

type LoadResult struct {
	BatchID   string        `json:"batch_id"`
	Sheet     string        `json:"sheet"`
	Created   []string      `json:"created"`
	Failures  []LoadFailure `json:"failures"`
	ArchiveID string        `json:"archive_id,omitempty"`
}
