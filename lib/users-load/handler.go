package usersload

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"academic-records-backend/config"
	"academic-records-backend/db"
	filestorage "academic-records-backend/lib/file-storage"
	"academic-records-backend/lib/metrics"
	"academic-records-backend/lib/users/store"
	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/lib/utils/lock"
	"academic-records-backend/models"
	exportapimodels "academic-records-backend/models/api/export"
	usersapimodels "academic-records-backend/models/api/users"
	dbmodels "academic-records-backend/models/db"
)

const jobName = "users-load"

// Columns read from the sheet, in the expected order.
var Columns = []string{"id", "username", "password", "first_name", "last_name", "sex", "email", "is_staff", "is_superuser"}

var requiredColumns = []string{"username", "password"}

type Provider interface {
	// Load creates a user per sheet row. An empty sheet name selects the configured default.
	Load(ctx context.Context, workbook io.Reader, fileName, sheet, userID string) (result usersapimodels.LoadResult, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), filestorage.Instance, config.Conf.Records.UserSheet)
}

// NewProvider accepts a nil archive; the workbook is not kept then.
func NewProvider(userStore store.Provider, archive filestorage.Provider, defaultSheet string) Provider {
	return impl{
		store:        userStore,
		archive:      archive,
		defaultSheet: defaultSheet,
	}
}

type impl struct {
	store        store.Provider
	archive      filestorage.Provider
	defaultSheet string
}

func (i impl) Load(ctx context.Context, workbook io.Reader, fileName, sheet, userID string) (result usersapimodels.LoadResult, err error) {
	if sheet == "" {
		sheet = i.defaultSheet
	}
	result = usersapimodels.LoadResult{
		BatchID:  uuid.NewString(),
		Sheet:    sheet,
		Created:  []string{},
		Failures: []usersapimodels.LoadFailure{},
	}
	logger := log.WithField("batch_id", result.BatchID).WithField("sheet", sheet)

	data, err := io.ReadAll(workbook)
	if err != nil {
		return result, errors.Wrap(err, "failed to read the workbook")
	}
	rows, err := readSheet(data, sheet)
	if err != nil {
		return result, err
	}
	if !lock.Resource.Acquire(ctx, jobName) {
		return result, errors.New("users load cancelled")
	}
	defer lock.Resource.Release(jobName)

	for _, row := range rows {
		username, err := i.createUser(row)
		if err != nil {
			logger.WithError(err).WithField("username", row.values["username"]).Warn("user not loaded")
			metrics.ImportedUsers.WithLabelValues("failed").Inc()
			result.Failures = append(result.Failures, usersapimodels.LoadFailure{
				Row:      row.number,
				Username: row.values["username"],
				Error:    err.Error(),
			})
			continue
		}
		metrics.ImportedUsers.WithLabelValues("created").Inc()
		result.Created = append(result.Created, username)
	}
	logger.WithField("created", len(result.Created)).
		WithField("failed", len(result.Failures)).
		Info("users loaded")

	if i.archive != nil {
		archiveID, err := i.archive.Archive(ctx, dbmodels.ArchiveUsersLoad, fileName, exportapimodels.ContentTypeXLSX, data, userID)
		if err != nil {
			logger.WithError(err).Error("failed to archive the workbook")
		} else {
			result.ArchiveID = archiveID
		}
	}
	return result, nil
}

func (i impl) createUser(row sheetRow) (username string, err error) {
	values := row.values
	rec := dbmodels.User{
		Username:   strings.TrimSpace(values["username"]),
		FirstName:  values["first_name"],
		LastName:   values["last_name"],
		Sex:        models.Sex(strings.ToUpper(values["sex"])),
		Email:      values["email"],
		IsActive:   true,
		DateJoined: time.Now(),
	}
	if id := strings.TrimSpace(values["id"]); id != "" {
		if _, err = uuid.Parse(id); err != nil {
			log.WithField("row", row.number).WithField("id", id).Debug("sheet id is not a uuid, a new one is generated")
		} else {
			rec.ID = id
		}
	}
	if rec.IsStaff, err = parseFlag(values["is_staff"]); err != nil {
		return "", errors.Wrap(err, "is_staff")
	}
	if rec.IsSuperuser, err = parseFlag(values["is_superuser"]); err != nil {
		return "", errors.Wrap(err, "is_superuser")
	}
	taken, err := i.store.UsernameTaken(rec.Username, "")
	if err != nil {
		return "", err
	}
	if taken {
		return "", errors.Errorf("DB integrity issues occurred when creating user %q: username already exists", rec.Username)
	}
	if rec.Password, err = authutils.HashPassword(values["password"]); err != nil {
		return "", err
	}
	if _, err = i.store.Create(rec); err != nil {
		return "", errors.Wrapf(err, "DB integrity issues occurred when creating user %q", rec.Username)
	}
	return rec.Username, nil
}

type sheetRow struct {
	number int
	values map[string]string
}

// readSheet checks the sheet layout and returns the data rows. Empty optional cells
// read as empty strings, which the user model turns into its defaults.
func readSheet(data []byte, sheet string) ([]sheetRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, models.NewValidationError("file", "the file is not a valid xlsx workbook")
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, models.NewValidationErrorf("sheet", "sheet %q not found in the workbook", sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the sheet")
	}
	if len(rows) == 0 {
		return nil, models.NewValidationErrorf("sheet", "sheet %q is empty", sheet)
	}
	header := map[string]int{}
	for idx, name := range rows[0] {
		header[strings.TrimSpace(name)] = idx
	}
	missing := []string{}
	for _, column := range Columns {
		if _, ok := header[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, models.NewValidationErrorf("sheet",
			"the following columns are missing in the data sheet %q: %s", sheet, strings.Join(missing, ", "))
	}

	result := []sheetRow{}
	for n, cells := range rows[1:] {
		row := sheetRow{number: n + 2, values: map[string]string{}}
		empty := true
		for _, column := range Columns {
			value := ""
			if idx := header[column]; idx < len(cells) {
				value = strings.TrimSpace(cells[idx])
			}
			if value != "" {
				empty = false
			}
			row.values[column] = value
		}
		if empty {
			continue
		}
		for _, column := range requiredColumns {
			if row.values[column] == "" {
				return nil, models.NewValidationErrorf("sheet",
					"the following fields have to be specified for all the users: %s (row %d)",
					strings.Join(requiredColumns, ", "), row.number)
			}
		}
		result = append(result, row)
	}
	return result, nil
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "":
		return false, nil
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(value)
}
