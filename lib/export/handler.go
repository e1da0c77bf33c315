package exportprovider

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/db"
	pdfexport "academic-records-backend/lib/export/pdf"
	"academic-records-backend/lib/export/store"
	xlsexport "academic-records-backend/lib/export/xls"
	filestorage "academic-records-backend/lib/file-storage"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/lib/utils/lock"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	employeeapimodels "academic-records-backend/models/api/employee"
	exportapimodels "academic-records-backend/models/api/export"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	// EmployeesWorkbook, ContributionsWorkbook and EmployeeSheet also store the file
	// in the archive when archive is set.
	EmployeesWorkbook(ctx context.Context, filter employeeapimodels.EmployeeFilter, archive bool, userID string) (file exportapimodels.File, err error)
	ContributionsWorkbook(ctx context.Context, filter contributionapimodels.ContributionFilter, archive bool, userID string) (file exportapimodels.File, err error)
	EmployeeSheet(ctx context.Context, employeeID string, archive bool, userID string) (file exportapimodels.File, err error)
	Archives(filter exportapimodels.ArchiveFilter) (list []exportapimodels.ArchivedFileView, err error)
	ArchivedFile(ctx context.Context, id string) (file exportapimodels.File, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), xlsexport.Instance, pdfexport.Instance,
		filestorage.Instance, config.Conf.Records.OrcidURLPrefix)
}

// NewProvider accepts a nil archive when the object storage is not configured.
func NewProvider(exportStore store.Provider, xls xlsexport.Provider, pdf pdfexport.Provider, archive filestorage.Provider, orcidPrefix string) Provider {
	instance := impl{
		store:       exportStore,
		xls:         xls,
		pdf:         pdf,
		archive:     archive,
		orcidPrefix: orcidPrefix,
		today:       helpers.Today,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"xlsexport", instance.xls,
		"pdfexport", instance.pdf,
	)
	return instance
}

type impl struct {
	store       store.Provider
	xls         xlsexport.Provider
	pdf         pdfexport.Provider
	archive     filestorage.Provider
	orcidPrefix string
	today       func() time.Time
}

func (i impl) EmployeesWorkbook(ctx context.Context, filter employeeapimodels.EmployeeFilter, archive bool, userID string) (exportapimodels.File, error) {
	if err := i.checkArchive(archive); err != nil {
		return exportapimodels.File{}, err
	}
	list, err := i.store.Employees(filter)
	if err != nil {
		return exportapimodels.File{}, err
	}
	today := i.today()
	if employed := helpers.ParseBoolFilter(filter.Employed); employed != nil {
		selected := make([]dbmodels.Employee, 0, len(list))
		for _, rec := range list {
			if rec.IsEmployed(today) == *employed {
				selected = append(selected, rec)
			}
		}
		list = selected
	}
	buf, err := i.xls.Employees(list, today, i.orcidPrefix)
	if err != nil {
		return exportapimodels.File{}, err
	}
	file := exportapimodels.File{
		Name:        fmt.Sprintf("employees-%s.xlsx", today.Format(time.DateOnly)),
		ContentType: exportapimodels.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}
	return i.archiveFile(ctx, dbmodels.ArchiveEmployeesExport, file, archive, userID)
}

func (i impl) ContributionsWorkbook(ctx context.Context, filter contributionapimodels.ContributionFilter, archive bool, userID string) (exportapimodels.File, error) {
	if err := i.checkArchive(archive); err != nil {
		return exportapimodels.File{}, err
	}
	list, err := i.store.Contributions(filter)
	if err != nil {
		return exportapimodels.File{}, err
	}
	elements, err := i.elements(list)
	if err != nil {
		return exportapimodels.File{}, err
	}
	titles := make(map[string]string, len(elements))
	for id, row := range elements {
		titles[id] = row.Title
	}
	buf, err := i.xls.Contributions(list, titles)
	if err != nil {
		return exportapimodels.File{}, err
	}
	file := exportapimodels.File{
		Name:        fmt.Sprintf("contributions-%s.xlsx", i.today().Format(time.DateOnly)),
		ContentType: exportapimodels.ContentTypeXLSX,
		Data:        buf.Bytes(),
	}
	return i.archiveFile(ctx, dbmodels.ArchiveContributionsExport, file, archive, userID)
}

func (i impl) EmployeeSheet(ctx context.Context, employeeID string, archive bool, userID string) (exportapimodels.File, error) {
	if err := i.checkArchive(archive); err != nil {
		return exportapimodels.File{}, err
	}
	employee, err := i.store.GetEmployee(employeeID)
	if err != nil {
		return exportapimodels.File{}, err
	}
	if employee == nil {
		return exportapimodels.File{}, errors.Wrap(models.ErrNotFound, "employee not found")
	}
	contributions, err := i.store.Contributions(contributionapimodels.ContributionFilter{EmployeeID: employeeID})
	if err != nil {
		return exportapimodels.File{}, err
	}
	elements, err := i.elements(contributions)
	if err != nil {
		return exportapimodels.File{}, err
	}
	today := i.today()
	sheet := pdfexport.EmployeeSheet{
		Employee:    employee.FullName(),
		OrcidURL:    employee.OrcidURL(i.orcidPrefix),
		GeneratedAt: today,
	}
	if employee.AcademicDegree != nil {
		sheet.Degree = employee.AcademicDegree.Name
	}
	for _, employment := range employee.ActiveEmployments(today) {
		place := employment.FullPositionName()
		if employment.Department != nil {
			place += ", " + employment.Department.String()
		}
		sheet.Employments = append(sheet.Employments, place)
	}
	for _, contribution := range contributions {
		element := elements[contribution.ContentID]
		line := pdfexport.SheetLine{
			Kind:       contribution.Kind(),
			Title:      element.Title,
			Year:       element.Year,
			Percentage: contribution.Percentage,
			Approved:   contribution.Approved,
		}
		if contribution.AuthorStatus != nil {
			line.Status = contribution.AuthorStatus.Name
		}
		sheet.Lines = append(sheet.Lines, line)
	}
	sort.SliceStable(sheet.Lines, func(a, b int) bool {
		if sheet.Lines[a].Year != sheet.Lines[b].Year {
			return sheet.Lines[a].Year > sheet.Lines[b].Year
		}
		return sheet.Lines[a].Title < sheet.Lines[b].Title
	})
	data, err := i.pdf.EmployeeSheet(sheet)
	if err != nil {
		return exportapimodels.File{}, err
	}
	file := exportapimodels.File{
		Name:        fmt.Sprintf("%s-%s.pdf", employee.ShortName(), today.Format(time.DateOnly)),
		ContentType: exportapimodels.ContentTypePDF,
		Data:        data,
	}
	return i.archiveFile(ctx, dbmodels.ArchiveEmployeeSheet, file, archive, userID)
}

func (i impl) Archives(filter exportapimodels.ArchiveFilter) (list []exportapimodels.ArchivedFileView, err error) {
	if i.archive == nil {
		return []exportapimodels.ArchivedFileView{}, nil
	}
	recList, err := i.archive.List(filter.Kind)
	if err != nil {
		return nil, err
	}
	list = make([]exportapimodels.ArchivedFileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, exportapimodels.ArchivedFileConvert(rec))
	}
	return list, nil
}

func (i impl) ArchivedFile(ctx context.Context, id string) (exportapimodels.File, error) {
	if i.archive == nil {
		return exportapimodels.File{}, errors.Wrap(models.ErrNotFound, "archived file not found")
	}
	rec, data, err := i.archive.GetFile(ctx, id)
	if err != nil {
		return exportapimodels.File{}, err
	}
	return exportapimodels.File{
		Name:        rec.FileName,
		ContentType: rec.ContentType,
		Data:        data,
		ArchiveID:   rec.ID,
	}, nil
}

func (i impl) checkArchive(archive bool) error {
	if archive && i.archive == nil {
		return models.NewValidationError("archive", "the object storage is not configured")
	}
	return nil
}

func (i impl) archiveFile(ctx context.Context, kind dbmodels.ArchiveKind, file exportapimodels.File, archive bool, userID string) (exportapimodels.File, error) {
	if !archive {
		return file, nil
	}
	jobName := "archive-" + string(kind)
	if !lock.Resource.Acquire(ctx, jobName) {
		return exportapimodels.File{}, errors.New("export archiving cancelled")
	}
	defer lock.Resource.Release(jobName)
	id, err := i.archive.Archive(ctx, kind, file.Name, file.ContentType, file.Data, userID)
	if err != nil {
		return exportapimodels.File{}, err
	}
	file.ArchiveID = id
	log.WithField("archive_id", id).WithField("kind", kind).Info("export archived")
	return file, nil
}

// elements loads the title and year of the elements the contributions point to.
func (i impl) elements(contributions []dbmodels.Contribution) (map[string]store.ElementRow, error) {
	ids := map[models.ElementKind][]string{}
	for _, rec := range contributions {
		ids[rec.Kind()] = append(ids[rec.Kind()], rec.ContentID)
	}
	result := map[string]store.ElementRow{}
	for kind, kindIDs := range ids {
		rows, err := i.store.Elements(kind, kindIDs)
		if err != nil {
			return nil, err
		}
		for id, row := range rows {
			result[id] = row
		}
	}
	return result, nil
}
