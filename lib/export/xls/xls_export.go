package xlsexport

import (
	"bytes"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "academic-records-backend/models/db"
)

const (
	EmployeesSheet     = "Employees"
	ContributionsSheet = "Contributions"
)

type Provider interface {
	Employees(list []dbmodels.Employee, today time.Time, orcidPrefix string) (*bytes.Buffer, error)
	// Contributions takes the element titles keyed by element id.
	Contributions(list []dbmodels.Contribution, titles map[string]string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeHeaders = []string{"Full name", "Status", "Academic degree", "Discipline", "ORCID", "Employed", "Active employments"}

var contributionHeaders = []string{"Element type", "Element", "Author", "Author group", "Status", "Percentage", "Approved"}

func (i impl) Employees(list []dbmodels.Employee, today time.Time, orcidPrefix string) (*bytes.Buffer, error) {
	return writeWorkbook(EmployeesSheet, employeeHeaders, len(list), func(f *excelize.File, row int) error {
		for _, rec := range list {
			row++
			status, degree, discipline := "", "", ""
			if rec.Status != nil {
				status = rec.Status.String()
			}
			if rec.AcademicDegree != nil {
				degree = rec.AcademicDegree.Name
			}
			if rec.Discipline != nil {
				discipline = rec.Discipline.String()
			}
			employments := []string{}
			for _, employment := range rec.ActiveEmployments(today) {
				place := employment.FullPositionName()
				if employment.Department != nil {
					place += " in " + employment.Department.FullAbbr()
				}
				employments = append(employments, place)
			}
			err := writeRow(f, EmployeesSheet, row,
				rec.FullName(),
				status,
				degree,
				discipline,
				rec.OrcidURL(orcidPrefix),
				yesNo(rec.IsEmployed(today)),
				strings.Join(employments, "; "),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) Contributions(list []dbmodels.Contribution, titles map[string]string) (*bytes.Buffer, error) {
	return writeWorkbook(ContributionsSheet, contributionHeaders, len(list), func(f *excelize.File, row int) error {
		for _, rec := range list {
			row++
			author, group, status := "", "", ""
			if rec.Author != nil {
				author = rec.Author.String()
				group = rec.Author.Group().ToHuman()
			}
			if rec.AuthorStatus != nil {
				status = rec.AuthorStatus.Name
			}
			err := writeRow(f, ContributionsSheet, row,
				rec.Kind().ToHuman(),
				dbmodels.TruncateWords(titles[rec.ContentID], dbmodels.TitleWords),
				author,
				group,
				status,
				rec.Percentage,
				yesNo(rec.Approved),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func writeWorkbook(sheet string, headers []string, rows int, writeData func(f *excelize.File, row int) error) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	row, err := writeHeader(f, sheet, 0, headers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if rows != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(headers), row+rows); err != nil {
			return nil, errors.Wrap(err, "failed to style the xlsx data")
		}
		if err = writeData(f, row); err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data")
		}
	}
	return f.WriteToBuffer()
}
