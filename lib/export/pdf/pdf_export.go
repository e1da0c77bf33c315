package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"academic-records-backend/models"
)

const (
	utf8Font = "DejaVu"
	coreFont = "Helvetica"
)

type Provider interface {
	EmployeeSheet(sheet EmployeeSheet) (pdfFile []byte, err error)
}

var Instance Provider

// NewHandler takes the directory holding the DejaVu fonts. Without it the core
// Helvetica font is used and characters outside cp1252 are lost.
func NewHandler(fontDir string) {
	Instance = impl{fontDir: fontDir}
}

type impl struct {
	fontDir string
}

// EmployeeSheet lists the outputs of one employee.
type EmployeeSheet struct {
	Employee    string
	Degree      string
	OrcidURL    string
	Employments []string
	Lines       []SheetLine
	GeneratedAt time.Time
}

type SheetLine struct {
	Kind       models.ElementKind
	Title      string
	Year       string
	Percentage int
	Status     string
	Approved   bool
}

var lineHeaders = []string{"Type", "Title", "Year", "%", "Status"}
var lineWidths = []float64{20, 110, 15, 12, 33}

func (i impl) EmployeeSheet(sheet EmployeeSheet) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("employee sheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", i.fontDir)
	family, tr := coreFont, pdf.UnicodeTranslatorFromDescriptor("")
	if i.fontDir != "" {
		pdf.AddUTF8Font(utf8Font, "", "DejaVuSans.ttf")
		pdf.AddUTF8Font(utf8Font, "B", "DejaVuSans-Bold.ttf")
		family, tr = utf8Font, func(s string) string { return s }
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated %s, page %d", sheet.GeneratedAt.Format(time.DateOnly), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 8, tr(sheet.Employee), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)
	if sheet.Degree != "" {
		pdf.CellFormat(0, 6, tr(sheet.Degree), "", 1, "L", false, 0, "")
	}
	if sheet.OrcidURL != "" {
		pdf.CellFormat(0, 6, tr("ORCID: "+sheet.OrcidURL), "", 1, "L", false, 0, "")
	}
	for _, employment := range sheet.Employments {
		pdf.CellFormat(0, 6, tr(employment), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for idx, header := range lineHeaders {
		pdf.CellFormat(lineWidths[idx], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	if len(sheet.Lines) == 0 {
		pdf.CellFormat(sum(lineWidths), 7, "No outputs recorded", "1", 1, "C", false, 0, "")
	}
	for _, line := range sheet.Lines {
		title := pdf.SplitText(tr(line.Title), lineWidths[1]-2)
		height := 5 * float64(len(title))
		if height < 7 {
			height = 7
		}
		x, y := pdf.GetXY()
		if y+height > 270 {
			pdf.AddPage()
			x, y = pdf.GetXY()
		}
		pdf.CellFormat(lineWidths[0], height, line.Kind.ToHuman(), "1", 0, "L", false, 0, "")
		pdf.MultiCell(lineWidths[1], height/float64(len(title)), tr(line.Title), "1", "L", false)
		pdf.SetXY(x+lineWidths[0]+lineWidths[1], y)
		pdf.CellFormat(lineWidths[2], height, line.Year, "1", 0, "C", false, 0, "")
		pdf.CellFormat(lineWidths[3], height, fmt.Sprintf("%d", line.Percentage), "1", 0, "R", false, 0, "")
		pdf.CellFormat(lineWidths[4], height, tr(line.Status), "1", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sum(values []float64) float64 {
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total
}
