package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders posting documents. An interface so handlers can be
// tested against a stub.
type Generator interface {
	GenerateJobSummary(data JobSummaryData) ([]byte, error)
}

type JobSummaryData struct {
	JobID          int
	Title          string
	CompanyName    string
	Location       string
	MinSalary      int
	MaxSalary      int
	SalaryType     string
	Quantity       int
	EmploymentType string
	Description    string
	Requirement    string
	Benefit        string
	ContactName    string
	ContactEmail   string
	ContactPhone   string
	Deadline       time.Time
	CreatedAt      time.Time
}

type SummaryGenerator struct {
	fontName string
}

func NewSummaryGenerator() *SummaryGenerator {
	return &SummaryGenerator{fontName: "Helvetica"}
}

func (g *SummaryGenerator) GenerateJobSummary(data JobSummaryData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Job Posting #%d", data.JobID), false)
	pdf.SetAuthor("JobPort", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "JOB POSTING", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("No. JP-%06d  issued  %s", data.JobID, data.CreatedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Position")
	g.kvLine(pdf, "Title", data.Title)
	g.kvLine(pdf, "Company", data.CompanyName)
	g.kvLine(pdf, "Location", data.Location)
	g.kvLine(pdf, "Employment", data.EmploymentType)
	g.kvLine(pdf, "Openings", fmt.Sprintf("%d", data.Quantity))
	g.kvLine(pdf, "Salary", g.salaryLine(data))
	g.kvLine(pdf, "Apply before", data.Deadline.Format("02.01.2006"))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Description")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, data.Description, "", "L", false)
	pdf.Ln(2)

	g.sectionTitle(pdf, "Requirements")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, data.Requirement, "", "L", false)
	pdf.Ln(2)

	g.sectionTitle(pdf, "Benefits")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 6, data.Benefit, "", "L", false)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Contact")
	g.kvLine(pdf, "Name", data.ContactName)
	g.kvLine(pdf, "Email", data.ContactEmail)
	g.kvLine(pdf, "Phone", data.ContactPhone)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *SummaryGenerator) salaryLine(data JobSummaryData) string {
	if data.SalaryType == "deal" {
		return "Negotiable"
	}
	return fmt.Sprintf("%d - %d %s", data.MinSalary, data.MaxSalary, data.SalaryType)
}

func (g *SummaryGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *SummaryGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *SummaryGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
