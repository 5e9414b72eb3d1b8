package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders report rows in the requested format. It returns the file
// bytes, a filename and a content type.
type Exporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeCampaigns:
		return e.exportCampaigns(format, timestamp, data.Campaigns)
	case ReportTypeVolunteers:
		return e.exportVolunteers(format, timestamp, data.Volunteers)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

// ============================
// CAMPAIGN EXPORTS
// ============================

func (e *exporter) exportCampaigns(format, timestamp string, rows []CampaignReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		data, err := e.exportCampaignsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("campaigns_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatCSV:
		data, err := e.exportCampaignsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("campaigns_report_%s.csv", timestamp), "text/csv", nil
	case FormatPDF:
		data, err := e.exportCampaignsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("campaigns_report_%s.pdf", timestamp), "application/pdf", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) exportCampaignsCSV(rows []CampaignReportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"id", "title", "organization", "status", "volunteers", "max_volunteers", "created_at"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprint(r.ID),
			r.Title,
			r.OrganizationName,
			r.Status,
			fmt.Sprint(r.VolunteerCount),
			fmt.Sprint(r.MaxVolunteers),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportCampaignsExcel(rows []CampaignReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Campaigns"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Title", "Organization", "Status", "Volunteers", "Max Volunteers", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range rows {
		values := []interface{}{
			r.ID, r.Title, r.OrganizationName, r.Status,
			r.VolunteerCount, r.MaxVolunteers, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportCampaignsPDF(rows []CampaignReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Campaigns Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Title", "Organization", "Status", "Volunteers", "Created At"}
	widths := []float64{15, 90, 70, 30, 25, 45}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.OrganizationName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%d/%d", r.VolunteerCount, r.MaxVolunteers), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.CreatedAt.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ============================
// VOLUNTEER EXPORTS
// ============================

func (e *exporter) exportVolunteers(format, timestamp string, rows []VolunteerReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		data, err := e.exportVolunteersExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("volunteers_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatCSV:
		data, err := e.exportVolunteersCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("volunteers_report_%s.csv", timestamp), "text/csv", nil
	case FormatPDF:
		data, err := e.exportVolunteersPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("volunteers_report_%s.pdf", timestamp), "application/pdf", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) exportVolunteersCSV(rows []VolunteerReportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"id", "full_name", "email", "phone", "organization", "points", "joined_at"}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			fmt.Sprint(r.ID),
			r.FullName,
			r.Email,
			r.Phone,
			r.OrganizationName,
			fmt.Sprint(r.Points),
			r.JoinedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportVolunteersExcel(rows []VolunteerReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Volunteers"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Full Name", "Email", "Phone", "Organization", "Points", "Joined At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range rows {
		values := []interface{}{
			r.ID, r.FullName, r.Email, r.Phone,
			r.OrganizationName, r.Points, r.JoinedAt.Format("2006-01-02"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportVolunteersPDF(rows []VolunteerReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Volunteers Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"ID", "Full Name", "Email", "Phone", "Organization", "Points", "Joined At"}
	widths := []float64{15, 60, 65, 30, 55, 20, 30}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Phone, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.OrganizationName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprint(r.Points), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.JoinedAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
