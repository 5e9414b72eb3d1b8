package reports

import "time"

// Report types and formats accepted by the export endpoint.
const (
	ReportTypeCampaigns  = "campaigns"
	ReportTypeVolunteers = "volunteers"

	FormatExcel = "excel"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
)

// CampaignReportRow is one exported campaign line.
type CampaignReportRow struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	OrganizationName string    `json:"organization_name"`
	Status           string    `json:"status"`
	VolunteerCount   int       `json:"volunteer_count"`
	MaxVolunteers    int       `json:"max_volunteers"`
	CreatedAt        time.Time `json:"created_at"`
}

// VolunteerReportRow is one exported volunteer line.
type VolunteerReportRow struct {
	ID               uint      `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	OrganizationName string    `json:"organization_name"`
	Points           int       `json:"points"`
	JoinedAt         time.Time `json:"joined_at"`
}

// ReportData carries whichever rows the requested report needs.
type ReportData struct {
	Campaigns  []CampaignReportRow
	Volunteers []VolunteerReportRow
}
