package services

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/leadscope/lead-intel-api/internal/errors"
	"github.com/leadscope/lead-intel-api/internal/models"
)

// ExportFormat specifies the rendering for exported leads.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// ExportRequest selects which leads to export and how to render them. An
// empty LeadIDs slice exports the whole catalog.
type ExportRequest struct {
	LeadIDs []int  `json:"lead_ids"`
	Format  string `json:"format" validate:"omitempty,oneof=csv json"`
}

var validate = validator.New()

// Export renders the selected leads and returns the payload plus the format
// actually used. Unknown ids are skipped: export never fails on a stale
// selection.
func (s *leadService) Export(req ExportRequest) ([]byte, ExportFormat, error) {
	if err := validate.Struct(req); err != nil {
		return nil, "", apperrors.ValidationError("invalid export request", err)
	}

	format := ExportFormat(req.Format)
	if format == "" {
		format = FormatCSV
	}

	leads := s.enrichedLeads()
	if len(req.LeadIDs) > 0 {
		wanted := make(map[int]bool, len(req.LeadIDs))
		for _, id := range req.LeadIDs {
			wanted[id] = true
		}
		leads = keep(leads, func(l models.EnrichedLead) bool { return wanted[l.ID] })
	}

	switch format {
	case FormatCSV:
		data, err := exportToCSV(leads)
		return data, FormatCSV, err
	case FormatJSON:
		data, err := exportToJSON(leads)
		return data, FormatJSON, err
	default:
		return nil, "", apperrors.InvalidInput("unsupported export format: "+req.Format, nil)
	}
}

// ContentType returns the MIME type for a format.
func (f ExportFormat) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// exportCSVHeaders is the fixed column order of the CSV export.
var exportCSVHeaders = []string{
	"Company", "Contact Name", "Email", "Role", "Company Size",
	"Location", "Tech Stack", "Industry", "Funding Stage",
	"Lead Score", "Business Priority Score", "Sales Readiness",
	"Quality Recommendation", "LinkedIn URL", "Last Activity",
}

func exportToCSV(leads []models.EnrichedLead) ([]byte, error) {
	var output strings.Builder
	writer := csv.NewWriter(&output)

	if err := writer.Write(exportCSVHeaders); err != nil {
		return nil, err
	}

	for _, lead := range leads {
		row := []string{
			lead.Company,
			lead.ContactName,
			lead.Email,
			lead.Role,
			lead.CompanySize,
			lead.Location,
			strings.Join(lead.TechStack, ", "),
			lead.Industry,
			lead.FundingStage,
			strconv.Itoa(lead.Score),
			strconv.FormatFloat(lead.BusinessPriorityScore, 'f', -1, 64),
			string(lead.SalesReadiness.Stage),
			string(lead.QualityAssessment.Recommendation),
			lead.LinkedInURL,
			lead.LastActivity,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(output.String()), nil
}

func exportToJSON(leads []models.EnrichedLead) ([]byte, error) {
	payload := map[string]interface{}{
		"leads":       leads,
		"count":       len(leads),
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ExportFilename builds the attachment filename for an export at the given
// instant.
func ExportFilename(format ExportFormat, now time.Time) string {
	return "leads_export_" + now.Format("20060102_150405") + "." + string(format)
}
