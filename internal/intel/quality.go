package intel

import (
	"strings"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// Quality thresholds used by the actionability sub-score.
const (
	minEngagementScore  = 50
	minDataCompleteness = 0.6
	minContactAccuracy  = 0.7
)

// requiredFields are the fields counted toward data completeness.
func requiredFields(lead models.Lead) []string {
	return []string{lead.Company, lead.ContactName, lead.Email, lead.Role}
}

// AssessQuality scores a lead on four equal-weighted dimensions, each in
// [0,1], and maps the overall score to a pursue/nurture/discard verdict
// (>= 0.7 pursue, >= 0.5 nurture, else discard).
func (e *Engine) AssessQuality(lead models.Lead) models.QualityAssessment {
	quality := models.QualityAssessment{}

	// Data completeness (25%)
	fields := requiredFields(lead)
	complete := 0
	for _, field := range fields {
		if field != "" {
			complete++
		}
	}
	quality.DataCompleteness = float64(complete) / float64(len(fields))

	// Contact accuracy (25%)
	accuracy := 0.0
	if lead.EmailValid {
		accuracy += 0.5
	}
	if lead.LinkedInURL != "" {
		accuracy += 0.3
	}
	if validContactName(lead.ContactName) {
		accuracy += 0.2
	}
	quality.ContactAccuracy = accuracy

	// Strategic fit (25%)
	quality.StrategicFit = e.BusinessPriorityScore(lead) / 100.0

	// Actionability (25%)
	action := 0.0
	if lead.Engagement(0) >= minEngagementScore {
		action += 0.4
	}
	if quality.DataCompleteness >= minDataCompleteness {
		action += 0.3
	}
	if quality.ContactAccuracy >= minContactAccuracy {
		action += 0.3
	}
	quality.Actionability = action

	quality.OverallScore = quality.DataCompleteness*0.25 +
		quality.ContactAccuracy*0.25 +
		quality.StrategicFit*0.25 +
		quality.Actionability*0.25

	switch {
	case quality.OverallScore >= 0.7:
		quality.Recommendation = models.RecommendPursue
	case quality.OverallScore >= 0.5:
		quality.Recommendation = models.RecommendNurture
	default:
		quality.Recommendation = models.RecommendDiscard
	}

	return quality
}

// FilterHighQuality returns only the leads whose assessment says pursue,
// each annotated with that assessment. Input order is preserved.
func (e *Engine) FilterHighQuality(leads []models.EnrichedLead) []models.EnrichedLead {
	filtered := make([]models.EnrichedLead, 0, len(leads))
	for _, lead := range leads {
		quality := e.AssessQuality(lead.Lead)
		if quality.Recommendation == models.RecommendPursue {
			lead.QualityAssessment = quality
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

// validContactName requires at least two whitespace-separated parts, every
// part longer than one character.
func validContactName(name string) bool {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if len(part) <= 1 {
			return false
		}
	}
	return true
}
