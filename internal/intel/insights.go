package intel

import (
	"strings"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// GenerateInsights derives qualitative sales angles for a lead: talking
// points from the role, pain points from the industry, a value-proposition
// focus from the tech stack, and a competitive angle from company size.
// Unknown inputs fall through to empty lists or default messages.
func (e *Engine) GenerateInsights(lead models.Lead) models.SalesInsights {
	insights := models.SalesInsights{
		KeyTalkingPoints:    []string{},
		PotentialPainPoints: []string{},
	}

	// Industry pain points, exact-name lookup
	if points, ok := industryPainPoints[lead.Industry]; ok {
		insights.PotentialPainPoints = append(insights.PotentialPainPoints, points...)
	}

	// Role talking points, first keyword match wins
	role := strings.ToLower(lead.Role)
	for _, rtp := range roleTalkingPointsTable {
		if strings.Contains(role, strings.ToLower(rtp.Keyword)) {
			insights.KeyTalkingPoints = append(insights.KeyTalkingPoints, rtp.Points...)
			break
		}
	}

	// Value proposition by tech-stack category: cloud beats frontend beats
	// backend. Only the first matching category is reported.
	switch {
	case containsAny(lead.TechStack, cloudPlatforms):
		insights.ValuePropositionFocus = valuePropCloud
	case containsAny(lead.TechStack, frontendFrameworks):
		insights.ValuePropositionFocus = valuePropFrontend
	case containsAny(lead.TechStack, backendLanguages):
		insights.ValuePropositionFocus = valuePropBackend
	default:
		insights.ValuePropositionFocus = valuePropDefault
	}

	// Competitive angle by company-size tier; anything outside the first two
	// tiers, including an unset size, gets the market-leadership message.
	switch {
	case smallCompanySizes[lead.CompanySize]:
		insights.CompetitiveAngle = angleGrowth
	case idealCompanySizes[lead.CompanySize]:
		insights.CompetitiveAngle = angleEnterprise
	default:
		insights.CompetitiveAngle = angleLeadership
	}

	return insights
}

// containsAny reports whether any member of set appears in techs.
func containsAny(techs []string, set []string) bool {
	for _, tech := range techs {
		for _, want := range set {
			if tech == want {
				return true
			}
		}
	}
	return false
}
