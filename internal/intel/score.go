package intel

import (
	"strings"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// CompositeScore produces the final 0-100 ranking integer for a lead whose
// business priority score has already been computed. The base is the
// engagement score (50 when the field is absent) plus role, company-size,
// funding-stage, and email-validity bonuses, plus a scaled fraction of the
// priority score, capped at 100.
func (e *Engine) CompositeScore(lead models.Lead, businessPriority float64) int {
	score := lead.Engagement(50)

	// Role bonus: ordered scan, first keyword found in the role title wins.
	role := strings.ToLower(lead.Role)
	for _, rb := range compositeRoleBonuses {
		if strings.Contains(role, strings.ToLower(rb.Keyword)) {
			score += rb.Points
			break
		}
	}

	score += compositeSizeBonuses[lead.CompanySize]
	score += compositeFundingBonuses[lead.FundingStage]

	if lead.EmailValid {
		score += 10
	}

	// Business priority bonus, up to 20 points. Integer truncation, not
	// rounding.
	score += int(businessPriority / 100 * 20)

	if score > 100 {
		score = 100
	}
	return score
}
