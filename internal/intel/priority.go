package intel

import (
	"strings"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// BusinessPriorityScore measures a lead's strategic alignment with the target
// market on a 0-100 scale. Four additive terms: industry (max 30), company
// size (max 25), role seniority (max 25), and tech-stack compatibility
// (max 20). Missing fields contribute zero rather than erroring.
func (e *Engine) BusinessPriorityScore(lead models.Lead) float64 {
	score := 0.0

	// Industry alignment (30%)
	switch {
	case focusIndustries[lead.Industry]:
		score += 30
	case lead.Industry != "":
		score += 10 // Partial credit for other tech industries
	}

	// Company size targeting (25%)
	switch {
	case targetCompanySizes[lead.CompanySize]:
		if idealCompanySizes[lead.CompanySize] {
			score += 25 // Ideal targets
		} else {
			score += 20 // Good targets
		}
	case lead.CompanySize != "":
		score += 5
	}

	// Role seniority and relevance (25%). First keyword found in the role
	// title wins; list order breaks ties on overlapping keywords.
	role := strings.ToLower(lead.Role)
	for _, pr := range priorityRoles {
		if strings.Contains(role, strings.ToLower(pr.Keyword)) {
			if pr.DecisionMaker {
				score += 25
			} else {
				score += 20
			}
			break
		}
	}

	// Tech stack compatibility (20%)
	if len(lead.TechStack) > 0 {
		compatible := 0
		for _, tech := range lead.TechStack {
			if idealTechStack[tech] {
				compatible++
			}
		}
		score += float64(compatible) / float64(len(lead.TechStack)) * 20
	}

	// The four maxima already sum to 100; the cap is defensive.
	if score > 100 {
		score = 100
	}
	return score
}
