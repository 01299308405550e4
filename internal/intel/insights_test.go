package intel

import (
	"reflect"
	"testing"

	"github.com/leadscope/lead-intel-api/internal/models"
)

func TestGenerateInsights(t *testing.T) {
	engine := newTestEngine()

	t.Run("Focus industry lead gets full insights", func(t *testing.T) {
		lead := models.Lead{
			Industry:    "FinTech",
			Role:        "CTO",
			CompanySize: "11-50",
			TechStack:   []string{"Python", "React", "AWS"},
		}
		got := engine.GenerateInsights(lead)

		wantPain := []string{"Regulatory compliance", "Security requirements", "Payment processing"}
		if !reflect.DeepEqual(got.PotentialPainPoints, wantPain) {
			t.Errorf("Expected pain points %v, got %v", wantPain, got.PotentialPainPoints)
		}
		wantTalking := []string{"Technical scalability", "Team productivity", "Infrastructure costs"}
		if !reflect.DeepEqual(got.KeyTalkingPoints, wantTalking) {
			t.Errorf("Expected talking points %v, got %v", wantTalking, got.KeyTalkingPoints)
		}
		// Cloud outranks frontend and backend when all three are present.
		if got.ValuePropositionFocus != valuePropCloud {
			t.Errorf("Expected cloud value proposition, got %q", got.ValuePropositionFocus)
		}
		if got.CompetitiveAngle != angleGrowth {
			t.Errorf("Expected growth angle for small company, got %q", got.CompetitiveAngle)
		}
	})

	t.Run("Unknown industry and role yield empty lists", func(t *testing.T) {
		got := engine.GenerateInsights(models.Lead{Industry: "Logistics", Role: "Analyst"})
		if len(got.PotentialPainPoints) != 0 {
			t.Errorf("Expected no pain points, got %v", got.PotentialPainPoints)
		}
		if len(got.KeyTalkingPoints) != 0 {
			t.Errorf("Expected no talking points, got %v", got.KeyTalkingPoints)
		}
		if got.PotentialPainPoints == nil || got.KeyTalkingPoints == nil {
			t.Error("Expected empty slices, not nil")
		}
	})

	t.Run("Role keyword match is case-insensitive and first-match", func(t *testing.T) {
		got := engine.GenerateInsights(models.Lead{Role: "vp of engineering"})
		wantTalking := []string{"Team performance", "Budget management", "Strategic execution"}
		if !reflect.DeepEqual(got.KeyTalkingPoints, wantTalking) {
			t.Errorf("Expected VP talking points, got %v", got.KeyTalkingPoints)
		}

		// Lowercase "director" contains "cto", so Director titles take the CTO
		// talking points under the ordered scan.
		got = engine.GenerateInsights(models.Lead{Role: "Director of Platform"})
		wantTalking = []string{"Technical scalability", "Team productivity", "Infrastructure costs"}
		if !reflect.DeepEqual(got.KeyTalkingPoints, wantTalking) {
			t.Errorf("Expected CTO talking points for a Director title, got %v", got.KeyTalkingPoints)
		}
	})

	t.Run("Value proposition tiers", func(t *testing.T) {
		testCases := []struct {
			name     string
			stack    []string
			expected string
		}{
			{"Frontend without cloud", []string{"Vue.js", "Java"}, valuePropFrontend},
			{"Backend only", []string{"Java"}, valuePropBackend},
			{"Nothing recognized", []string{"COBOL"}, valuePropDefault},
			{"Empty stack", nil, valuePropDefault},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got := engine.GenerateInsights(models.Lead{TechStack: tc.stack})
				if got.ValuePropositionFocus != tc.expected {
					t.Errorf("Expected %q, got %q", tc.expected, got.ValuePropositionFocus)
				}
			})
		}
	})

	t.Run("Competitive angle tiers", func(t *testing.T) {
		testCases := []struct {
			size     string
			expected string
		}{
			{"11-50", angleGrowth},
			{"51-200", angleGrowth},
			{"201-500", angleEnterprise},
			{"501-1000", angleEnterprise},
			{"1000+", angleLeadership},
			{"", angleLeadership},
		}
		for _, tc := range testCases {
			got := engine.GenerateInsights(models.Lead{CompanySize: tc.size})
			if got.CompetitiveAngle != tc.expected {
				t.Errorf("Size %q: expected angle %q, got %q", tc.size, tc.expected, got.CompetitiveAngle)
			}
		}
	})
}
