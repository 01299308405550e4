// Package catalog provides the static lead catalog the service layer reads
// from. Records are defined once at startup and treated as read-only.
package catalog

import (
	"fmt"

	apperrors "github.com/leadscope/lead-intel-api/internal/errors"
	"github.com/leadscope/lead-intel-api/internal/models"
)

// Catalog is an in-memory source of lead records.
type Catalog struct {
	leads []models.Lead
}

// New creates a catalog seeded with the demo lead data.
func New() *Catalog {
	return &Catalog{leads: seedLeads()}
}

// Leads returns a copy of all lead records.
func (c *Catalog) Leads() []models.Lead {
	out := make([]models.Lead, len(c.leads))
	copy(out, c.leads)
	return out
}

// GetByID returns the lead with the given id, or a NOT_FOUND error. The
// error is how callers distinguish a missing lead from a zero-valued one.
func (c *Catalog) GetByID(id int) (models.Lead, error) {
	for _, lead := range c.leads {
		if lead.ID == id {
			return lead, nil
		}
	}
	return models.Lead{}, apperrors.NotFound(fmt.Sprintf("lead %d not found", id), nil)
}

func intPtr(v int) *int { return &v }

func seedLeads() []models.Lead {
	return []models.Lead{
		{
			ID:              1,
			Company:         "TechCorp Solutions",
			ContactName:     "Sarah Johnson",
			Email:           "sarah.johnson@techcorp.com",
			Role:            "CTO",
			CompanySize:     "201-500",
			Location:        "San Francisco, CA",
			TechStack:       []string{"React", "Node.js", "AWS", "PostgreSQL"},
			Industry:        "SaaS",
			FundingStage:    "Series B",
			EngagementScore: intPtr(85),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/sarahjohnson",
			LastActivity:    "2025-10-05",
		},
		{
			ID:              2,
			Company:         "DataFlow Analytics",
			ContactName:     "Michael Chen",
			Email:           "m.chen@dataflow.io",
			Role:            "VP Engineering",
			CompanySize:     "51-200",
			Location:        "Austin, TX",
			TechStack:       []string{"Python", "Django", "GCP", "MongoDB"},
			Industry:        "Analytics",
			FundingStage:    "Series A",
			EngagementScore: intPtr(72),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/michaelchen",
			LastActivity:    "2025-10-04",
		},
		{
			ID:              3,
			Company:         "CloudScale Systems",
			ContactName:     "Emily Rodriguez",
			Email:           "emily.r@cloudscale.com",
			Role:            "Head of Product",
			CompanySize:     "501-1000",
			Location:        "New York, NY",
			TechStack:       []string{"Vue.js", "Ruby on Rails", "AWS", "Redis"},
			Industry:        "Cloud Infrastructure",
			FundingStage:    "Series C",
			EngagementScore: intPtr(91),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/emilyrodriguez",
			LastActivity:    "2025-10-06",
		},
		{
			ID:              4,
			Company:         "FinTech Innovations",
			ContactName:     "David Park",
			Email:           "david.park@fintech-inn.com",
			Role:            "Director of Engineering",
			CompanySize:     "201-500",
			Location:        "Boston, MA",
			TechStack:       []string{"React", "Java", "Azure", "MySQL"},
			Industry:        "FinTech",
			FundingStage:    "Series B",
			EngagementScore: intPtr(78),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/davidpark",
			LastActivity:    "2025-10-03",
		},
		{
			ID:              5,
			Company:         "GreenTech Energy",
			ContactName:     "Lisa Thompson",
			Email:           "l.thompson@greentech.co",
			Role:            "CTO",
			CompanySize:     "101-200",
			Location:        "Seattle, WA",
			TechStack:       []string{"Angular", "Python", "AWS", "PostgreSQL"},
			Industry:        "CleanTech",
			FundingStage:    "Seed",
			EngagementScore: intPtr(65),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/lisathompson",
			LastActivity:    "2025-10-02",
		},
		{
			ID:              6,
			Company:         "HealthCare Connect",
			ContactName:     "Robert Williams",
			Email:           "r.williams@healthcare-connect.com",
			Role:            "VP Technology",
			CompanySize:     "51-200",
			Location:        "Chicago, IL",
			TechStack:       []string{"React", "Node.js", "Azure", "MongoDB"},
			Industry:        "HealthTech",
			FundingStage:    "Series A",
			EngagementScore: intPtr(88),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/robertwilliams",
			LastActivity:    "2025-10-05",
		},
		{
			ID:              7,
			Company:         "AI Robotics Lab",
			ContactName:     "Jennifer Kim",
			Email:           "jennifer@airobotics.ai",
			Role:            "Head of AI",
			CompanySize:     "11-50",
			Location:        "Palo Alto, CA",
			TechStack:       []string{"Python", "TensorFlow", "GCP", "PostgreSQL"},
			Industry:        "AI/ML",
			FundingStage:    "Seed",
			EngagementScore: intPtr(95),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/jenniferkim",
			LastActivity:    "2025-10-07",
		},
		{
			ID:              8,
			Company:         "E-Commerce Plus",
			ContactName:     "Mark Anderson",
			Email:           "anderson@ecommerceplus.com",
			Role:            "Director of Technology",
			CompanySize:     "201-500",
			Location:        "Los Angeles, CA",
			TechStack:       []string{"Vue.js", "PHP", "AWS", "MySQL"},
			Industry:        "E-Commerce",
			FundingStage:    "Series B",
			EngagementScore: intPtr(70),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/markanderson",
			LastActivity:    "2025-10-01",
		},
		{
			ID:              9,
			Company:         "SecureNet Solutions",
			ContactName:     "Amanda Martinez",
			Email:           "a.martinez@securenet.io",
			Role:            "Chief Security Officer",
			CompanySize:     "101-200",
			Location:        "Denver, CO",
			TechStack:       []string{"React", "Go", "AWS", "Redis"},
			Industry:        "Cybersecurity",
			FundingStage:    "Series A",
			EngagementScore: intPtr(82),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/amandamartinez",
			LastActivity:    "2025-10-04",
		},
		{
			ID:              10,
			Company:         "EdTech Platform",
			ContactName:     "James Wilson",
			Email:           "jwilson@edtechplatform.com",
			Role:            "VP Product",
			CompanySize:     "51-200",
			Location:        "Portland, OR",
			TechStack:       []string{"React", "Node.js", "GCP", "MongoDB"},
			Industry:        "EdTech",
			FundingStage:    "Seed",
			EngagementScore: intPtr(68),
			EmailValid:      true,
			LinkedInURL:     "linkedin.com/in/jameswilson",
			LastActivity:    "2025-09-30",
		},
	}
}
