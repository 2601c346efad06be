package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
)

// SampleProjects seeds the in-memory backend so the public site has
// content during local development without a provisioned database.
func SampleProjects() []domain.Project {
	now := time.Now().UTC()

	mk := func(age time.Duration, p domain.Project) domain.Project {
		p.ID = uuid.NewString()
		p.Slug = domain.Slugify(p.Title)
		p.IsActive = true
		p.CreatedAt = now.Add(-age)
		p.UpdatedAt = p.CreatedAt
		return p
	}

	return []domain.Project{
		mk(72*time.Hour, domain.Project{
			Title:        "Sales Performance Dashboard",
			Description:  "Executive Power BI dashboard tracking revenue, margin and pipeline.",
			Type:         domain.TypeDashboard,
			Technologies: []string{"Power BI", "DAX", "SQL Server"},
			Featured:     true,
		}),
		mk(48*time.Hour, domain.Project{
			Title:        "Invoice Processing Automation",
			Description:  "N8N workflow that extracts, validates and posts supplier invoices.",
			Type:         domain.TypeAutomation,
			Technologies: []string{"N8N", "PostgreSQL"},
		}),
		mk(24*time.Hour, domain.Project{
			Title:        "Customer Support AI Agent",
			Description:  "Conversational agent answering first-line support questions.",
			Type:         domain.TypeAIAgent,
			Technologies: []string{"OpenAI", "N8N"},
			Featured:     true,
		}),
	}
}
