package contacts

import (
	"strings"
	"time"

	"github.com/Robertofsouzas/newsite/internal/validation"
)

// Contact is a lead captured through the public contact form. Records
// are append-only: there is no update or delete.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContact is the accepted form input.
type NewContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// services are the interest categories offered on the contact form.
var services = map[string]bool{
	"powerbi":     true,
	"n8n":         true,
	"ia":          true,
	"consultoria": true,
}

func (in NewContact) Validate() error {
	verr := &validation.Error{}

	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		verr.Add("email", "email is required")
	} else if !validation.IsEmail(in.Email) {
		verr.Add("email", "email must be a valid address")
	}
	if strings.TrimSpace(in.Service) == "" {
		verr.Add("service", "service is required")
	} else if !services[in.Service] {
		verr.Add("service", "service must be one of: powerbi, n8n, ia, consultoria")
	}
	if strings.TrimSpace(in.Message) == "" {
		verr.Add("message", "message is required")
	}

	return verr.OrNil()
}
