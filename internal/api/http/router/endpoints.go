package router

import "fmt"

// Endpoint describes one public API route.
type Endpoint struct {
	Method      string
	Path        string
	Description string
	// Listed endpoints are advertised in 404 responses.
	Listed bool
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%-4s %s", e.Method, e.Path)
}

var endpoints = []Endpoint{
	{"GET", "/api/health", "System status", true},
	{"GET", "/api/portfolio", "Complete profile", true},
	{"GET", "/api/skills", "Technical skills", true},
	{"GET", "/api/experience", "Work & projects", true},
	{"GET", "/api/certifications", "Certificates", true},
	{"POST", "/api/contact", "Contact form", true},
	{"GET", "/api/resume", "Resume info", true},
	{"POST", "/api/analytics/pageview", "Page view tracking", true},
	{"GET", "/api/messages", "Contact messages", false},
}

// Endpoints returns the full API route table.
func Endpoints() []Endpoint {
	return append([]Endpoint(nil), endpoints...)
}

// Listed returns the advertised routes formatted as "GET  /api/health".
func Listed() []string {
	var out []string
	for _, e := range endpoints {
		if e.Listed {
			out = append(out, e.String())
		}
	}
	return out
}
