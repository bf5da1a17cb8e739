package content

import (
	"encoding/json"
	"fmt"
)

// Profile is the institution profile text shown on the home page.
type Profile struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	About   string `json:"about"`
	Vision  string `json:"vision,omitempty"`
	Mission string `json:"mission,omitempty"`
}

// Slide is one entry of the home hero carousel.
type Slide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
}

// Testimonial is a quote shown on the home page.
type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Quote string `json:"quote"`
}

// Marketing bundles the static marketing content sourced from configuration.
type Marketing struct {
	Profile      Profile       `json:"profile"`
	Slides       []Slide       `json:"slides"`
	Testimonials []Testimonial `json:"testimonials"`
}

// DecodeMarketing parses the three configuration blobs into a Marketing
// bundle. Misconfiguration is a typed, reportable error, not a silently
// swallowed parse failure. Empty blobs decode to empty values.
func DecodeMarketing(profileJSON, slidesJSON, testimonialsJSON string) (*Marketing, error) {
	m := &Marketing{}

	if profileJSON != "" {
		if err := json.Unmarshal([]byte(profileJSON), &m.Profile); err != nil {
			return nil, fmt.Errorf("invalid profile config: %w", err)
		}
	}
	if slidesJSON != "" {
		if err := json.Unmarshal([]byte(slidesJSON), &m.Slides); err != nil {
			return nil, fmt.Errorf("invalid slides config: %w", err)
		}
	}
	if testimonialsJSON != "" {
		if err := json.Unmarshal([]byte(testimonialsJSON), &m.Testimonials); err != nil {
			return nil, fmt.Errorf("invalid testimonials config: %w", err)
		}
	}

	return m, nil
}
