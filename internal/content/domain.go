package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Skill is one entry in the ordered skill list. Duplicate names are
// allowed; order is display order.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PortfolioData is the versioned content aggregate behind GET/PUT /content.
// Projects, gallery items and messages live in their own tables; legacy
// blob versions that still embed them are ignored on read.
type PortfolioData struct {
	Name          string       `json:"name"`
	Tagline       string       `json:"tagline"`
	ProfileImage  string       `json:"profileImage"`
	About         string       `json:"about"`
	University    string       `json:"university"`
	DeveloperInfo string       `json:"developerInfo"`
	ResumeURL     string       `json:"resumeUrl"`
	Email         string       `json:"email"`
	GitHub        string       `json:"github"`
	Skills        []Skill      `json:"skills"`
	SocialLinks   []SocialLink `json:"socialLinks"`
}

// Partial is a PUT /content payload: top-level keys that should replace
// the current value wholesale. Absent keys keep their prior value.
type Partial map[string]json.RawMessage

// Merge overlays partial onto current. Each provided key replaces the
// prior value in full (shallow merge); the result is validated and skill
// levels are clamped to 0-100.
func Merge(current PortfolioData, partial Partial) (PortfolioData, error) {
	raw, err := json.Marshal(current)
	if err != nil {
		return PortfolioData{}, fmt.Errorf("marshal current: %w", err)
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return PortfolioData{}, fmt.Errorf("decode current: %w", err)
	}

	for k, v := range partial {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return PortfolioData{}, fmt.Errorf("marshal merged: %w", err)
	}

	var out PortfolioData
	if err := json.Unmarshal(merged, &out); err != nil {
		return PortfolioData{}, &ValidationError{Reason: "invalid content payload: " + err.Error()}
	}

	out.clamp()
	if err := out.Validate(); err != nil {
		return PortfolioData{}, err
	}
	return out, nil
}

// clamp forces skill levels into 0-100. The admin UI does this client-side
// but the server cannot trust it.
func (p *PortfolioData) clamp() {
	for i := range p.Skills {
		if p.Skills[i].Level < 0 {
			p.Skills[i].Level = 0
		}
		if p.Skills[i].Level > 100 {
			p.Skills[i].Level = 100
		}
	}
}

// ValidationError marks payload problems the caller should see as a 400
// rather than a backend failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func isValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the fields the public page cannot render without.
func (p *PortfolioData) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if strings.TrimSpace(p.Tagline) == "" {
		return &ValidationError{Reason: "tagline is required"}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &ValidationError{Reason: "email is required"}
	}
	return nil
}

// DefaultData is the seed aggregate persisted as version 1 on first run.
func DefaultData() PortfolioData {
	return PortfolioData{
		Name:          "John Doe",
		Tagline:       "Computer Science Student at Universitas Siliwangi",
		ProfileImage:  "/placeholder.svg?height=400&width=400",
		About:         "I'm a passionate Computer Science student with a focus on web development and UI/UX design. I love creating beautiful, functional websites and applications that solve real-world problems.",
		University:    "Universitas Siliwangi, Computer Science",
		DeveloperInfo: "Full-stack Developer specializing in React and Node.js",
		ResumeURL:     "#",
		Email:         "hello@example.com",
		GitHub:        "github.com/johndoe",
		Skills: []Skill{
			{Name: "HTML/CSS", Level: 90},
			{Name: "JavaScript", Level: 85},
			{Name: "React", Level: 80},
			{Name: "Node.js", Level: 75},
			{Name: "UI/UX Design", Level: 70},
			{Name: "Python", Level: 65},
			{Name: "Database", Level: 60},
			{Name: "Mobile Dev", Level: 50},
		},
		SocialLinks: []SocialLink{
			{Name: "GitHub", URL: "#"},
			{Name: "LinkedIn", URL: "#"},
			{Name: "Twitter", URL: "#"},
			{Name: "Instagram", URL: "#"},
		},
	}
}
