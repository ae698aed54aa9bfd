package cvibes

import (
	"encoding/json"
	"os"
)

// Candidate statuses. The normalizer only ever emits completed records;
// the remaining values exist for rendering parity with the analysis API.
const (
	StatusPending   = "pending"
	StatusAnalyzing = "analyzing"
	StatusCompleted = "completed"
	StatusError     = "error"
)

type Candidates struct {
	Items []*Candidate
}

// Candidate is the canonical, store-resident record of one analyzed CV.
// Records are immutable once created: replacing a candidate means
// replacing the store entry.
type Candidate struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Contact         ContactInformation `json:"contactInformation"`
	Summary         string             `json:"summary"`
	Education       []Education        `json:"education"`
	WorkExperience  []WorkExperience   `json:"workExperience"`
	Skills          []string           `json:"skills"`
	Certifications  []string           `json:"certifications"`
	Languages       []Language         `json:"languages"`
	Projects        []Project          `json:"projects"`
	Achievements    []string           `json:"achievements"`
	OtherDetails    OtherDetails       `json:"otherDetails,omitempty"`
	MatchPercentage float64            `json:"matchPercentage,omitempty"`
	Status          string             `json:"status"`
}

type ContactInformation struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	Behance  string `json:"behance,omitempty"`
}

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	Dates        string `json:"dates"`
}

type WorkExperience struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OtherDetails is a tagged variant: the analysis API returns either a bare
// string or a structured object for this field. Exactly one side is set;
// only the detail renderer interprets it.
type OtherDetails struct {
	Text string        `json:"text,omitempty"`
	Info *PersonalInfo `json:"info,omitempty"`
}

type PersonalInfo struct {
	Birthdate     string `json:"birthdate,omitempty"`
	PassportNo    string `json:"passportNo,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
}

// IsZero reports whether the raw result carried no other details at all.
func (d OtherDetails) IsZero() bool {
	return d.Text == "" && d.Info == nil
}

// ExperienceYears is what the list view shows in the "years" column. It is
// the count of work-experience entries, not a time duration. The mismatch
// is carried over from the analysis UI on purpose.
func (c *Candidate) ExperienceYears() int {
	return len(c.WorkExperience)
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

func (c *Candidates) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		names = append(names, candidate.Name)
	}
	return names
}

func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}
