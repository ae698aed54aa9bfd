package cvibes

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

const resultStatusSuccess = "success"

// AnalysisResponse is the raw per-batch envelope returned by the analysis
// service. Result keys come back in PascalCase and with unstable shapes,
// so each entry is decoded from a plain map.
type AnalysisResponse struct {
	TotalProcessed int              `json:"totalProcessed"`
	Results        []AnalysisResult `json:"results"`
}

type AnalysisResult struct {
	Index  int            `json:"index"`
	Status string         `json:"status"`
	Result map[string]any `json:"result"`
}

// rawCandidate is the service-side shape of one parsed CV. OtherDetails is
// left untyped here: the service returns either a bare string or an object.
type rawCandidate struct {
	Name               string
	ContactInformation rawContact
	Summary            string
	Education          []Education
	WorkExperience     []WorkExperience
	Skills             []string
	Certifications     []string
	Languages          []Language
	Projects           []Project
	Achievements       []string
	OtherDetails       any
}

type rawContact struct {
	Email    string
	Phone    string
	Address  string
	LinkedIn string
	Behance  string
}

// Normalize converts the raw envelope into canonical candidate records.
// Entries with an error status or an empty name are dropped silently; the
// second return value reports how many were dropped. Order of the surviving
// entries is preserved. Every emitted record gets a fresh id and the
// completed status.
func Normalize(resp *AnalysisResponse) (*Candidates, int, error) {
	if resp == nil {
		return &Candidates{}, 0, nil
	}

	candidates := &Candidates{Items: make([]*Candidate, 0, len(resp.Results))}
	dropped := 0

	for _, entry := range resp.Results {
		if entry.Status != resultStatusSuccess {
			dropped++
			continue
		}

		var raw rawCandidate
		if err := mapstructure.Decode(entry.Result, &raw); err != nil {
			return nil, 0, fmt.Errorf("decode analysis result %d: %w", entry.Index, err)
		}

		if raw.Name == "" {
			dropped++
			continue
		}

		candidates.Items = append(candidates.Items, normalizeCandidate(&raw))
	}

	return candidates, dropped, nil
}

func normalizeCandidate(raw *rawCandidate) *Candidate {
	return &Candidate{
		// The id is never derived from the entry index: records must stay
		// addressable independent of request ordering.
		ID:   uuid.NewString(),
		Name: raw.Name,
		Contact: ContactInformation{
			Email:    raw.ContactInformation.Email,
			Phone:    raw.ContactInformation.Phone,
			Address:  raw.ContactInformation.Address,
			LinkedIn: raw.ContactInformation.LinkedIn,
			Behance:  raw.ContactInformation.Behance,
		},
		Summary:        raw.Summary,
		Education:      emptyIfNil(raw.Education),
		WorkExperience: emptyIfNil(raw.WorkExperience),
		Skills:         emptyIfNil(raw.Skills),
		Certifications: emptyIfNil(raw.Certifications),
		Languages:      emptyIfNil(raw.Languages),
		Projects:       emptyIfNil(raw.Projects),
		Achievements:   emptyIfNil(raw.Achievements),
		OtherDetails:   normalizeOtherDetails(raw.OtherDetails),
		Status:         StatusCompleted,
	}
}

// normalizeOtherDetails resolves the string-or-object union into the tagged
// variant. A bare string passes through as-is; object sub-fields pass
// through untouched. Anything else is treated as absent.
func normalizeOtherDetails(raw any) OtherDetails {
	switch v := raw.(type) {
	case string:
		return OtherDetails{Text: v}
	case map[string]any:
		var info PersonalInfo
		if err := mapstructure.Decode(v, &info); err != nil {
			return OtherDetails{}
		}
		return OtherDetails{Info: &info}
	default:
		return OtherDetails{}
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
