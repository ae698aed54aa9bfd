package render

import (
	"testing"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemesAreDistinct(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	require.NotNil(t, light)
	require.NotNil(t, dark)
	assert.NotEqual(t, light.Foreground, dark.Foreground)
	assert.NotEqual(t, light.Primary, dark.Primary)
}

func TestNewStylesNilThemeFallsBack(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestListShowsWorkEntryCountAsYears(t *testing.T) {
	r := New(false)

	out := r.List([]*cvibes.Candidate{{
		ID:   "id-1",
		Name: "Jane Doe",
		WorkExperience: []cvibes.WorkExperience{
			{JobTitle: "Engineer"},
			{JobTitle: "Senior Engineer"},
			{JobTitle: "Lead"},
		},
		Skills: []string{"go", "python", "sql", "docker"},
		Status: cvibes.StatusCompleted,
	}})

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "Exp. (yrs)")
	// Only the first three skills are listed, the rest collapse to a count.
	assert.Contains(t, out, "go, python, sql +1")
	assert.NotContains(t, out, "docker")
}

func TestListEmpty(t *testing.T) {
	out := New(true).List(nil)

	assert.Contains(t, out, "no candidates to show")
}

func TestDetailsResolvesOtherDetailsText(t *testing.T) {
	out := New(false).Details(&cvibes.Candidate{
		Name:         "Jane Doe",
		OtherDetails: cvibes.OtherDetails{Text: "available from June"},
	})

	assert.Contains(t, out, "Other Details")
	assert.Contains(t, out, "available from June")
}

func TestDetailsResolvesOtherDetailsInfo(t *testing.T) {
	out := New(false).Details(&cvibes.Candidate{
		Name: "Jane Doe",
		OtherDetails: cvibes.OtherDetails{Info: &cvibes.PersonalInfo{
			Birthdate:     "1995-04-02",
			MaritalStatus: "single",
		}},
	})

	assert.Contains(t, out, "Birthdate")
	assert.Contains(t, out, "1995-04-02")
	assert.Contains(t, out, "Marital Status")
	assert.NotContains(t, out, "Passport")
}

func TestDetailsOmitsEmptySections(t *testing.T) {
	out := New(false).Details(&cvibes.Candidate{Name: "Jane Doe"})

	assert.NotContains(t, out, "Certifications")
	assert.NotContains(t, out, "Projects")
	assert.NotContains(t, out, "Achievements")
	assert.NotContains(t, out, "Other Details")
}

func TestNotFound(t *testing.T) {
	out := New(false).NotFound("missing-id")

	assert.Contains(t, out, "Candidate not found")
	assert.Contains(t, out, "missing-id")
	assert.Contains(t, out, "back to the list")
}
