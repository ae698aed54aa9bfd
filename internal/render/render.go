package render

import (
	"fmt"
	"strings"

	"github.com/ArifBabayev05/cvibes/internal/cvibes"
)

const maxListedSkills = 3

// Renderer draws views with the styles of one theme. Build a fresh one
// whenever the dark-mode flag flips.
type Renderer struct {
	styles *Styles
}

func New(darkMode bool) *Renderer {
	theme := LightTheme()
	if darkMode {
		theme = DarkTheme()
	}

	return &Renderer{styles: NewStyles(theme)}
}

// List renders the candidate table: name, email, leading skills, the
// work-entry count labelled as years, match percentage and status.
func (r *Renderer) List(candidates []*cvibes.Candidate) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Candidates"))
	b.WriteString("\n")
	b.WriteString(r.styles.Header.Render(fmt.Sprintf(
		"%-36s  %-22s  %-28s  %-30s  %-10s  %-8s  %s",
		"ID", "Name", "Email", "Skills", "Exp. (yrs)", "Match %", "Status",
	)))
	b.WriteString("\n")

	if len(candidates) == 0 {
		b.WriteString(r.styles.Muted.Render("no candidates to show"))
		b.WriteString("\n")
		return b.String()
	}

	for _, candidate := range candidates {
		b.WriteString(fmt.Sprintf(
			"%-36s  %-22s  %-28s  %-30s  %-10d  %-8.0f  %s\n",
			candidate.ID,
			r.styles.Normal.Render(candidate.Name),
			r.styles.Muted.Render(candidate.Contact.Email),
			r.skillSummary(candidate.Skills),
			candidate.ExperienceYears(),
			candidate.MatchPercentage,
			r.statusBadge(candidate.Status),
		))
	}

	return b.String()
}

// Details renders the full candidate view, section by section. Optional
// sections are omitted when empty.
func (r *Renderer) Details(c *cvibes.Candidate) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(c.Name))
	b.WriteString("\n")
	b.WriteString(r.styles.Muted.Render(c.Contact.Email))
	b.WriteString("\n\n")

	b.WriteString(r.section("Contact Information"))
	b.WriteString(r.field("Email", c.Contact.Email))
	b.WriteString(r.field("Phone", c.Contact.Phone))
	if c.Contact.Address != "" {
		b.WriteString(r.field("Address", c.Contact.Address))
	}
	if c.Contact.LinkedIn != "" {
		b.WriteString(r.field("LinkedIn", c.Contact.LinkedIn))
	}
	if c.Contact.Behance != "" {
		b.WriteString(r.field("Behance", c.Contact.Behance))
	}

	b.WriteString(r.section("Summary"))
	b.WriteString(r.styles.Normal.Render(c.Summary))
	b.WriteString("\n")

	b.WriteString(r.section("Skills"))
	for _, skill := range c.Skills {
		b.WriteString(r.styles.Skill.Render(skill))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	b.WriteString(r.section("Work Experience"))
	for _, exp := range c.WorkExperience {
		b.WriteString(r.styles.Normal.Render(exp.JobTitle))
		b.WriteString("\n")
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("%s / %s", exp.Company, exp.Duration)))
		b.WriteString("\n")
		b.WriteString(r.styles.Normal.Render(exp.Description))
		b.WriteString("\n")
	}

	b.WriteString(r.section("Education"))
	for _, edu := range c.Education {
		b.WriteString(r.styles.Normal.Render(edu.Institution))
		b.WriteString("\n")
		b.WriteString(r.styles.Muted.Render(fmt.Sprintf("%s in %s / %s", edu.Degree, edu.FieldOfStudy, edu.Dates)))
		b.WriteString("\n")
	}

	if len(c.Certifications) > 0 {
		b.WriteString(r.section("Certifications"))
		for _, cert := range c.Certifications {
			b.WriteString(r.styles.Normal.Render("- " + cert))
			b.WriteString("\n")
		}
	}

	if len(c.Languages) > 0 {
		b.WriteString(r.section("Languages"))
		for _, lang := range c.Languages {
			b.WriteString(r.field(lang.Language, lang.Proficiency))
		}
	}

	if len(c.Projects) > 0 {
		b.WriteString(r.section("Projects"))
		for _, project := range c.Projects {
			b.WriteString(r.styles.Normal.Render(project.Name))
			b.WriteString("\n")
			b.WriteString(r.styles.Muted.Render(project.Description))
			b.WriteString("\n")
		}
	}

	if len(c.Achievements) > 0 {
		b.WriteString(r.section("Achievements"))
		for _, achievement := range c.Achievements {
			b.WriteString(r.styles.Normal.Render("- " + achievement))
			b.WriteString("\n")
		}
	}

	if details := r.otherDetails(c.OtherDetails); details != "" {
		b.WriteString(r.section("Other Details"))
		b.WriteString(details)
	}

	return b.String()
}

// NotFound renders the distinguished not-found state for a detail lookup.
func (r *Renderer) NotFound(id string) string {
	var b strings.Builder
	b.WriteString(r.styles.NotFound.Render("Candidate not found"))
	b.WriteString("\n")
	b.WriteString(r.styles.Muted.Render(fmt.Sprintf("no candidate with id %q; going back to the list", id)))
	b.WriteString("\n")
	return b.String()
}

// otherDetails resolves the string-or-structured union at display time.
func (r *Renderer) otherDetails(d cvibes.OtherDetails) string {
	if d.Text != "" {
		return r.styles.Normal.Render(d.Text) + "\n"
	}

	if d.Info == nil {
		return ""
	}

	var b strings.Builder
	if d.Info.Birthdate != "" {
		b.WriteString(r.field("Birthdate", d.Info.Birthdate))
	}
	if d.Info.PassportNo != "" {
		b.WriteString(r.field("Passport No", d.Info.PassportNo))
	}
	if d.Info.MaritalStatus != "" {
		b.WriteString(r.field("Marital Status", d.Info.MaritalStatus))
	}
	return b.String()
}

func (r *Renderer) skillSummary(skills []string) string {
	shown := skills
	if len(shown) > maxListedSkills {
		shown = shown[:maxListedSkills]
	}

	summary := strings.Join(shown, ", ")
	if rest := len(skills) - len(shown); rest > 0 {
		summary = fmt.Sprintf("%s +%d", summary, rest)
	}

	return summary
}

func (r *Renderer) statusBadge(status string) string {
	switch status {
	case cvibes.StatusCompleted:
		return r.styles.Success.Render(status)
	case cvibes.StatusAnalyzing:
		return r.styles.Warning.Render(status)
	case cvibes.StatusError:
		return r.styles.Error.Render(status)
	default:
		return r.styles.Muted.Render(status)
	}
}

func (r *Renderer) section(title string) string {
	return "\n" + r.styles.Header.Render(title) + "\n"
}

func (r *Renderer) field(name, value string) string {
	return fmt.Sprintf("%s %s\n", r.styles.Muted.Render(name+":"), r.styles.Normal.Render(value))
}
