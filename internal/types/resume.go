// Package types provides type definitions for structured data shared across the jobmatch pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Language is a detected document language.
type Language string

// Supported languages. Anything the detector cannot place lands on LanguageUnknown.
const (
	LanguageEN      Language = "en"
	LanguageRU      Language = "ru"
	LanguageUnknown Language = "unknown"
)

// Contact holds contact information recovered from a resume.
// All fields are optional; absent values are empty strings.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is a single work-experience block.
// RawText keeps the original unsegmented block so extraction passes can be
// re-run without information loss.
type ExperienceEntry struct {
	Title   string   `json:"title,omitempty"`
	Company string   `json:"company,omitempty"`
	Dates   string   `json:"dates,omitempty"` // free-form, not a parsed range
	Bullets []string `json:"bullets,omitempty"`
	RawText string   `json:"raw_text"`
}

// EducationEntry is a single education block.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Details     string `json:"details,omitempty"`
}

// Resume is the structured representation of a resume document.
// RawText is always non-empty and is the single source every other field is
// derived from. Skills are trimmed and deduplicated case-insensitively,
// preserving first occurrence order and casing.
type Resume struct {
	Contact    Contact           `json:"contact"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Language   Language          `json:"language"`
	RawText    string            `json:"raw_text"`
}

// Clone returns a deep copy of the resume. Mutating the copy's slices,
// including per-entry Bullets, never writes through to the receiver.
func (r *Resume) Clone() Resume {
	out := *r
	if r.Experience != nil {
		out.Experience = make([]ExperienceEntry, len(r.Experience))
		for i, entry := range r.Experience {
			out.Experience[i] = entry
			if entry.Bullets != nil {
				out.Experience[i].Bullets = append([]string(nil), entry.Bullets...)
			}
		}
	}
	if r.Skills != nil {
		out.Skills = append([]string(nil), r.Skills...)
	}
	if r.Education != nil {
		out.Education = append([]EducationEntry(nil), r.Education...)
	}
	return out
}

// HasSection reports whether the named section carries any content.
// Recognized names: summary, experience, skills, education.
func (r *Resume) HasSection(name string) bool {
	switch name {
	case "summary":
		return r.Summary != ""
	case "experience":
		return len(r.Experience) > 0
	case "skills":
		return len(r.Skills) > 0
	case "education":
		return len(r.Education) > 0
	default:
		return false
	}
}
