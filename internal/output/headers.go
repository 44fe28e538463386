// Package output builds the final resume document in plain text or
// markdown, with section headers in the resume's output language, plus a
// human-readable match report.
package output

import "github.com/erizov/jobmatch/internal/types"

// sectionHeaders maps an output language to its section titles. Unknown
// languages render with English headers.
var sectionHeaders = map[types.Language]map[string]string{
	types.LanguageEN: {
		"summary":    "Professional Summary",
		"experience": "Experience",
		"skills":     "Skills",
		"education":  "Education",
	},
	types.LanguageRU: {
		"summary":    "О себе",
		"experience": "Опыт работы",
		"skills":     "Навыки",
		"education":  "Образование",
	},
}

func headerFor(lang types.Language, section string) string {
	if headers, ok := sectionHeaders[lang]; ok {
		if header, ok := headers[section]; ok {
			return header
		}
	}
	return sectionHeaders[types.LanguageEN][section]
}
