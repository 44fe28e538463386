package keywords

import (
	"math"
	"sync"
)

// referenceDocFreq approximates the document frequency of common resume and
// job-posting vocabulary across a generic corpus: the fraction of documents
// a term appears in. Generic words score close to 1.0 and are down-weighted;
// terms absent here fall back to within-document section frequency.
//
// The table is process-wide, read-only after initialization, and holds no
// resources beyond memory.
var (
	corpusOnce    sync.Once
	referenceFreq map[string]float64
)

// initReferenceCorpus builds the frequency table. Called lazily through
// sync.Once; safe to share across concurrent requests because the map is
// never written afterwards.
func initReferenceCorpus() {
	referenceFreq = map[string]float64{
		// Near-universal resume/posting vocabulary.
		"experience": 0.95, "work": 0.92, "team": 0.90, "skills": 0.90,
		"years": 0.88, "development": 0.85, "company": 0.85, "job": 0.84,
		"role": 0.82, "responsibilities": 0.80, "requirements": 0.80,
		"knowledge": 0.75, "ability": 0.74, "strong": 0.72, "working": 0.70,
		"position": 0.70, "business": 0.65, "management": 0.62,
		"project": 0.60, "projects": 0.58, "support": 0.55, "design": 0.50,
		"process": 0.50, "tools": 0.48, "product": 0.45, "quality": 0.42,
		"education": 0.55, "degree": 0.45, "communication": 0.52,
		"environment": 0.46, "solutions": 0.44, "technologies": 0.42,

		// Russian counterparts.
		"опыт": 0.95, "работы": 0.92, "работа": 0.90, "команда": 0.85,
		"команде": 0.82, "лет": 0.85, "компания": 0.84, "компании": 0.84,
		"навыки": 0.88, "знание": 0.78, "знания": 0.75, "разработка": 0.72,
		"разработки": 0.70, "требования": 0.80, "обязанности": 0.80,
		"условия": 0.76, "умение": 0.66, "проект": 0.58, "проектов": 0.55,
		"образование": 0.55, "развитие": 0.50,

		// Widespread technologies: common, but still informative.
		"python": 0.20, "java": 0.18, "javascript": 0.16, "sql": 0.22,
		"git": 0.18, "linux": 0.14, "docker": 0.12, "aws": 0.12,
		"excel": 0.15, "agile": 0.14, "scrum": 0.10,
	}
}

// referenceIDF returns the inverse-document-frequency weight for term from
// the reference corpus, or (0, false) when the corpus has no entry.
func referenceIDF(term string) (float64, bool) {
	corpusOnce.Do(initReferenceCorpus)
	freq, ok := referenceFreq[term]
	if !ok {
		return 0, false
	}
	return math.Log(1/freq) + 1, true
}
