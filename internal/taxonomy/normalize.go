// Package taxonomy provides the static skill category, priority, and synonym
// tables and the normalization used before any skill comparison.
package taxonomy

import "strings"

// defaultSynonyms maps common skill name variants to canonical names.
// Lookup is case-insensitive exact match; unknown strings pass through.
var defaultSynonyms = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"ecmascript": "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"node":       "Node.js",
	"nodejs":     "Node.js",
	"node js":    "Node.js",
	"py":         "Python",
	"python3":    "Python",
	"c sharp":    "C#",
	"csharp":     "C#",
	"cpp":        "C++",
	"k8s":        "Kubernetes",
	"kube":       "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"angularjs":  "Angular",
	"next":       "Next.js",
	"nextjs":     "Next.js",
	"postgres":   "PostgreSQL",
	"psql":       "PostgreSQL",
	"mongo":      "MongoDB",

	"mongodb atlas":         "MongoDB",
	"ms sql":                "SQL Server",
	"mssql":                 "SQL Server",
	"amazon web services":   "AWS",
	"google cloud":          "GCP",
	"google cloud platform": "GCP",

	"ci cd":           "CI/CD",
	"cicd":            "CI/CD",
	"ml":              "Machine Learning",
	"machinelearning": "Machine Learning",
	"dl":              "Deep Learning",
	"tf":              "TensorFlow",
	"sklearn":         "scikit-learn",
	"scikit learn":    "scikit-learn",

	"natural language processing": "NLP",

	"rest":       "REST API",
	"restful":    "REST API",
	"rest apis":  "REST API",
	"springboot": "Spring Boot",
	"spring":     "Spring Boot",
	"dotnet":     ".NET",
	".net core":  ".NET",
	"express.js": "Express",
	"expressjs":  "Express",
	"tailwind":   "Tailwind CSS",
	"html5":      "HTML",
	"css3":       "CSS",
}

// Normalize folds a raw skill string to its canonical name. Unknown strings
// are returned trimmed but otherwise unchanged.
func Normalize(raw string) string {
	return Default().Normalize(raw)
}

// Normalize folds a raw skill string to its canonical name using this table.
func (t *Table) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := t.synonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	// A raw string that differs from a canonical entry only by case still
	// resolves to that entry.
	if entry, ok := t.skills[strings.ToLower(trimmed)]; ok {
		return entry.Name
	}
	return trimmed
}
