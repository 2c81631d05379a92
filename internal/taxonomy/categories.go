package taxonomy

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// categoryDef declares one category's skill list and the priority its skills
// carry toward a job match.
type categoryDef struct {
	Category types.SkillCategory
	Priority types.SkillPriority
	Skills   []string
}

// defaultCategories enumerates the eight fixed categories. Skill names here
// are canonical; synonyms are folded before lookup. A skill may appear in
// exactly one category — Table construction panics on duplicates.
var defaultCategories = []categoryDef{
	{
		Category: types.CategoryCoreTechnical,
		Priority: types.PriorityCritical,
		Skills: []string{
			"JavaScript", "TypeScript", "Python", "Java", "Go", "C#", "C++",
			"Ruby", "PHP", "Rust", "Swift", "Kotlin", "Node.js",
		},
	},
	{
		Category: types.CategoryBackend,
		Priority: types.PriorityImportant,
		Skills: []string{
			"Express", "Django", "Flask", "Spring Boot", ".NET", "Rails",
			"Laravel", "FastAPI", "GraphQL", "REST API", "gRPC",
		},
	},
	{
		Category: types.CategoryFrontend,
		Priority: types.PriorityImportant,
		Skills: []string{
			"React", "Angular", "Vue", "Next.js", "Svelte", "HTML", "CSS",
			"Sass", "Tailwind CSS", "Redux", "Webpack",
		},
	},
	{
		Category: types.CategoryDatabase,
		Priority: types.PriorityImportant,
		Skills: []string{
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "Oracle",
			"SQL Server", "Elasticsearch", "Cassandra", "DynamoDB", "SQL",
		},
	},
	{
		Category: types.CategoryDevOps,
		Priority: types.PriorityImportant,
		Skills: []string{
			"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform",
			"Jenkins", "CI/CD", "Ansible", "Linux", "Git", "Nginx",
		},
	},
	{
		Category: types.CategoryAIML,
		Priority: types.PriorityImportant,
		Skills: []string{
			"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
			"scikit-learn", "NLP", "Computer Vision", "Pandas", "NumPy",
			"Data Science",
		},
	},
	{
		Category: types.CategorySoftSkills,
		Priority: types.PriorityNiceToHave,
		Skills: []string{
			"Communication", "Leadership", "Teamwork", "Problem Solving",
			"Adaptability", "Creativity", "Time Management", "Critical Thinking",
		},
	},
	{
		Category: types.CategoryBonusSkills,
		Priority: types.PriorityNiceToHave,
		Skills: []string{
			"Agile", "Scrum", "Jira", "Figma", "TDD", "Microservices",
			"System Design", "Security", "Accessibility", "Testing",
		},
	},
}

// Table is a validated skill taxonomy: a synonym fold plus a single map from
// canonical skill name to its category and priority.
type Table struct {
	synonyms map[string]string
	skills   map[string]types.CategorizedSkill
}

var defaultTable = mustBuildTable(defaultSynonyms, defaultCategories)

// Default returns the built-in taxonomy table.
func Default() *Table {
	return defaultTable
}

// buildTable flattens per-category skill lists into a single map keyed by
// lowercased canonical name, rejecting duplicate keys across categories.
func buildTable(synonyms map[string]string, categories []categoryDef) (*Table, error) {
	skills := make(map[string]types.CategorizedSkill)
	for _, def := range categories {
		for _, name := range def.Skills {
			key := strings.ToLower(name)
			if existing, ok := skills[key]; ok {
				return nil, fmt.Errorf("skill %q appears in both %s and %s", name, existing.Category, def.Category)
			}
			skills[key] = types.CategorizedSkill{
				Name:     name,
				Category: def.Category,
				Priority: def.Priority,
			}
		}
	}
	syn := make(map[string]string, len(synonyms))
	for variant, canonical := range synonyms {
		syn[strings.ToLower(variant)] = canonical
	}
	return &Table{synonyms: syn, skills: skills}, nil
}

// mustBuildTable backs the package-level default. A malformed built-in table
// is a programmer error and unrecoverable.
func mustBuildTable(synonyms map[string]string, categories []categoryDef) *Table {
	t, err := buildTable(synonyms, categories)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: invalid built-in table: %v", err))
	}
	return t
}

// Categorize resolves a raw skill string against the default table.
func Categorize(raw string) types.CategorizedSkill {
	return Default().Categorize(raw)
}

// Categorize normalizes a raw skill and looks it up in the table. Skills with
// no category default to bonus_skills with nice_to_have priority.
func (t *Table) Categorize(raw string) types.CategorizedSkill {
	canonical := t.Normalize(raw)
	if entry, ok := t.skills[strings.ToLower(canonical)]; ok {
		return entry
	}
	return types.CategorizedSkill{
		Name:     canonical,
		Category: types.CategoryBonusSkills,
		Priority: types.PriorityNiceToHave,
	}
}
