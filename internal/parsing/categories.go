package parsing

// Skill category bucket names
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryData     = "data"
	CategoryAIML     = "ai/ml"
)

// CategoryOrder fixes the iteration order of SkillCategories.
var CategoryOrder = []string{CategoryFrontend, CategoryBackend, CategoryData, CategoryAIML}

// SkillCategories maps each bucket to the terms that represent it.
// A term may belong to more than one bucket.
var SkillCategories = map[string][]string{
	CategoryFrontend: {
		"react", "vue", "angular", "javascript", "typescript", "html", "html5", "css", "css3",
		"sass", "nextjs", "nuxt", "svelte", "redux", "tailwind", "jquery", "webpack",
		"frontend", "front-end",
	},
	CategoryBackend: {
		"go", "java", "node.js", "python", "spring", "spring boot", "django", "flask", "fastapi",
		"c#", "asp.net", "dotnet", "php", "laravel", "ruby", "rails", "rust", "kotlin",
		"express", "nestjs", "microservices", "rest", "restful", "grpc", "graphql",
		"backend", "back-end",
	},
	CategoryData: {
		"sql", "postgresql", "mysql", "oracle", "mongodb", "python", "spark", "hadoop",
		"kafka", "airflow", "etl", "pandas", "numpy", "tableau", "power bi", "bigquery",
		"snowflake", "dbt", "data warehouse", "data engineering", "data analysis",
	},
	CategoryAIML: {
		"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "keras",
		"nlp", "computer vision", "llm", "opencv", "ai", "genai", "huggingface",
		"langchain", "xgboost",
	},
}

// RequiredCategories returns the buckets touched by the given JD skill
// tokens, in CategoryOrder.
func RequiredCategories(tokens []string) []string {
	var required []string
	for _, name := range CategoryOrder {
		if touchesCategory(tokens, SkillCategories[name]) {
			required = append(required, name)
		}
	}
	return required
}

// CoveredCategories returns the members of categories the CV has any term for.
func CoveredCategories(cv TermSet, categories []string) []string {
	var covered []string
	for _, name := range categories {
		for _, term := range SkillCategories[name] {
			if cv.Has(term) {
				covered = append(covered, name)
				break
			}
		}
	}
	return covered
}

func touchesCategory(tokens, terms []string) bool {
	for _, tok := range tokens {
		canonical := CanonicalSkill(tok)
		for _, term := range terms {
			if canonical == term || ContainsTerm(tok, term) {
				return true
			}
		}
	}
	return false
}
