package model

// CategoryID identifies a compliance dimension
type CategoryID string

const (
	CategoryHumanOversight      CategoryID = "human_oversight"
	CategoryTechnicalRobustness CategoryID = "technical_robustness"
	CategoryPrivacyData         CategoryID = "privacy_data_governance"
	CategoryTransparency        CategoryID = "transparency"
	CategoryDiversityFairness   CategoryID = "diversity_fairness"
	CategorySocialEnvironmental CategoryID = "social_environmental"
	// CategoryProhibitedPractices is used by risk classification only; it
	// never appears in category score breakdowns.
	CategoryProhibitedPractices CategoryID = "prohibited_practices"
)

// CategoryInfo provides display information for a category
type CategoryInfo struct {
	ID    CategoryID `json:"id"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Icon  string     `json:"icon"`
}

// ScoringCategories returns the fixed, ordered set of dimensions that receive
// an independent sub-score
func ScoringCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryHumanOversight, Name: "Human Agency & Oversight", Color: "#2563eb", Icon: "user-check"},
		{ID: CategoryTechnicalRobustness, Name: "Technical Robustness & Safety", Color: "#7c3aed", Icon: "shield"},
		{ID: CategoryPrivacyData, Name: "Privacy & Data Governance", Color: "#0d9488", Icon: "lock"},
		{ID: CategoryTransparency, Name: "Transparency", Color: "#d97706", Icon: "eye"},
		{ID: CategoryDiversityFairness, Name: "Diversity & Fairness", Color: "#db2777", Icon: "scale"},
		{ID: CategorySocialEnvironmental, Name: "Social & Environmental Well-being", Color: "#16a34a", Icon: "globe"},
	}
}

// CategoryByID looks up display info for a scoring category
func CategoryByID(id CategoryID) (CategoryInfo, bool) {
	for _, c := range ScoringCategories() {
		if c.ID == id {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// questionCategories attributes each scored question to at most one category.
// Questions absent from this table contribute to the global score only.
var questionCategories = map[string]CategoryID{
	"B1": CategorySocialEnvironmental,
	"B2": CategoryDiversityFairness,
	"C1": CategoryTechnicalRobustness,
	"C2": CategoryTechnicalRobustness,
	"C3": CategoryTechnicalRobustness,
	"C4": CategoryTechnicalRobustness,
	"D1": CategoryPrivacyData,
	"D2": CategoryPrivacyData,
	"D3": CategoryTransparency,
	"D4": CategoryHumanOversight,
	"E2": CategoryHumanOversight,
	"E3": CategorySocialEnvironmental,
	"E4": CategoryTransparency,
	"F1": CategoryTransparency,
	"F2": CategoryTransparency,
}

// CategoryForQuestion returns the owning category for a question code
func CategoryForQuestion(code string) (CategoryID, bool) {
	id, ok := questionCategories[code]
	return id, ok
}
