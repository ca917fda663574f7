package persona

import "strings"

// classificationRule binds category-defining substrings to a category.
type classificationRule struct {
	substrings []string
	category   Category
}

// classificationRules is the ordered precedence table for Classify. Order is
// significant because the trigger words overlap across roles ("professional"
// appears in many role descriptions); the first matching rule wins.
var classificationRules = []classificationRule{
	{substrings: []string{"travel", "planner"}, category: TravelPlanner},
	{substrings: []string{"hr", "professional"}, category: HRProfessional},
	{substrings: []string{"food", "contractor"}, category: FoodContractor},
}

// DefaultCategory is returned when no rule matches. Falling back instead of
// failing keeps the pipeline total over arbitrary role strings; the cost is
// possible misclassification of unknown roles.
const DefaultCategory = TravelPlanner

// Classify maps a free-text role description onto a Category by ordered
// case-insensitive substring matching.
func Classify(role string) Category {
	lower := strings.ToLower(role)
	for _, rule := range classificationRules {
		for _, s := range rule.substrings {
			if strings.Contains(lower, s) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}
