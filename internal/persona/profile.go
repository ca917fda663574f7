package persona

import "regexp"

// Field is one regex extractor within a content profile. Fields appear in the
// profile slice in summary priority order; MaxSpans bounds how many matched
// spans the refiner folds into the summary, and zero excludes the field from
// assembly while keeping its extraction available.
type Field struct {
	Name     string
	Label    string
	MaxSpans int
	Pattern  *regexp.Regexp
}

// Profile bundles everything the refiner needs for one content type: the
// field extractors in priority order, the action words driving the sentence
// fallback, and the domain terms that boost sentence-importance scoring.
type Profile struct {
	ContentType   string
	Fields        []Field
	FallbackWords []string
}

var travelProfile = Profile{
	ContentType: "travel",
	Fields: []Field{
		{Name: "destinations", Label: "Key destinations", MaxSpans: 3,
			Pattern: regexp.MustCompile(`(?i)\b(?:visit|go to|see|explore)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)},
		{Name: "activities", Label: "Recommended activities", MaxSpans: 2,
			Pattern: regexp.MustCompile(`(?i)\b(?:enjoy|experience|try|discover)\s+([^.!?]+)`)},
		{Name: "tips", Label: "Travel tips", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:tip|advice|recommendation|suggestion)\s*:?\s*([^.!?]+)`)},
		{Name: "locations", MaxSpans: 0,
			Pattern: regexp.MustCompile(`(?i)\b(?:in|at|near)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)},
	},
	FallbackWords: []string{"visit", "see", "explore", "enjoy", "experience", "discover", "try", "go to"},
}

var hrProfile = Profile{
	ContentType: "hr",
	Fields: []Field{
		{Name: "steps", Label: "Key steps", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:step|procedure|process)\s+\d+[:\s]*([^.!?]+)`)},
		{Name: "features", Label: "Features", MaxSpans: 2,
			Pattern: regexp.MustCompile(`(?i)\b(?:feature|function|tool)\s*:?\s*([^.!?]+)`)},
		{Name: "instructions", Label: "Instructions", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:click|select|choose|enable)\s+([^.!?]+)`)},
		{Name: "workflows", MaxSpans: 0,
			Pattern: regexp.MustCompile(`(?i)\b(?:workflow|process|automation)\s*:?\s*([^.!?]+)`)},
	},
	FallbackWords: []string{"create", "build", "design", "fill", "sign", "send", "track", "manage", "organize"},
}

var foodProfile = Profile{
	ContentType: "food",
	Fields: []Field{
		{Name: "recipes", Label: "Recipe", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:recipe|dish|meal)\s*:?\s*([^.!?]+)`)},
		{Name: "ingredients", Label: "Ingredients", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:ingredients?|you will need)\s*:?\s*([^.!?]+)`)},
		{Name: "instructions", Label: "Instructions", MaxSpans: 1,
			Pattern: regexp.MustCompile(`(?i)\b(?:instructions?|directions?|method)\s*:?\s*([^.!?]+)`)},
		{Name: "preparation", MaxSpans: 0,
			Pattern: regexp.MustCompile(`(?i)\b(?:prepare|cook|make|serve)\s+([^.!?]+)`)},
	},
	FallbackWords: []string{"ingredient", "recipe", "cook", "prepare", "serve", "dish", "meal", "food"},
}

// generalProfile has no structured extractors, so the refiner always takes
// the sentence-importance path for it.
var generalProfile = Profile{ContentType: "general"}

// ProfileFor selects the content profile for a category. The selection is
// made once per analysis run and shared by every refine call in that run.
func ProfileFor(c Category) Profile {
	switch c {
	case TravelPlanner:
		return travelProfile
	case HRProfessional:
		return hrProfile
	case FoodContractor:
		return foodProfile
	}
	return generalProfile
}
