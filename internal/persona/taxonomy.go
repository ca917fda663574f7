package persona

// Topic groups the lowercase trigger words for one topic label. Topics and
// their words are kept in slices rather than maps so that every scoring pass
// walks them in the same order; the scorer accumulates floating-point weights
// and a fixed iteration order keeps results identical across runs.
type Topic struct {
	Label string
	Words []string
}

// Taxonomy is the immutable keyword configuration constructed once at process
// start and passed explicitly into the scorer. Identity keywords describe what
// the persona cares about in general (lower weight); task keywords describe
// vocabulary tied to executing the persona's typical jobs (higher weight).
type Taxonomy struct {
	identity map[Category][]Topic
	task     map[Category][]Topic
}

// NewTaxonomy builds the built-in taxonomy. Callers treat the result as
// read-only; nothing in the pipeline mutates it after construction.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		identity: map[Category][]Topic{
			TravelPlanner: {
				{Label: "destinations", Words: []string{"city", "town", "village", "coast", "beach", "mountain"}},
				{Label: "activities", Words: []string{"visit", "explore", "tour", "experience", "enjoy", "discover"}},
				{Label: "logistics", Words: []string{"hotel", "restaurant", "transport", "book", "booking", "reservation"}},
				{Label: "planning", Words: []string{"itinerary", "schedule", "plan", "organize", "arrange"}},
				{Label: "group_travel", Words: []string{"group", "friends", "college", "budget", "shared"}},
				{Label: "cultural", Words: []string{"culture", "tradition", "history", "local", "authentic"}},
			},
			HRProfessional: {
				{Label: "forms", Words: []string{"form", "fillable", "interactive", "field", "input"}},
				{Label: "compliance", Words: []string{"compliance", "legal", "regulation", "policy", "requirement"}},
				{Label: "workflow", Words: []string{"workflow", "process", "approval", "signature", "tracking"}},
				{Label: "onboarding", Words: []string{"onboarding", "new hire", "employee", "orientation", "training"}},
				{Label: "documentation", Words: []string{"document", "record", "file", "archive", "store"}},
				{Label: "automation", Words: []string{"automate", "efficiency", "streamline", "optimize"}},
			},
			FoodContractor: {
				{Label: "recipes", Words: []string{"recipe", "ingredient", "cook", "prepare", "make"}},
				{Label: "vegetarian", Words: []string{"vegetarian", "vegan", "plant-based", "meatless"}},
				{Label: "buffet", Words: []string{"buffet", "catering", "large group", "serving", "presentation"}},
				{Label: "corporate", Words: []string{"corporate", "business", "professional", "formal"}},
				{Label: "dietary", Words: []string{"gluten-free", "allergy", "dietary", "restriction"}},
				{Label: "planning", Words: []string{"menu", "planning", "preparation", "timing", "logistics"}},
			},
		},
		task: map[Category][]Topic{
			TravelPlanner: {
				{Label: "trip_planning", Words: []string{"plan", "organize", "arrange", "schedule", "itinerary"}},
				{Label: "group_coordination", Words: []string{"group", "friends", "college", "budget", "shared"}},
				{Label: "destination_research", Words: []string{"destination", "location", "place", "area", "region"}},
				{Label: "activity_planning", Words: []string{"activity", "attraction", "experience", "entertainment"}},
				{Label: "logistics", Words: []string{"accommodation", "transport", "booking", "reservation"}},
			},
			HRProfessional: {
				{Label: "form_creation", Words: []string{"create", "build", "design", "develop", "make"}},
				{Label: "form_management", Words: []string{"manage", "organize", "track", "monitor", "maintain"}},
				{Label: "onboarding_process", Words: []string{"onboarding", "new hire", "employee", "orientation"}},
				{Label: "compliance_tracking", Words: []string{"compliance", "legal", "regulation", "requirement"}},
				{Label: "workflow_automation", Words: []string{"automate", "workflow", "process", "efficiency"}},
			},
			FoodContractor: {
				{Label: "menu_planning", Words: []string{"menu", "plan", "design", "create", "develop"}},
				{Label: "vegetarian_catering", Words: []string{"vegetarian", "catering", "buffet", "serving"}},
				{Label: "corporate_event", Words: []string{"corporate", "business", "professional", "formal"}},
				{Label: "dietary_accommodation", Words: []string{"dietary", "allergy", "restriction", "gluten-free"}},
				{Label: "preparation_logistics", Words: []string{"prepare", "cook", "timing", "logistics"}},
			},
		},
	}
}

// Identity returns the persona-identity topics for a category. The lookup is
// total over the enumeration: unknown values fall back to the default category.
func (t *Taxonomy) Identity(c Category) []Topic {
	if topics, ok := t.identity[c]; ok {
		return topics
	}
	return t.identity[DefaultCategory]
}

// Task returns the task-execution topics for a category.
func (t *Taxonomy) Task(c Category) []Topic {
	if topics, ok := t.task[c]; ok {
		return topics
	}
	return t.task[DefaultCategory]
}
