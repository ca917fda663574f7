// Package persona defines the closed set of requester categories, the
// classification rules that map a free-text role onto one of them, and the
// read-only keyword taxonomies and content profiles each category carries.
package persona

// Category is the closed classification of the requester's role. It selects
// which keyword taxonomy and content profile apply for a whole analysis run.
type Category int

const (
	TravelPlanner Category = iota
	HRProfessional
	FoodContractor
)

// String returns the human-readable category name used in logs and summaries.
func (c Category) String() string {
	switch c {
	case TravelPlanner:
		return "Travel Planner"
	case HRProfessional:
		return "HR Professional"
	case FoodContractor:
		return "Food Contractor"
	}
	return "Travel Planner"
}

// ContentType returns the content-type label driving the refiner's
// field extractors for this category.
func (c Category) ContentType() string {
	switch c {
	case TravelPlanner:
		return "travel"
	case HRProfessional:
		return "hr"
	case FoodContractor:
		return "food"
	}
	return "general"
}
