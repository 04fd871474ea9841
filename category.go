package budgeters

// Category is a budget line. Expected is the user-set target; Actual is
// derived from transactions by Recompute.
type Category struct {
	id       ID
	Name     string
	Expected Amount
	Actual   Amount
}

// NewCategory creates a category with a fresh identifier and a zero actual.
func NewCategory(name string, expected Amount) *Category {
	return &Category{id: NewID(), Name: name, Expected: expected}
}

// ID returns the category's opaque identifier.
func (c *Category) ID() ID { return c.id }
