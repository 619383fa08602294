package domain

// PlaceholderName marks an item that was materialized only to satisfy a recipe
// reference and has not been fetched from the provider yet.
const PlaceholderName = "TBD"

// Item is a provider catalog entry. Recipe is only populated for crafted items
// returned from recipe discovery or the reverse ingredient index.
type Item struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Recipe *Recipe `json:"recipe,omitempty"`
}

// IsPlaceholder reports whether the item still carries the placeholder name
func (i Item) IsPlaceholder() bool {
	return i.Name == PlaceholderName
}

// NewPlaceholder builds an unresolved item for the given provider id
func NewPlaceholder(id int) Item {
	return Item{ID: id, Name: PlaceholderName}
}

// Lookup classifies what the local cache knows about an item.
type Lookup int

const (
	LookupAbsent Lookup = iota
	LookupPlaceholder
	LookupResolved
)

// String returns a human-readable state name for logs
func (l Lookup) String() string {
	switch l {
	case LookupAbsent:
		return "absent"
	case LookupPlaceholder:
		return "placeholder"
	case LookupResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Classify maps a possibly-nil item to its lookup state.
func Classify(item *Item) Lookup {
	switch {
	case item == nil:
		return LookupAbsent
	case item.IsPlaceholder():
		return LookupPlaceholder
	default:
		return LookupResolved
	}
}
