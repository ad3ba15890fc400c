package entity

// ReferenceItem is a category, state or district from the static lookup lists.
type ReferenceItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	StateID string `json:"stateId,omitempty"`
}
