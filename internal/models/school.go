package models

// School represents a competing team. Athletes reference it by ID.
type School struct {
	// ID is the unique identifier for the school (UUID format).
	ID string `json:"id"`

	// Name is the display name of the school.
	Name string `json:"name"`
}
