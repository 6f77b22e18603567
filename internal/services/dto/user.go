package dto

// UpdateUserRequest is the mutable slice of a user profile. Only fields
// listed here ever reach the database; there is no client-driven column
// assembly.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2"`
	About      *string `json:"about,omitempty"`
	Position   *string `json:"position,omitempty"`
	Location   *string `json:"location,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Education  *string `json:"education,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending active"`

	// Skills maps skill name to level; entries are upserted.
	Skills map[string]int `json:"skills,omitempty"`
}
