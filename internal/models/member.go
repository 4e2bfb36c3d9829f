package models

// Member represents one contact on the roster.
type Member struct {
	// ID is the surrogate key assigned by the store on creation.
	// IDs are issued monotonically and never reused after deletion.
	ID int64

	// Name is the display name of the member. Not unique.
	Name string

	// Contact is the member's phone number in calling-code format
	// (12 digits starting with "63"). Unique across all members.
	Contact string
}
