package models

// User is a record from the external user store. Authentication and account
// lifecycle are handled outside this service; schedules only need the owner
// identity.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
