package domain

// User is a logged-in account. Authentication is a stub: any non-empty
// username is accepted and the ID is the login timestamp in unix millis.
// The persisted shape uses "name" for the username field.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"name"`
}
