package model

// User is defined in the schema but exercised by no route; the admin API uses
// a shared password instead. Kept for the seed tool and a future login system.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
