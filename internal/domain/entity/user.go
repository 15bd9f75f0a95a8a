// Package entity contains the core business objects of the project.
package entity

// User is a back-office account. The password field holds a bcrypt hash and
// is never serialized.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
