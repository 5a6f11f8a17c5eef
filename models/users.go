package models

// Role tags a user may carry. Anything else is rejected by validation.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents a stored user. Password holds the one-way hash and
// APIToken the opaque identity token; neither is ever serialized.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	APIToken string   `json:"-"`
	Roles    []string `json:"roles"`
}

// UserRequest is the payload for creating or partially updating a user.
// Pointer fields distinguish "absent" from "empty" on updates.
type UserRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Role     []string `json:"role"`
}
