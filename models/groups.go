package models

// Group represents a stored group. Members are the users joined through
// the user_groups table; the store loads them for read operations.
type Group struct {
	ID       int    `json:"id"`
	Fullname string `json:"fullname"`
	Members  []User `json:"members,omitempty"`
}

// GroupRequest is the payload for creating or renaming a group.
type GroupRequest struct {
	Fullname string `json:"fullname"`
}
