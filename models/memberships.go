package models

// UserGroup is the join record associating exactly one user with exactly
// one group. The (UserID, GroupID) pair is unique at the store.
type UserGroup struct {
	ID      int `json:"id"`
	UserID  int `json:"user_id"`
	GroupID int `json:"group_id"`
}

// MembershipRequest carries the raw identifiers of an add/remove request.
// They stay strings until the transform layer resolves them.
type MembershipRequest struct {
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}
