// Package validation holds the stateless input checks that run before any
// mutation. Every validator signals success with an empty result; callers
// must treat anything non-empty as a hard stop.
package validation

import (
	"regexp"

	"github.com/grouphub/user-group-services/models"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail returns "" when the address is syntactically valid.
func ValidateEmail(email string) string {
	if !emailRegex.MatchString(email) {
		return "Invalid email address"
	}
	return ""
}

// ValidateRole checks every entry against the recognized role tags,
// stopping at the first invalid one.
func ValidateRole(roles []string) string {
	for _, role := range roles {
		if role != models.RoleUser && role != models.RoleAdmin {
			return "Invalid role value"
		}
	}
	return ""
}

// ValidateGroupData requires a non-empty fullname.
func ValidateGroupData(fullname string) map[string]string {
	errs := map[string]string{}
	if fullname == "" {
		errs["name_error"] = "fullname is a required parameter"
	}
	return errs
}

// ValidateUserGroupData requires both identifiers; each is checked
// independently so both errors can be reported at once.
func ValidateUserGroupData(userID, groupID string) map[string]string {
	errs := map[string]string{}
	if userID == "" {
		errs["user_id_error"] = "user_id is a required parameter"
	}
	if groupID == "" {
		errs["group_id_error"] = "group_id is a required parameter"
	}
	return errs
}
