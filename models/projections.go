package models

// Projections are the only shapes handed back to API clients. Each one
// hand-lists the fields it exposes, so password hashes and api tokens are
// excluded by construction rather than by tag discipline.

// UserProjection exposes a user's public attributes.
type UserProjection struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Member is the shape of a user listed inside a group.
type Member struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// GroupProjection exposes a group together with its members.
type GroupProjection struct {
	ID       int    `json:"id"`
	Fullname string `json:"fullname"`
	Members  []Member `json:"members"`
}

// GroupRef and UserRef are the two ends of a membership projection.
type GroupRef struct {
	ID       int    `json:"id"`
	Fullname string `json:"fullname"`
}

type UserRef struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MembershipProjection exposes a join record by its two references.
type MembershipProjection struct {
	Group GroupRef `json:"group"`
	User  UserRef  `json:"user"`
}

// ProjectUser maps a stored user to its public projection.
func ProjectUser(u User) UserProjection {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return UserProjection{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Roles: roles,
	}
}

// ProjectUsers maps a list of stored users, never returning nil.
func ProjectUsers(users []User) []UserProjection {
	projections := make([]UserProjection, 0, len(users))
	for _, u := range users {
		projections = append(projections, ProjectUser(u))
	}
	return projections
}

// ProjectGroup maps a group and its loaded members.
func ProjectGroup(g Group) GroupProjection {
	members := make([]Member, 0, len(g.Members))
	for _, u := range g.Members {
		members = append(members, Member{ID: u.ID, Username: u.Name, Email: u.Email})
	}
	return GroupProjection{ID: g.ID, Fullname: g.Fullname, Members: members}
}

// ProjectGroups maps a list of groups, never returning nil.
func ProjectGroups(groups []Group) []GroupProjection {
	projections := make([]GroupProjection, 0, len(groups))
	for _, g := range groups {
		projections = append(projections, ProjectGroup(g))
	}
	return projections
}

// ProjectMembership maps a join record by the user and group it connects.
func ProjectMembership(u User, g Group) MembershipProjection {
	return MembershipProjection{
		Group: GroupRef{ID: g.ID, Fullname: g.Fullname},
		User:  UserRef{ID: u.ID, Email: u.Email, Name: u.Name},
	}
}
