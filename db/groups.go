package db

import (
	"database/sql"
	"fmt"

	"github.com/grouphub/user-group-services/models"
)

// GetGroups retrieves all groups with their members loaded.
func (db *MembershipDB) GetGroups() ([]models.Group, error) {
	query := `SELECT id, fullname FROM groups ORDER BY id`
	rows, err := db.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Fullname); err != nil {
			return nil, fmt.Errorf("error scanning groups: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		members, err := db.getGroupMembers(groups[i].ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving members for group: %w", err)
		}
		groups[i].Members = members
	}
	return groups, nil
}

// GetGroup retrieves a single group with its members. A missing group is
// reported as (nil, nil).
func (db *MembershipDB) GetGroup(groupID int) (*models.Group, error) {
	query := `SELECT id, fullname FROM groups WHERE id = $1`
	row := db.DB.QueryRow(query, groupID)

	var g models.Group
	if err := row.Scan(&g.ID, &g.Fullname); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning group: %w", err)
	}

	members, err := db.getGroupMembers(g.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members for group: %w", err)
	}
	g.Members = members

	return &g, nil
}

// getGroupMembers retrieves the users joined to a group.
func (db *MembershipDB) getGroupMembers(groupID int) ([]models.User, error) {
	query := `SELECT u.id, u.name, u.email FROM users u JOIN user_groups ug ON ug.user_id = u.id WHERE ug.group_id = $1 ORDER BY u.id`
	rows, err := db.DB.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		members = append(members, u)
	}
	return members, rows.Err()
}

// CreateGroup inserts a new group. Duplicate names are rejected by the
// fullname uniqueness constraint and surface as a driver error.
func (db *MembershipDB) CreateGroup(fullname string) (*models.Group, error) {
	g := models.Group{Fullname: fullname}
	query := `INSERT INTO groups (fullname) VALUES ($1) RETURNING id`
	if err := db.DB.QueryRow(query, fullname).Scan(&g.ID); err != nil {
		return nil, err
	}

	db.Log.Info().Int("group_id", g.ID).Msg("group created")
	return &g, nil
}

// UpdateGroup renames an existing group.
func (db *MembershipDB) UpdateGroup(g *models.Group) error {
	if _, err := db.DB.Exec(`UPDATE groups SET fullname = $1 WHERE id = $2`, g.Fullname, g.ID); err != nil {
		return err
	}
	return nil
}

// DeleteGroup deletes a group by id. Membership rows referencing the
// group are removed by the store's cascade; users are untouched.
func (db *MembershipDB) DeleteGroup(groupID int) error {
	if _, err := db.DB.Exec(`DELETE FROM groups WHERE id = $1`, groupID); err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}
