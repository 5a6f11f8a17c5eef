package db

import (
	"database/sql"
	"fmt"

	"github.com/grouphub/user-group-services/models"
)

// GetMembership retrieves the join record for an exact (user, group)
// pair, or (nil, nil) when the user is not a member.
func (db *MembershipDB) GetMembership(userID, groupID int) (*models.UserGroup, error) {
	query := `SELECT id, user_id, group_id FROM user_groups WHERE user_id = $1 AND group_id = $2`
	row := db.DB.QueryRow(query, userID, groupID)

	var ug models.UserGroup
	if err := row.Scan(&ug.ID, &ug.UserID, &ug.GroupID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning membership: %w", err)
	}
	return &ug, nil
}

// CreateMembership inserts a join record. There is deliberately no
// duplicate pre-check: the UNIQUE (user_id, group_id) constraint decides,
// so two concurrent inserts of the same pair yield exactly one success.
func (db *MembershipDB) CreateMembership(userID, groupID int) (*models.UserGroup, error) {
	ug := models.UserGroup{UserID: userID, GroupID: groupID}
	query := `INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2) RETURNING id`
	if err := db.DB.QueryRow(query, userID, groupID).Scan(&ug.ID); err != nil {
		return nil, err
	}

	db.Log.Info().Int("user_id", userID).Int("group_id", groupID).Msg("membership created")
	return &ug, nil
}

// DeleteMembership removes a join record by its id.
func (db *MembershipDB) DeleteMembership(membershipID int) error {
	if _, err := db.DB.Exec(`DELETE FROM user_groups WHERE id = $1`, membershipID); err != nil {
		return fmt.Errorf("error deleting membership: %w", err)
	}
	return nil
}
