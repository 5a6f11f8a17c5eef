package db

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/grouphub/user-group-services/models"
)

// GetUsers retrieves all stored users.
func (db *MembershipDB) GetUsers() ([]models.User, error) {
	query := `SELECT id, name, email, password, api_token, roles FROM users ORDER BY id`
	rows, err := db.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.APIToken, pq.Array(&u.Roles)); err != nil {
			return nil, fmt.Errorf("error scanning users: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser retrieves a single user by id. A missing user is reported as
// (nil, nil) so callers can distinguish absence from store failure.
func (db *MembershipDB) GetUser(userID int) (*models.User, error) {
	query := `SELECT id, name, email, password, api_token, roles FROM users WHERE id = $1`
	row := db.DB.QueryRow(query, userID)

	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.APIToken, pq.Array(&u.Roles)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

// GetUserByToken retrieves the user owning the given api token.
func (db *MembershipDB) GetUserByToken(apiToken string) (*models.User, error) {
	query := `SELECT id, name, email, password, api_token, roles FROM users WHERE api_token = $1`
	row := db.DB.QueryRow(query, apiToken)

	var u models.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.APIToken, pq.Array(&u.Roles)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user. The email uniqueness constraint is the
// arbiter for duplicates; a violation surfaces as a driver error for the
// caller to translate.
func (db *MembershipDB) CreateUser(u *models.User) (*models.User, error) {
	query := `INSERT INTO users (name, email, password, api_token, roles) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := db.DB.QueryRow(query, u.Name, u.Email, u.Password, u.APIToken, pq.Array(u.Roles)).Scan(&u.ID); err != nil {
		return nil, err
	}

	db.Log.Info().Int("user_id", u.ID).Msg("user created")
	return u, nil
}

// UpdateUser persists all mutable fields of an existing user.
func (db *MembershipDB) UpdateUser(u *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, password = $3, api_token = $4, roles = $5 WHERE id = $6`
	if _, err := db.DB.Exec(query, u.Name, u.Email, u.Password, u.APIToken, pq.Array(u.Roles), u.ID); err != nil {
		return err
	}
	return nil
}

// DeleteUser deletes a user by id. Membership rows referencing the user
// are removed by the store's cascade; groups are untouched.
func (db *MembershipDB) DeleteUser(userID int) error {
	if _, err := db.DB.Exec(`DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
