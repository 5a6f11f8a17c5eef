package services_test

import (
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/grouphub/user-group-services/api/services"
)

const (
	userByIDQuery    = `SELECT id, name, email, password, api_token, roles FROM users WHERE id = $1`
	groupByIDQuery   = `SELECT id, fullname FROM groups WHERE id = $1`
	groupMembersJoin = `SELECT u.id, u.name, u.email FROM users u JOIN user_groups ug ON ug.user_id = u.id WHERE ug.group_id = $1 ORDER BY u.id`
	membershipQuery  = `SELECT id, user_id, group_id FROM user_groups WHERE user_id = $1 AND group_id = $2`
)

func TestAddMembershipMissingFields(t *testing.T) {
	svc, mock := newTestService(t)

	req := httptest.NewRequest("POST", "/group/add_user", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	services.AddMembershipService(svc, rec, req)

	assert.Equal(t, 400, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 0, env.Success)
	assert.Equal(t, "user_id is a required parameter", env.Errors["user_id_error"])
	assert.Equal(t, "group_id is a required parameter", env.Errors["group_id_error"],
		"both missing fields should be reported at once")
	assert.NoError(t, mock.ExpectationsWereMet(), "no store access before validation passes")
}

func TestAddMembershipUnknownUser(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(userByIDQuery)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(userColumns))

	req := httptest.NewRequest("POST", "/group/add_user",
		strings.NewReader(`{"user_id": "9", "group_id": "2"}`))
	rec := httptest.NewRecorder()
	services.AddMembershipService(svc, rec, req)

	assert.Equal(t, 404, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, `An user with number "9" does not exist!`, env.ErrorDetails)
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing should be inserted for an unknown user")
}

func TestAddMembershipUnknownGroup(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(userByIDQuery)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "batman", "batman@mail.com", "hash", "tok", "{}"))
	mock.ExpectQuery(regexp.QuoteMeta(groupByIDQuery)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname"}))

	req := httptest.NewRequest("POST", "/group/add_user",
		strings.NewReader(`{"user_id": "1", "group_id": "7"}`))
	rec := httptest.NewRecorder()
	services.AddMembershipService(svc, rec, req)

	assert.Equal(t, 404, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, `A group with number "7" does not exist!`, env.ErrorDetails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMembership(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(userByIDQuery)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "batman", "batman@mail.com", "hash", "tok", "{}"))
	mock.ExpectQuery(regexp.QuoteMeta(groupByIDQuery)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname"}).AddRow(2, "Justice League"))
	mock.ExpectQuery(regexp.QuoteMeta(groupMembersJoin)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2) RETURNING id`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	req := httptest.NewRequest("POST", "/group/add_user",
		strings.NewReader(`{"user_id": "1", "group_id": "2"}`))
	rec := httptest.NewRecorder()
	services.AddMembershipService(svc, rec, req)

	assert.Equal(t, 201, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 1, env.Success)
	assert.Contains(t, string(env.Data), `"fullname":"Justice League"`)
	assert.Contains(t, string(env.Data), `"name":"batman"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMembershipDuplicate(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(userByIDQuery)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "batman", "batman@mail.com", "hash", "tok", "{}"))
	mock.ExpectQuery(regexp.QuoteMeta(groupByIDQuery)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fullname"}).AddRow(2, "Justice League"))
	mock.ExpectQuery(regexp.QuoteMeta(groupMembersJoin)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO user_groups`)).
		WithArgs(1, 2).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint \"user_groups_user_id_group_id_key\""})

	req := httptest.NewRequest("POST", "/group/add_user",
		strings.NewReader(`{"user_id": "1", "group_id": "2"}`))
	rec := httptest.NewRecorder()
	services.AddMembershipService(svc, rec, req)

	assert.Equal(t, 409, rec.Code, "a repeated add of the same pair is a conflict")
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 0, env.Success)
	assert.Equal(t, "unique_violation", env.ErrorCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveMembershipNotMember(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "group_id"}))

	req := httptest.NewRequest("DELETE", "/group/remove_user",
		strings.NewReader(`{"user_id": "1", "group_id": "2"}`))
	rec := httptest.NewRecorder()
	services.RemoveMembershipService(svc, rec, req)

	assert.Equal(t, 404, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "User id: 1 is not member of Group id: 2", env.ErrorDetails)
	assert.NoError(t, mock.ExpectationsWereMet(), "nothing should be deleted for a non-member")
}

func TestRemoveMembership(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(regexp.QuoteMeta(membershipQuery)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "group_id"}).AddRow(7, 1, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM user_groups WHERE id = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("DELETE", "/group/remove_user",
		strings.NewReader(`{"user_id": "1", "group_id": "2"}`))
	rec := httptest.NewRecorder()
	services.RemoveMembershipService(svc, rec, req)

	assert.Equal(t, 200, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, 1, env.Success)
	assert.Equal(t, `"User id: 1 removed from Group id: 2"`, string(env.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}
