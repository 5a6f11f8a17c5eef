package services_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/grouphub/user-group-services/api/services"
	"github.com/grouphub/user-group-services/db"
)

// testToken is what the pinned generator hands out, so tests can assert
// exactly which token reaches the store.
const testToken = "aaaabbbbccccddddeeeeffff00001111"

var userColumns = []string{"id", "name", "email", "password", "api_token", "roles"}

// stubHasher makes hashes predictable without paying bcrypt cost in tests.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (stubHasher) Verify(hash, plain string) bool { return hash == "hashed:"+plain }

func newTestService(t *testing.T) (*services.Service, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err, "should create sqlmock")
	t.Cleanup(func() { mockDB.Close() })

	logger := zerolog.Nop()
	svc := &services.Service{
		DB:       &db.MembershipDB{DB: mockDB, Log: &logger},
		Hasher:   stubHasher{},
		NewToken: func() string { return testToken },
	}
	return svc, mock
}

// envelope mirrors the response wrapper with the data left raw so each
// test can decode it into the shape it expects.
type envelope struct {
	Success      int               `json:"success"`
	ErrorCode    string            `json:"error_code"`
	ErrorDetails string            `json:"error_details"`
	Errors       map[string]string `json:"errors"`
	Data         json.RawMessage   `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	err := json.Unmarshal(rec.Body.Bytes(), &env)
	assert.NoError(t, err, "response body should be valid JSON: %s", rec.Body.String())
	return env
}
