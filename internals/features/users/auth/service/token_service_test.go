package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "darulfatheh_backend/internals/features/users/auth/model"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	admin := &authModel.AdminUserModel{AdminID: uuid.New(), AdminUsername: "admin"}
	now := time.Now()

	tok, exp, err := IssueSessionToken("secret", admin, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(SessionTTL), exp, time.Second)

	claims, err := ParseSessionToken("secret", `"`+tok+`"`)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	id, err := claims.AdminID()
	require.NoError(t, err)
	assert.Equal(t, admin.AdminID, id)
}

func TestSessionToken_Rejects(t *testing.T) {
	admin := &authModel.AdminUserModel{AdminID: uuid.New(), AdminUsername: "admin"}

	tok, _, err := IssueSessionToken("secret", admin, time.Now())
	require.NoError(t, err)
	_, err = ParseSessionToken("other-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidSession)

	expired, _, err := IssueSessionToken("secret", admin, time.Now().Add(-2*SessionTTL))
	require.NoError(t, err)
	_, err = ParseSessionToken("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = ParseSessionToken("secret", "")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = ParseSessionToken("secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash(hash, "s3cret-pass"))
	assert.False(t, CheckPasswordHash(hash, "wrong"))
}
