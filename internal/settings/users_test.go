package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDefaultUsers_Demo(t *testing.T) {
	users := DefaultUsers()
	require.Len(t, users, 1)
	assert.Equal(t, "demo", users[0].Username)
	assert.Equal(t, "*", users[0].Permissions)

	cost, err := bcrypt.Cost([]byte(users[0].PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, DefaultHashCost, cost)
}

// TestDefaultUsers_FreshCopy verifies that callers cannot alter the bundled
// demo account.
func TestDefaultUsers_FreshCopy(t *testing.T) {
	users := DefaultUsers()
	users[0].Username = "changed"
	assert.Equal(t, "demo", DefaultUsers()[0].Username)
}

func TestNewUserRecord_HashesPassword(t *testing.T) {
	u, err := NewUserRecord("admin", "p@ssw0rd", "*", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "*", u.Permissions)
	assert.NotEqual(t, "p@ssw0rd", u.PasswordHash)
	assert.True(t, u.CheckPassword("p@ssw0rd"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUserRecord_InvalidCost(t *testing.T) {
	_, err := NewUserRecord("admin", "pw", "*", bcrypt.MaxCost+1)
	assert.Error(t, err)
}

func TestUsersValue_RoundTrip(t *testing.T) {
	users := []UserRecord{
		{Username: "a", PasswordHash: "h1", Permissions: "*"},
		{Username: "b", PasswordHash: "h2", Permissions: "read"},
	}

	got, err := usersFromValue(usersValue(users))
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUsersFromValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    []UserRecord
		wantErr bool
	}{
		{
			name:  "nil is empty",
			value: nil,
			want:  []UserRecord{},
		},
		{
			name:  "empty list",
			value: []any{},
			want:  []UserRecord{},
		},
		{
			name:  "missing fields stay empty",
			value: []any{map[string]any{"username": "x", "permissions": 7}},
			want:  []UserRecord{{Username: "x"}},
		},
		{
			name:    "not a list",
			value:   map[string]any{"username": "x"},
			wantErr: true,
		},
		{
			name:    "entry not a mapping",
			value:   []any{"x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usersFromValue(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
