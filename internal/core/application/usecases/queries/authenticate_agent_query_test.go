package queries_test

import (
	"testing"

	"paquexpress/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateAgentQuery_ValidInput(t *testing.T) {
	query, err := queries.NewAuthenticateAgentQuery("alice", "secret123")

	require.NoError(t, err)
	assert.NotZero(t, query)
	assert.Equal(t, "alice", query.Username())
	assert.Equal(t, "secret123", query.Password())
	assert.NoError(t, query.Validate())
}

func TestNewAuthenticateAgentQuery_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret123"},
		{name: "empty password", username: "alice", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewAuthenticateAgentQuery(tc.username, tc.password)

			require.Error(t, err)
			assert.ErrorIs(t, err, queries.ErrCredentialsAreRequired)
		})
	}
}

func TestAuthenticateAgentQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.AuthenticateAgentQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrAuthenticateAgentQueryIsNotConstructed)
}
