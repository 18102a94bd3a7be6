package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secreto", "u1", PurposeSession, "premiarte-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, purpose, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, PurposeSession, purpose)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Generate("secreto", "u1", PurposeSession, "premiarte-api", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	token, err := Generate("secreto", "u1", PurposeSession, "premiarte-api", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerateEmptySecret(t *testing.T) {
	_, err := Generate("", "u1", PurposeSession, "premiarte-api", 60)
	assert.Error(t, err)
}

func TestResetPurposeRoundTrip(t *testing.T) {
	token, err := Generate("secreto", "u1", PurposeReset, "premiarte-api", 60)
	require.NoError(t, err)

	_, purpose, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, PurposeReset, purpose)
}
