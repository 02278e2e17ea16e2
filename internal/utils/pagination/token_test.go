package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryCursor_RoundTrip(t *testing.T) {
	cursor := EntryCursor{
		EntryDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 1, 31, 14, 30, 45, 123456789, time.UTC),
		EntryID:   "6f1c2b9e-entry",
	}

	token := cursor.Encode()
	assert.NotContains(t, token, "=", "token must be safe in a query string")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decoded, err := DecodeEntryCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.EntryDate.Equal(decoded.EntryDate))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt), "nanoseconds survive the round trip")
	assert.Equal(t, cursor.EntryID, decoded.EntryID)
}

func TestDecodeEntryCursor_Errors(t *testing.T) {
	_, err := DecodeEntryCursor("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeEntryCursor(EncodeMultiFieldToken("2025-01-31T00:00:00Z", "2025-01-31T00:00:00Z"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fields")

	_, err = DecodeEntryCursor(EncodeMultiFieldToken("notadate", "2025-01-31T00:00:00Z", "e1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")

	_, err = DecodeEntryCursor(EncodeMultiFieldToken("2025-01-31T00:00:00Z", "later", "e1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken_SplitsOnEveryPipe(t *testing.T) {
	fields, err := DecodeMultiFieldToken(EncodeMultiFieldToken("a|b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)

	empty, err := DecodeMultiFieldToken(EncodeMultiFieldToken())
	require.NoError(t, err)
	assert.Equal(t, []string{""}, empty)
}
