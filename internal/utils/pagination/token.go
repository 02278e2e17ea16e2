package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Tokens travel in query strings, so they use the unpadded URL-safe alphabet.
var tokenEncoding = base64.RawURLEncoding

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return tokenEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EntryCursor is the keyset position of the last entry of a page. Entries are ordered by
// entry date, then creation time, then id, all descending.
type EntryCursor struct {
	EntryDate time.Time
	CreatedAt time.Time
	EntryID   string
}

// Encode renders the cursor as an opaque token.
func (c EntryCursor) Encode() string {
	return EncodeMultiFieldToken(c.EntryDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.EntryID)
}

// DecodeEntryCursor parses a token produced by EntryCursor.Encode.
func DecodeEntryCursor(token string) (EntryCursor, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return EntryCursor{}, err
	}
	if len(fields) != 3 || fields[2] == "" {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (fields)")
	}

	entryDate, err := time.Parse(timeFormat, fields[0])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (entry date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, fields[1])
	if err != nil {
		return EntryCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return EntryCursor{EntryDate: entryDate, CreatedAt: createdAt, EntryID: fields[2]}, nil
}
