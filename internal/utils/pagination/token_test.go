package pagination_test

import (
	"testing"
	"time"

	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 7, 18, 10, 30, 0, 123456789, time.UTC)

	token := pagination.EncodeToken("doc-42", createdAt)
	docID, decodedAt, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.Equal(t, "doc-42", docID)
	assert.True(t, createdAt.Equal(decodedAt))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := pagination.EncodeToken("", time.Now())
	// An empty document ID is not a valid cursor.
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	_, _, err := pagination.DecodeToken("ZG9jLTF8bm90LWEtdGltZQ==") // "doc-1|not-a-time"
	assert.Error(t, err)
}
