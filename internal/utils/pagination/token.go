package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates an opaque base64 cursor from the last document of a
// page. The document ID feeds the store's cursor query; the creation time is
// kept alongside so callers can sanity-check ordering.
func EncodeToken(documentID string, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", documentID, createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a cursor back into document ID and creation time.
func DecodeToken(token string) (string, time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return parts[0], createdAt, nil
}
