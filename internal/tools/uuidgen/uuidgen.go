// Package uuidgen produces batches of RFC 4122 UUIDs.
package uuidgen

import (
	"fmt"

	"github.com/google/uuid"
)

// V4 returns n random version 4 UUIDs.
func V4(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, uuid.New().String())
	}
	return out
}

// V7 returns n time-ordered version 7 UUIDs.
func V7(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate UUIDv7: %w", err)
		}
		out = append(out, id.String())
	}
	return out, nil
}
