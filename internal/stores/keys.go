package stores

import (
	"errors"
	"strings"
)

var ErrInvalidUserID = errors.New("invalid user id")

// userSegment guards user ids that become a single path segment of a storage key.
func userSegment(userID string) (string, error) {
	if userID == "" || userID == "." || userID == ".." || strings.ContainsAny(userID, `/\`) {
		return "", ErrInvalidUserID
	}
	return userID, nil
}
