package api

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a non-2xx backend response. Auth failures (401/403) are
// pass-through: callers see them like any other request failure.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, body)
}

// IsStatus reports whether err is an api error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// PathWithID substitutes the ":id" segment of a route template.
func PathWithID(template, id string) string {
	return strings.Replace(template, ":id", id, 1)
}
