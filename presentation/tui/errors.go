package tui

import (
	"errors"
	"fmt"

	"github.com/pyama86/safelink/domain/repository"
)

// describeError maps the repository error categories to a short line a
// user can act on. Anything uncategorized shows as-is.
func describeError(err error) string {
	var apiErr *repository.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf("backend error (%d) — try again", apiErr.StatusCode)
	case errors.Is(err, repository.ErrUnavailable):
		return "cannot reach the backend — check your connection"
	case errors.Is(err, repository.ErrMalformedPayload):
		return "backend sent an unreadable reply"
	}
	return err.Error()
}
