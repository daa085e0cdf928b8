package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"net"
	"strings"

	apperrors "maritime-maintenance/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// DefaultPerPage is used when the caller does not ask for a page size
	DefaultPerPage = 10
	// DefaultUpdatesPerPage is the page size for component history
	DefaultUpdatesPerPage = 5
	// MaxPerPage caps a single page
	MaxPerPage = 100
)

// Pagination describes one page of a listing
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
}

// normalizePage clamps page/perPage and returns limit and offset for a query
func normalizePage(page, perPage, defaultPerPage int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	// keeps (page-1)*perPage inside int
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return page, perPage, (page - 1) * perPage
}

func newPagination(total int64, page, perPage int) Pagination {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return Pagination{Total: total, Pages: pages, CurrentPage: page}
}

// validationError turns validator output into an apperrors.ValidationError
// naming the first offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := verrs[0]
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "max":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at most %s", fe.Param()))
	case "min":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at least %s", fe.Param()))
	case "datetime":
		return apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	default:
		return apperrors.NewValidationError(field, fmt.Sprintf("failed '%s' validation", fe.Tag()))
	}
}

// toSnake converts a Go field name such as ServiceLifeMonths or IMONumber to
// its JSON spelling.
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isUnavailable reports whether err means the database could not be reached,
// as opposed to a query-level failure.
func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// dbError wraps a repository failure, marking connectivity problems as
// transient so the API answers 503 instead of 500.
func dbError(op string, err error) error {
	if isUnavailable(err) {
		return apperrors.NewTransientError(op, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// isNotFound is shorthand for the gorm sentinel
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate reports a unique constraint violation
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// emptyToNil treats "" the same as an absent optional field
func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
