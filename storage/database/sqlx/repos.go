// Package sqlxrepos implements the domain repositories on PostgreSQL via sqlx.
package sqlxrepos

import (
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"
	"github.com/volatiletech/null/v8"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

var identRegex = regexp.MustCompile(`^[a-z_]+$`)

// orderBy renders an ORDER BY clause from validated orderings; unknown or
// unsafe field names are skipped rather than interpolated.
func orderBy(orderings []core.DBOrdering, fallback string) string {
	var parts []string
	for _, ord := range orderings {
		if identRegex.MatchString(ord.Field) {
			parts = append(parts, ord.String())
		}
	}
	if len(parts) == 0 {
		parts = append(parts, fallback)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func isFKViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" && pqErr.Constraint == constraint
	}
	return false
}

func nullTime(t time.Time) null.Time {
	if t.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// availabilityJSON maps []mentorship.DayAvailability onto a JSONB column.
type availabilityJSON []mentorship.DayAvailability

func (a availabilityJSON) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]mentorship.DayAvailability(a))
	if err != nil {
		return nil, errors.Wrap(err, "marshaling availability")
	}
	return string(b), nil
}

func (a *availabilityJSON) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.Errorf("unsupported availability type %T", src)
	}
	return errors.Wrap(json.Unmarshal(b, (*[]mentorship.DayAvailability)(a)), "unmarshaling availability")
}
