package college

import (
	"strings"
	"time"

	"github.com/mentorhub/mentorhub/core"
)

type College struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Location     string    `json:"location"`
	StudentCount int       `json:"student_count"`
	MentorCount  int       `json:"mentor_count"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

// NewCollege contains information needed to register a partner college.
type NewCollege struct {
	Name     string `json:"name" validate:"required"`
	Code     string `json:"code" validate:"required,min=2,max=10,alphanum_"`
	Location string `json:"location"`
}

func (nc *NewCollege) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = strings.ToUpper(core.CleanString(nc.Code))
	nc.Location = core.CleanString(nc.Location)
	return core.Validate.Struct(nc)
}

// UpdateCollege defines what information may be provided to modify a College.
type UpdateCollege struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Active   *bool  `json:"active"`
}

func (uc *UpdateCollege) Validate(orig College) error {
	if name := core.CleanString(uc.Name); name != "" {
		uc.Name = name
	} else {
		uc.Name = orig.Name
	}
	if loc := core.CleanString(uc.Location); loc != "" {
		uc.Location = loc
	} else {
		uc.Location = orig.Location
	}
	return core.Validate.Struct(uc)
}

type QueryFilter struct {
	Search string `query:"search"`
	Active *bool  `query:"active"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf QueryFilter) Match(c College) bool {
	if qf.Search != "" {
		q := strings.ToLower(qf.Search)
		if !(strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Code), q) ||
			strings.Contains(strings.ToLower(c.Location), q)) {
			return false
		}
	}
	if qf.Active != nil && c.Active != *qf.Active {
		return false
	}
	return true
}

// Filter returns the colleges matching all active predicates, preserving the
// original relative order. Pure.
func Filter(colleges []College, qf QueryFilter) []College {
	out := make([]College, 0, len(colleges))
	for _, c := range colleges {
		if qf.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
