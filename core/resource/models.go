package resource

import (
	"strings"
	"time"

	"github.com/mentorhub/mentorhub/core"
)

// Type classifies a learning resource.
type Type string

const (
	TypeArticle       Type = "article"
	TypeVideo         Type = "video"
	TypeCourse        Type = "course"
	TypeEbook         Type = "ebook"
	TypeDocumentation Type = "documentation"
	TypeGuide         Type = "guide"
	TypeCode          Type = "code"
)

var Types = []Type{TypeArticle, TypeVideo, TypeCourse, TypeEbook, TypeDocumentation, TypeGuide, TypeCode}

type Resource struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Type        Type      `json:"type"`
	Tags        []string  `json:"tags"`
	AddedBy     string    `json:"added_by"` // user ID
	Recommended bool      `json:"recommended"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewResource contains information needed to publish a learning resource.
type NewResource struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	URL         string   `json:"url" validate:"required,url"`
	Type        Type     `json:"type" validate:"required,oneof=article video course ebook documentation guide code"`
	Tags        []string `json:"tags"`
}

func (nr *NewResource) Validate() error {
	nr.Title = core.CleanString(nr.Title)
	nr.Description = core.CleanString(nr.Description)
	for i, tag := range nr.Tags {
		nr.Tags[i] = core.CleanString(tag)
	}
	return core.Validate.Struct(nr)
}

// QueryFilter applies AND composition of its active predicates.
// "" and "all" both mean "no restriction" for the Type and Tag facets.
type QueryFilter struct {
	Search      string `query:"search"`
	Type        Type   `query:"type"`
	Tag         string `query:"tag"`
	Recommended *bool  `query:"recommended"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Tag = core.CleanString(qf.Tag)
}

func facetIsAll(v string) bool {
	return v == "" || v == "all"
}

func (qf QueryFilter) Match(r Resource) bool {
	if qf.Search != "" {
		q := strings.ToLower(qf.Search)
		hit := strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q)
		for _, tag := range r.Tags {
			if hit {
				break
			}
			hit = strings.Contains(strings.ToLower(tag), q)
		}
		if !hit {
			return false
		}
	}
	if !facetIsAll(string(qf.Type)) && r.Type != qf.Type {
		return false
	}
	if !facetIsAll(qf.Tag) && !hasTag(r, qf.Tag) {
		return false
	}
	if qf.Recommended != nil && r.Recommended != *qf.Recommended {
		return false
	}
	return true
}

func hasTag(r Resource, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Filter returns the resources matching all active predicates, preserving the
// original relative order. Pure.
func Filter(resources []Resource, qf QueryFilter) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if qf.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Tags returns the distinct tags across all resources in first-appearance
// order, for building facet option lists.
func Tags(resources []Resource) []string {
	var out []string
	for _, r := range resources {
		for _, tag := range r.Tags {
			out = appendUnique(out, tag)
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return list
		}
	}
	return append(list, v)
}
