package resource

import (
	"reflect"
	"testing"
)

var testResources = []Resource{
	{ID: 1, Title: "Intro to React", Description: "Frontend basics", Type: TypeVideo,
		Tags: []string{"react", "frontend"}, Recommended: true},
	{ID: 2, Title: "SQL Performance", Description: "Query tuning guide", Type: TypeArticle,
		Tags: []string{"databases"}},
	{ID: 3, Title: "Go by Example", Description: "Hands-on snippets", Type: TypeCode,
		Tags: []string{"go", "backend"}, Recommended: true},
	{ID: 4, Title: "System Design Primer", Type: TypeDocumentation,
		Tags: []string{"backend", "architecture"}},
}

func resourceIDs(rs []Resource) []int {
	ids := make([]int, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilter(t *testing.T) {
	bPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name   string
		filter QueryFilter
		want   []int
	}{
		{name: "empty filter", filter: QueryFilter{}, want: []int{1, 2, 3, 4}},
		{name: "all sentinel", filter: QueryFilter{Type: "all", Tag: "all"}, want: []int{1, 2, 3, 4}},
		{name: "search on title", filter: QueryFilter{Search: "sql"}, want: []int{2}},
		{name: "search on description", filter: QueryFilter{Search: "tuning"}, want: []int{2}},
		{name: "search on tag", filter: QueryFilter{Search: "front"}, want: []int{1}},
		{name: "type facet", filter: QueryFilter{Type: TypeCode}, want: []int{3}},
		{name: "tag facet is case-insensitive", filter: QueryFilter{Tag: "Backend"}, want: []int{3, 4}},
		{name: "recommended only", filter: QueryFilter{Recommended: bPtr(true)}, want: []int{1, 3}},
		{name: "combined", filter: QueryFilter{Tag: "backend", Recommended: bPtr(true)}, want: []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resourceIDs(Filter(testResources, tt.filter)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestTags(t *testing.T) {
	want := []string{"react", "frontend", "databases", "go", "backend", "architecture"}
	if got := Tags(testResources); !reflect.DeepEqual(got, want) {
		t.Errorf("Tags() = %v; want %v", got, want)
	}
}

func TestNewResource_Validate(t *testing.T) {
	nr := NewResource{Title: " Intro ", URL: "https://example.com/intro", Type: TypeArticle}
	if err := nr.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	tests := []struct {
		name string
		nr   NewResource
	}{
		{name: "missing title", nr: NewResource{URL: "https://example.com", Type: TypeArticle}},
		{name: "bad url", nr: NewResource{Title: "T", URL: "nope", Type: TypeArticle}},
		{name: "unknown type", nr: NewResource{Title: "T", URL: "https://example.com", Type: "podcast"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.nr.Validate(); err == nil {
				t.Error("Validate() passed; want error")
			}
		})
	}
}
