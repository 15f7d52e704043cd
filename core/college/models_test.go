package college

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	colleges := []College{
		{ID: 1, Name: "PESCE Mandya", Code: "PES23", Location: "Mandya Karnataka", Active: true},
		{ID: 2, Name: "VVCE Mys", Code: "VVC23", Location: "Mysore", Active: true},
		{ID: 3, Name: "MSRIT Banglore", Code: "MSR23", Location: "Bangalore", Active: false},
	}

	ids := func(cs []College) []int {
		out := make([]int, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}
	bPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name   string
		filter QueryFilter
		want   []int
	}{
		{name: "empty filter", filter: QueryFilter{}, want: []int{1, 2, 3}},
		{name: "search on name", filter: QueryFilter{Search: "pesce"}, want: []int{1}},
		{name: "search on code", filter: QueryFilter{Search: "vvc"}, want: []int{2}},
		{name: "search on location", filter: QueryFilter{Search: "bangalore"}, want: []int{3}},
		{name: "active only", filter: QueryFilter{Active: bPtr(true)}, want: []int{1, 2}},
		{name: "inactive only", filter: QueryFilter{Active: bPtr(false)}, want: []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Filter(colleges, tt.filter)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestNewCollege_Validate(t *testing.T) {
	nc := NewCollege{Name: "  PESCE Mandya  ", Code: " pes23 ", Location: "Mandya"}
	if err := nc.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if nc.Code != "PES23" {
		t.Errorf("Code = %q; want upper-cased PES23", nc.Code)
	}
	if nc.Name != "PESCE Mandya" {
		t.Errorf("Name = %q; want trimmed", nc.Name)
	}

	if err := (&NewCollege{Name: "X", Code: "a"}).Validate(); err == nil {
		t.Error("Validate() passed with a 1-char code")
	}
	if err := (&NewCollege{Code: "ABC"}).Validate(); err == nil {
		t.Error("Validate() passed without a name")
	}
}
