// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package query_test

import (
	"slices"
	"testing"
	"time"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/complaints"
	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
)

func ids(cs []model.Complaint) []int {
	out := []int{}
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestFilter_Seed(t *testing.T) {
	seed := complaints.Seed()
	for _, tc := range []struct {
		name   string
		filter query.Filter
		want   []int
	}{
		{"none", query.Filter{}, []int{1, 2, 3}},
		{"district", query.Filter{District: "Warangal"}, []int{2}},
		{"district and mandal", query.Filter{District: "Karimnagar", Mandal: "Karimnagar (Urban)"}, []int{1}},
		{"mandal mismatch", query.Filter{District: "Karimnagar", Mandal: "Geesugonda"}, []int{}},
		{"search lower", query.Filter{Search: "fertilizer"}, []int{3}},
		{"search upper", query.Filter{Search: "FERTILIZER"}, []int{3}},
		{"search name", query.Filter{Search: "sunitha"}, []int{2}},
		{"search mobile", query.Filter{Search: "99887"}, []int{3}},
		{"search and district", query.Filter{District: "Warangal", Search: "fertilizer"}, []int{}},
	} {
		got := ids(query.Apply(seed, tc.filter, query.Sort{Key: query.SortByID, Direction: query.Asc}))
		if !slices.Equal(got, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestFilter_MobileIsCaseSensitive(t *testing.T) {
	c := model.Complaint{Description: "x", Name: "y", Mobile: "+91-9876543210"}
	if !(query.Filter{Search: "+91-98"}).Match(c) {
		t.Errorf("mobile substring must match")
	}
	c.Mobile = "ext-ABC"
	if (query.Filter{Search: "abc"}).Match(c) {
		t.Errorf("mobile match must be literal")
	}
}

func TestSort_Seed(t *testing.T) {
	seed := complaints.Seed()
	for _, tc := range []struct {
		sort query.Sort
		want []int
	}{
		{query.Sort{Key: query.SortByStatus, Direction: query.Desc}, []int{3, 2, 1}},
		{query.Sort{Key: query.SortByStatus, Direction: query.Asc}, []int{1, 2, 3}},
		{query.Sort{Key: query.SortByCreatedAt, Direction: query.Asc}, []int{1, 2, 3}},
		{query.Sort{Key: query.SortByCreatedAt, Direction: query.Desc}, []int{3, 2, 1}},
		{query.Sort{Key: query.SortByID, Direction: query.Desc}, []int{3, 2, 1}},
	} {
		got := ids(query.Apply(seed, query.Filter{}, tc.sort))
		if !slices.Equal(got, tc.want) {
			t.Errorf("%s %s: want %v, got %v", tc.sort.Key, tc.sort.Direction, tc.want, got)
		}
	}
}

func TestSort_CreatedAtIsChronological(t *testing.T) {
	// same instant in different zones must not sort lexically
	ist := time.FixedZone("IST", 5*3600+1800)
	// 04:30, 05:00 and 04:45 UTC
	cs := []model.Complaint{
		{ID: 1, CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, ist)},
		{ID: 2, CreatedAt: time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{ID: 3, CreatedAt: time.Date(2024, 1, 1, 4, 45, 0, 0, time.UTC)},
	}
	got := ids(query.Apply(cs, query.Filter{}, query.Sort{Key: query.SortByCreatedAt, Direction: query.Asc}))
	if want := []int{1, 3, 2}; !slices.Equal(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestSort_StableForTies(t *testing.T) {
	cs := []model.Complaint{
		{ID: 10, Status: model.StatusPending},
		{ID: 4, Status: model.StatusResolved},
		{ID: 7, Status: model.StatusPending},
		{ID: 5, Status: model.StatusPending},
	}
	for _, dir := range []query.Direction{query.Asc, query.Desc} {
		got := ids(query.Apply(cs, query.Filter{}, query.Sort{Key: query.SortByStatus, Direction: dir}))
		var pending []int
		for _, id := range got {
			if id != 4 {
				pending = append(pending, id)
			}
		}
		if want := []int{10, 7, 5}; !slices.Equal(pending, want) {
			t.Errorf("%s: ties must keep input order: want %v, got %v", dir, want, pending)
		}
	}
}

func TestAdmin_ToggleSort(t *testing.T) {
	a := query.NewAdmin(catalog.Default())
	if s := a.Sort(); s.Key != query.SortByCreatedAt || s.Direction != query.Desc {
		t.Fatalf("default sort: want createdAt desc, got %+v", s)
	}
	a.ToggleSort(query.SortByCreatedAt)
	if s := a.Sort(); s.Direction != query.Asc {
		t.Errorf("same key: want asc, got %s", s.Direction)
	}
	a.ToggleSort(query.SortByStatus)
	if s := a.Sort(); s.Key != query.SortByStatus || s.Direction != query.Desc {
		t.Errorf("new key: want status desc, got %+v", s)
	}
	a.ToggleSort(query.SortByStatus)
	a.ToggleSort(query.SortByID)
	if s := a.Sort(); s.Key != query.SortByID || s.Direction != query.Desc {
		t.Errorf("new key after asc: want id desc, got %+v", s)
	}
}

func TestAdmin_DistrictResetsMandal(t *testing.T) {
	c := catalog.Default()
	a := query.NewAdmin(c)
	for _, district := range append(c.Districts(), "") {
		for _, prior := range []string{"", "Jainath", "Geesugonda", "not a mandal"} {
			a.SetMandal(prior)
			a.SetDistrict(district)
			if got := a.Filter().Mandal; got != "" {
				t.Errorf("SetDistrict(%q) after mandal %q: want empty mandal, got %q", district, prior, got)
			}
		}
	}
	a.SetDistrict("Warangal")
	if got, want := a.MandalOptions(), c.Mandals("Warangal"); !slices.Equal(got, want) {
		t.Errorf("mandal options: want %v, got %v", want, got)
	}
	a.SetDistrict("")
	if got := a.MandalOptions(); got != nil {
		t.Errorf("mandal options without district: want nil, got %v", got)
	}
}

func TestAdmin_Apply(t *testing.T) {
	a := query.NewAdmin(catalog.Default())
	a.SetDistrict("Warangal")
	if got := ids(a.Apply(complaints.Seed())); !slices.Equal(got, []int{2}) {
		t.Errorf("want [2], got %v", got)
	}
}

func TestMine(t *testing.T) {
	seed := complaints.Seed()
	got := ids(query.Mine(seed, []int{1, 3, 42}))
	if want := []int{3, 1}; !slices.Equal(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
	if got := query.Mine(seed, nil); len(got) != 0 {
		t.Errorf("no ids: want empty, got %v", ids(got))
	}
}

func TestParse(t *testing.T) {
	if _, err := query.ParseSortKey("name"); err == nil {
		t.Errorf("ParseSortKey(name): want error")
	}
	if k, err := query.ParseSortKey("createdAt"); err != nil || k != query.SortByCreatedAt {
		t.Errorf("ParseSortKey(createdAt): got %q, %v", k, err)
	}
	if _, err := query.ParseDirection("up"); err == nil {
		t.Errorf("ParseDirection(up): want error")
	}
}
