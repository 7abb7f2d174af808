// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package query

import (
	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/model"
)

// Admin is the state of the administrator dashboard: the filter inputs and
// the active sort.
type Admin struct {
	catalog *catalog.Catalog
	filter  Filter
	sort    Sort
}

// NewAdmin returns a dashboard with no filters, sorted newest first.
func NewAdmin(c *catalog.Catalog) *Admin {
	return &Admin{
		catalog: c,
		sort:    Sort{Key: SortByCreatedAt, Direction: Desc},
	}
}

func (a *Admin) Filter() Filter {
	return a.filter
}

func (a *Admin) Sort() Sort {
	return a.sort
}

// SetDistrict changes the district filter and always clears the mandal filter.
func (a *Admin) SetDistrict(district string) {
	a.filter.District = district
	a.filter.Mandal = ""
}

func (a *Admin) SetMandal(mandal string) {
	a.filter.Mandal = mandal
}

func (a *Admin) SetSearch(q string) {
	a.filter.Search = q
}

// SetSort restores a sort, e.g. from a request.
func (a *Admin) SetSort(s Sort) {
	a.sort = s
}

// ToggleSort flips the direction when key is already active, otherwise it
// switches to key in descending order.
func (a *Admin) ToggleSort(key SortKey) {
	if key == a.sort.Key {
		if a.sort.Direction == Asc {
			a.sort.Direction = Desc
		} else {
			a.sort.Direction = Asc
		}
		return
	}
	a.sort = Sort{Key: key, Direction: Desc}
}

// Districts returns the district filter options.
func (a *Admin) Districts() []string {
	return a.catalog.Districts()
}

// MandalOptions returns the mandals of the selected district, or nil when
// no district is selected.
func (a *Admin) MandalOptions() []string {
	if a.filter.District == "" {
		return nil
	}
	return a.catalog.Mandals(a.filter.District)
}

// Apply computes the dashboard rows from the full collection.
func (a *Admin) Apply(complaints []model.Complaint) []model.Complaint {
	return Apply(complaints, a.filter, a.sort)
}
