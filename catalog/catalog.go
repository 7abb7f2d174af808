// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package catalog holds the fixed district, mandal, and village reference data.
package catalog

import (
	"slices"

	"github.com/mdhender/rythuvedika/model"
)

// District is a district and its mandals, in display order.
type District struct {
	Name    string   `json:"name"`
	Mandals []Mandal `json:"mandals"`
}

// Mandal is a mandal and its villages, in display order.
type Mandal struct {
	Name     string   `json:"name"`
	Villages []string `json:"villages"`
}

// Catalog is a read-only district → mandal → village mapping.
type Catalog struct {
	districts []District
}

// New returns a catalog over the given districts.
// The caller must not modify the slice afterwards.
func New(districts []District) *Catalog {
	return &Catalog{districts: districts}
}

// Default returns the catalog served by the application.
func Default() *Catalog {
	return defaultCatalog
}

// Districts returns the district names in display order.
func (c *Catalog) Districts() []string {
	names := make([]string, 0, len(c.districts))
	for _, d := range c.districts {
		names = append(names, d.Name)
	}
	return names
}

// Mandals returns the mandal names for a district, or nil if the district is unknown.
func (c *Catalog) Mandals(district string) []string {
	d := c.district(district)
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Mandals))
	for _, m := range d.Mandals {
		names = append(names, m.Name)
	}
	return names
}

// Villages returns the villages for a district and mandal, or nil if the pair is unknown.
func (c *Catalog) Villages(district, mandal string) []string {
	m := c.mandal(district, mandal)
	if m == nil {
		return nil
	}
	return slices.Clone(m.Villages)
}

func (c *Catalog) HasDistrict(district string) bool {
	return c.district(district) != nil
}

func (c *Catalog) HasMandal(district, mandal string) bool {
	return c.mandal(district, mandal) != nil
}

func (c *Catalog) HasVillage(district, mandal, village string) bool {
	m := c.mandal(district, mandal)
	return m != nil && slices.Contains(m.Villages, village)
}

// Valid reports whether all three parts of the location are set and the
// village belongs to the mandal of the district.
func (c *Catalog) Valid(loc model.Location) bool {
	if loc.District == "" || loc.Mandal == "" || loc.Village == "" {
		return false
	}
	return c.HasVillage(loc.District, loc.Mandal, loc.Village)
}

// Tree returns a copy of the full catalog, for export.
func (c *Catalog) Tree() []District {
	out := make([]District, 0, len(c.districts))
	for _, d := range c.districts {
		cp := District{Name: d.Name, Mandals: make([]Mandal, 0, len(d.Mandals))}
		for _, m := range d.Mandals {
			cp.Mandals = append(cp.Mandals, Mandal{Name: m.Name, Villages: slices.Clone(m.Villages)})
		}
		out = append(out, cp)
	}
	return out
}

func (c *Catalog) district(name string) *District {
	for i := range c.districts {
		if c.districts[i].Name == name {
			return &c.districts[i]
		}
	}
	return nil
}

func (c *Catalog) mandal(district, mandal string) *Mandal {
	d := c.district(district)
	if d == nil {
		return nil
	}
	for i := range d.Mandals {
		if d.Mandals[i].Name == mandal {
			return &d.Mandals[i]
		}
	}
	return nil
}
