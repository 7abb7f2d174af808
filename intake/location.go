// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake

import (
	"context"
	"fmt"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/model"
)

// LocationSaver commits a chosen location, normally a session.Session.
type LocationSaver interface {
	SaveLocation(ctx context.Context, loc model.Location) error
}

// LocationSelector captures a district, then a mandal of that district,
// then a village of that mandal.
type LocationSelector struct {
	catalog *catalog.Catalog
	fields  struct {
		District string `validate:"required"`
		Mandal   string `validate:"required"`
		Village  string `validate:"required"`
	}
}

func NewLocationSelector(c *catalog.Catalog) *LocationSelector {
	return &LocationSelector{catalog: c}
}

// SetDistrict selects a district and clears the mandal and village.
func (ls *LocationSelector) SetDistrict(district string) {
	ls.fields.District = district
	ls.fields.Mandal = ""
	ls.fields.Village = ""
}

// SetMandal selects a mandal and clears the village.
func (ls *LocationSelector) SetMandal(mandal string) {
	ls.fields.Mandal = mandal
	ls.fields.Village = ""
}

func (ls *LocationSelector) SetVillage(village string) {
	ls.fields.Village = village
}

func (ls *LocationSelector) Location() model.Location {
	return model.Location{District: ls.fields.District, Mandal: ls.fields.Mandal, Village: ls.fields.Village}
}

func (ls *LocationSelector) Districts() []string {
	return ls.catalog.Districts()
}

// MandalOptions is empty until a district is chosen.
func (ls *LocationSelector) MandalOptions() []string {
	if ls.fields.District == "" {
		return nil
	}
	return ls.catalog.Mandals(ls.fields.District)
}

// VillageOptions is empty until a district and mandal are chosen.
func (ls *LocationSelector) VillageOptions() []string {
	if ls.fields.District == "" || ls.fields.Mandal == "" {
		return nil
	}
	return ls.catalog.Villages(ls.fields.District, ls.fields.Mandal)
}

// CanSubmit reports whether all three fields are set and the village
// belongs to the chosen district and mandal.
func (ls *LocationSelector) CanSubmit() bool {
	if validate.Struct(ls.fields) != nil {
		return false
	}
	return ls.catalog.Valid(ls.Location())
}

// Submit commits the location to the saver.
func (ls *LocationSelector) Submit(ctx context.Context, saver LocationSaver) (model.Location, error) {
	if err := validate.Struct(ls.fields); err != nil {
		return model.Location{}, fmt.Errorf("%w: missing %v", ErrIncomplete, missingFields(err))
	}
	loc := ls.Location()
	if !ls.catalog.Valid(loc) {
		return model.Location{}, fmt.Errorf("%w: %s / %s / %s is not in the catalog", ErrIncomplete, loc.District, loc.Mandal, loc.Village)
	}
	if err := saver.SaveLocation(ctx, loc); err != nil {
		return model.Location{}, err
	}
	return loc, nil
}
