// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog_test

import (
	"slices"
	"testing"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/model"
)

func TestDefaultOrder(t *testing.T) {
	c := catalog.Default()
	if got, want := c.Districts(), []string{"Adilabad", "Karimnagar", "Warangal"}; !slices.Equal(got, want) {
		t.Errorf("districts: want %v, got %v", want, got)
	}
	if got, want := c.Mandals("Warangal"), []string{"Warangal", "Geesugonda", "Wardhannapet"}; !slices.Equal(got, want) {
		t.Errorf("mandals: want %v, got %v", want, got)
	}
	if got, want := c.Villages("Warangal", "Geesugonda"), []string{"Geesugonda", "Gorrekunta", "Machapur"}; !slices.Equal(got, want) {
		t.Errorf("villages: want %v, got %v", want, got)
	}
}

func TestUnknownKeys(t *testing.T) {
	c := catalog.Default()
	if got := c.Mandals("Hyderabad"); got != nil {
		t.Errorf("mandals of unknown district: want nil, got %v", got)
	}
	if got := c.Villages("Warangal", "Jainath"); got != nil {
		t.Errorf("villages of mismatched pair: want nil, got %v", got)
	}
}

func TestValid(t *testing.T) {
	c := catalog.Default()
	for _, tc := range []struct {
		loc  model.Location
		want bool
	}{
		{model.Location{District: "Warangal", Mandal: "Geesugonda", Village: "Gorrekunta"}, true},
		{model.Location{District: "Warangal", Mandal: "Geesugonda", Village: "Bela"}, false},
		{model.Location{District: "Adilabad", Mandal: "Geesugonda", Village: "Gorrekunta"}, false},
		{model.Location{District: "Warangal", Mandal: "Geesugonda"}, false},
		{model.Location{}, false},
	} {
		if got := c.Valid(tc.loc); got != tc.want {
			t.Errorf("Valid(%+v): want %v, got %v", tc.loc, tc.want, got)
		}
	}
}

func TestVillagesReturnsCopy(t *testing.T) {
	c := catalog.Default()
	v := c.Villages("Adilabad", "Jainath")
	v[0] = "changed"
	if got := c.Villages("Adilabad", "Jainath")[0]; got != "Jainath" {
		t.Errorf("catalog mutated through returned slice: got %q", got)
	}
}
