// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intake_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/mdhender/rythuvedika/catalog"
	"github.com/mdhender/rythuvedika/intake"
	"github.com/mdhender/rythuvedika/model"
)

type savedLocation struct {
	loc   model.Location
	calls int
}

func (s *savedLocation) SaveLocation(_ context.Context, loc model.Location) error {
	s.loc = loc
	s.calls++
	return nil
}

func TestLocationSelector_Dependencies(t *testing.T) {
	ls := intake.NewLocationSelector(catalog.Default())
	if ls.MandalOptions() != nil || ls.VillageOptions() != nil {
		t.Errorf("options must be empty before a district is chosen")
	}

	ls.SetDistrict("Warangal")
	if got, want := ls.MandalOptions(), []string{"Warangal", "Geesugonda", "Wardhannapet"}; !slices.Equal(got, want) {
		t.Errorf("mandal options: want %v, got %v", want, got)
	}
	if ls.VillageOptions() != nil {
		t.Errorf("village options must be empty before a mandal is chosen")
	}

	ls.SetMandal("Geesugonda")
	ls.SetVillage("Gorrekunta")
	if !ls.CanSubmit() {
		t.Fatalf("complete location: want CanSubmit")
	}

	ls.SetMandal("Warangal")
	if got := ls.Location().Village; got != "" {
		t.Errorf("changing mandal must clear village, got %q", got)
	}
	ls.SetVillage("Kazipet")
	ls.SetDistrict("Adilabad")
	if loc := ls.Location(); loc.Mandal != "" || loc.Village != "" {
		t.Errorf("changing district must clear mandal and village, got %+v", loc)
	}
	if ls.CanSubmit() {
		t.Errorf("district only: want !CanSubmit")
	}
}

func TestLocationSelector_RejectsForeignVillage(t *testing.T) {
	ls := intake.NewLocationSelector(catalog.Default())
	ls.SetDistrict("Warangal")
	ls.SetMandal("Geesugonda")
	ls.SetVillage("Bela")
	if ls.CanSubmit() {
		t.Errorf("village outside the mandal: want !CanSubmit")
	}
	saver := &savedLocation{}
	if _, err := ls.Submit(context.Background(), saver); !errors.Is(err, intake.ErrIncomplete) {
		t.Errorf("submit: want ErrIncomplete, got %v", err)
	}
	if saver.calls != 0 {
		t.Errorf("rejected location must not be saved")
	}
}

func TestLocationSelector_Submit(t *testing.T) {
	ls := intake.NewLocationSelector(catalog.Default())
	saver := &savedLocation{}
	if _, err := ls.Submit(context.Background(), saver); !errors.Is(err, intake.ErrIncomplete) {
		t.Errorf("empty submit: want ErrIncomplete, got %v", err)
	}

	ls.SetDistrict("Karimnagar")
	ls.SetMandal("Manakondur")
	ls.SetVillage("Vemulawada")
	loc, err := ls.Submit(context.Background(), saver)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := model.Location{District: "Karimnagar", Mandal: "Manakondur", Village: "Vemulawada"}
	if loc != want || saver.loc != want || saver.calls != 1 {
		t.Errorf("submit: want %+v saved once, got %+v / %+v (%d calls)", want, loc, saver.loc, saver.calls)
	}
}
