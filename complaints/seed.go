// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package complaints

import (
	"time"

	"github.com/mdhender/rythuvedika/model"
)

// SeedNextID is the counter that goes with the seed records.
const SeedNextID = 4

// Seed returns the records a fresh installation starts with.
// Seed mobile numbers predate normalization and are kept as entered.
func Seed() []model.Complaint {
	return []model.Complaint{
		{
			ID:          1,
			District:    "Karimnagar",
			Mandal:      "Karimnagar (Urban)",
			Village:     "Rekurthi",
			Description: "Irrigation water supply is inconsistent. Pumps are not working correctly.",
			Name:        "Ramesh Kumar",
			Mobile:      "9876543210",
			Email:       "ramesh.k@example.com",
			Status:      model.StatusResolved,
			CreatedAt:   time.Date(2023, 10, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			District:    "Warangal",
			Mandal:      "Geesugonda",
			Village:     "Gorrekunta",
			Description: "Request for soil testing services. Haven't received a visit from the agricultural officer.",
			Name:        "Sunitha Reddy",
			Mobile:      "9123456780",
			Email:       "sunitha.r@example.com",
			Status:      model.StatusInProgress,
			CreatedAt:   time.Date(2023, 10, 22, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          3,
			District:    "Adilabad",
			Mandal:      "Jainath",
			Village:     "Bela",
			Description: "Fertilizer subsidy has not been credited to my account for the last quarter.",
			Name:        "Anand Rao",
			Mobile:      "9988776655",
			Email:       "anand.rao@example.com",
			Status:      model.StatusPending,
			CreatedAt:   time.Date(2023, 10, 25, 9, 15, 0, 0, time.UTC),
		},
	}
}
