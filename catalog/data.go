// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package catalog

var defaultCatalog = New([]District{
	{Name: "Adilabad", Mandals: []Mandal{
		{Name: "Adilabad (Urban)", Villages: []string{"Adilabad", "Dasnapur", "Anukunta"}},
		{Name: "Jainath", Villages: []string{"Jainath", "Bela", "Sirikonda"}},
		{Name: "Tamsi", Villages: []string{"Tamsi", "Gona", "Kapparla"}},
	}},
	{Name: "Karimnagar", Mandals: []Mandal{
		{Name: "Karimnagar (Urban)", Villages: []string{"Karimnagar", "Rekurthi", "Alugunur"}},
		{Name: "Ganneruvaram", Villages: []string{"Ganneruvaram", "Gundlapalli", "Jangapalli"}},
		{Name: "Manakondur", Villages: []string{"Manakondur", "Vemulawada", "GATTUDUDDENAPALLY"}},
	}},
	{Name: "Warangal", Mandals: []Mandal{
		{Name: "Warangal", Villages: []string{"Warangal", "Hanamkonda", "Kazipet"}},
		{Name: "Geesugonda", Villages: []string{"Geesugonda", "Gorrekunta", "Machapur"}},
		{Name: "Wardhannapet", Villages: []string{"Wardhannapet", "Inavole", "Damera"}},
	}},
})
