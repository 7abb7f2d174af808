// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package templates_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/mdhender/rythuvedika/model"
	"github.com/mdhender/rythuvedika/query"
	"github.com/mdhender/rythuvedika/web/templates"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func mustContain(t *testing.T, html string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}

var sample = model.Complaint{
	ID:          7,
	District:    "Warangal",
	Mandal:      "Geesugonda",
	Village:     "Gorrekunta",
	Description: `Pump <script>alert("x")</script> failed`,
	Name:        "Ravi & Sons",
	Mobile:      "+91-9876543210",
	Status:      model.StatusInProgress,
	CreatedAt:   time.Date(2024, 7, 21, 10, 30, 0, 0, time.UTC),
}

func TestLayout_Toggle(t *testing.T) {
	html := renderString(t, templates.Layout(templates.LayoutData{View: templates.ViewAdmin, Version: "1.2.3"}, templates.ErrorPage("oops")))
	mustContain(t, html,
		`<a href="/admin" class="nav active" aria-current="page">Admin</a>`,
		`<a href="/" class="nav">User</a>`,
		"oops", "v1.2.3",
	)
}

func TestComplaintList_Escapes(t *testing.T) {
	html := renderString(t, templates.ComplaintList([]model.Complaint{sample}))
	if strings.Contains(html, "<script>") {
		t.Errorf("description must be escaped")
	}
	mustContain(t, html, "#7", "In Progress", "status-in-progress", "Gorrekunta, Geesugonda, Warangal", "&lt;script&gt;")
}

func TestLocationSelector_Disabled(t *testing.T) {
	html := renderString(t, templates.LocationSelector(templates.LocationSelectorData{
		Districts: []string{"Adilabad", "Warangal"},
		Selected:  model.Location{District: "Warangal"},
		Mandals:   []string{"Warangal", "Geesugonda"},
	}))
	mustContain(t, html,
		`<option value="Warangal" selected>Warangal</option>`,
		`<select name="village" onchange="this.form.changed.value='village'" disabled>`,
		`<button type="submit" disabled>Save Location</button>`,
	)
}

func TestUserHome_Empty(t *testing.T) {
	html := renderString(t, templates.UserHome(templates.UserHomeData{Location: sample.Location()}))
	mustContain(t, html, "You have not raised any complaints yet.", "Gorrekunta", `href="/complaints/new"`)
}

func TestComplaintForm_States(t *testing.T) {
	d := templates.FormData{Location: sample.Location(), Name: "Ravi", Missing: []string{"Description", "Mobile"}}
	html := renderString(t, templates.ComplaintForm(d))
	mustContain(t, html, `value="Ravi"`, "Still needed: Description, Mobile", `value="submit" disabled>`)

	d = templates.FormData{Location: sample.Location(), Description: "d", Name: "n", Mobile: "+91-9876543210", CanSubmit: true, Confirming: true}
	html = renderString(t, templates.ComplaintForm(d))
	mustContain(t, html, "Confirm Submission",
		`<input type="hidden" name="mobile" value="+91-9876543210">`,
		`value="confirm">Confirm</button>`,
		`value="edit" class="secondary">Back to Edit</button>`,
		`value="cancel" class="secondary">Cancel</button>`,
	)
}

func TestLayout_Doctype(t *testing.T) {
	html := renderString(t, templates.Layout(templates.LayoutData{Flash: "saved"}, templates.ErrorPage("x")))
	if !strings.HasPrefix(html, "<!doctype html>") {
		t.Errorf("want doctype prefix, got %q", html[:min(len(html), 20)])
	}
	mustContain(t, html, `<div class="flash" role="status">saved</div>`, "<title>Rythuvedika Complaints</title>")
}

func TestAdminTable(t *testing.T) {
	d := templates.AdminData{
		Filter: query.Filter{District: "Warangal", Search: "pump"},
		Sort:   query.Sort{Key: query.SortByStatus, Direction: query.Asc},
		Rows:   []model.Complaint{sample},
		Total:  3,
	}
	html := renderString(t, templates.AdminTable(d))
	mustContain(t, html,
		"1 of 3 complaints",
		`action="/admin/complaints/7/status"`,
		`<option value="In Progress" selected>In Progress</option>`,
		`Status <span class="arrow">▲</span>`,
		`hx-target="#dashboard"`,
		"toggle=status",
		"district=Warangal",
	)

	if strings.Contains(html, `<span class="arrow">▼</span>`) {
		t.Errorf("only the sorted column carries an arrow")
	}

	d.Rows = nil
	mustContain(t, renderString(t, templates.AdminTable(d)), "No Complaints Found")
}
