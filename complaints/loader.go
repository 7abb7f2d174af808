// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package complaints

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mdhender/rythuvedika/model"
	"github.com/spf13/afero"
)

// seedFile is the on-disk seed format. NextID may be omitted.
type seedFile struct {
	NextID     int             `json:"nextId,omitempty"`
	Complaints []jsonComplaint `json:"complaints"`
}

// jsonComplaint accepts the status in any form model.ParseStatus knows.
type jsonComplaint struct {
	ID          int       `json:"id"`
	District    string    `json:"district"`
	Mandal      string    `json:"mandal"`
	Village     string    `json:"village"`
	Description string    `json:"description"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoadSeedFile reads replacement seed records for WithSeed.
// Ids must be positive and unique. The counter defaults to one past the
// largest id and may not be lower than that.
func LoadSeedFile(fs afero.Fs, path string) ([]model.Complaint, int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, 0, fmt.Errorf("read seed file: %w", err)
	}

	var sf seedFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, 0, fmt.Errorf("parse seed json: %w", err)
	}

	maxID := 0
	seen := make(map[int]bool, len(sf.Complaints))
	list := make([]model.Complaint, 0, len(sf.Complaints))
	for i, jc := range sf.Complaints {
		if jc.ID <= 0 {
			return nil, 0, fmt.Errorf("seed %d: invalid id %d", i, jc.ID)
		} else if seen[jc.ID] {
			return nil, 0, fmt.Errorf("seed %d: duplicate id %d", i, jc.ID)
		}
		seen[jc.ID] = true
		status, err := model.ParseStatus(jc.Status)
		if err != nil {
			return nil, 0, fmt.Errorf("seed %d: %w", jc.ID, err)
		}
		list = append(list, model.Complaint{
			ID:          jc.ID,
			District:    jc.District,
			Mandal:      jc.Mandal,
			Village:     jc.Village,
			Description: jc.Description,
			Name:        jc.Name,
			Mobile:      jc.Mobile,
			Email:       jc.Email,
			Status:      status,
			CreatedAt:   jc.CreatedAt.UTC(),
		})
		maxID = max(maxID, jc.ID)
	}

	nextID := sf.NextID
	if nextID == 0 {
		nextID = maxID + 1
	} else if nextID <= maxID {
		return nil, 0, fmt.Errorf("seed nextId %d must be greater than %d", nextID, maxID)
	}
	return list, nextID, nil
}

// WriteSeedFile writes the store's current records and counter in the
// format LoadSeedFile reads.
func (s *Store) WriteSeedFile(fs afero.Fs, path string) error {
	s.mu.RLock()
	sf := seedFile{NextID: s.nextID, Complaints: make([]jsonComplaint, 0, len(s.complaints))}
	for _, c := range s.complaints {
		sf.Complaints = append(sf.Complaints, jsonComplaint{
			ID:          c.ID,
			District:    c.District,
			Mandal:      c.Mandal,
			Village:     c.Village,
			Description: c.Description,
			Name:        c.Name,
			Mobile:      c.Mobile,
			Email:       c.Email,
			Status:      string(c.Status),
			CreatedAt:   c.CreatedAt,
		})
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	if err := afero.WriteFile(fs, path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}
