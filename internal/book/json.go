package book

import (
	"encoding/json"
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
)

type recordJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

type bookJSON struct {
	Version int          `json:"version"`
	Records []recordJSON `json:"records"`
}

// MarshalJSON writes the whole book as a versioned snapshot. Records are
// emitted in name order so identical books produce identical bytes.
func (b *AddressBook) MarshalJSON() ([]byte, error) {
	snap := bookJSON{
		Version: config.SnapshotVersion,
		Records: make([]recordJSON, 0, len(b.records)),
	}
	for _, r := range b.Records() {
		rj := recordJSON{Name: r.Name(), Phones: r.PhoneNumbers()}
		if bday, ok := r.Birthday(); ok {
			rj.Birthday = bday.String()
		}
		snap.Records = append(snap.Records, rj)
	}
	return json.Marshal(snap)
}

// UnmarshalJSON restores a snapshot. Every value goes back through its
// validating constructor, so a tampered file is rejected as a whole.
func (b *AddressBook) UnmarshalJSON(data []byte) error {
	var snap bookJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Version != config.SnapshotVersion {
		return fmt.Errorf("%s: %d", config.ErrSnapshotVersion, snap.Version)
	}

	restored := New()
	for _, rj := range snap.Records {
		r, err := NewRecord(rj.Name)
		if err != nil {
			return err
		}
		for _, p := range rj.Phones {
			if err := r.AddPhone(p); err != nil {
				return err
			}
		}
		if rj.Birthday != "" {
			bday, err := ParseStoredBirthday(rj.Birthday)
			if err != nil {
				return err
			}
			r.SetBirthday(bday)
		}
		restored.AddRecord(r)
	}

	b.records = restored.records
	return nil
}
