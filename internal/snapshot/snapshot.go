// Package snapshot persists the booking store as a whole-file JSON document.
//
// The document shape matches the original data files field for field, so
// snapshots written by earlier versions of the system load unchanged:
//
//	{"events": {"<id>": {...}}, "attendees": {"<id>": {...}}}
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"eventdesk/internal/model"
)

// Store is the part of the booking store the snapshot layer needs: ordered
// dumps for saving and a full-replace restore for loading.
type Store interface {
	ListEvents() []*model.Event
	ListAttendees() []*model.Attendee
	Restore(events []*model.Event, attendees []*model.Attendee)
}

type document struct {
	Events    map[string]*model.Event    `json:"events"`
	Attendees map[string]*model.Attendee `json:"attendees"`
}

// Save writes the store's entire contents to path, replacing any existing
// file.
func Save(s Store, path string) error {
	doc := document{
		Events:    make(map[string]*model.Event),
		Attendees: make(map[string]*model.Attendee),
	}
	for _, event := range s.ListEvents() {
		doc.Events[event.ID] = event
	}
	for _, attendee := range s.ListAttendees() {
		doc.Attendees[attendee.ID] = attendee
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load replaces the store's contents with the document at path. A missing
// file is not an error: Load returns (false, nil) and leaves the store as it
// was, so the caller can report it and continue.
//
// JSON objects carry no key order, so creation order is rebuilt by sorting
// identifiers; sequential EVT/ATT identifiers sort in creation order.
func Load(s Store, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read snapshot: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("parse snapshot: %w", err)
	}

	events := make([]*model.Event, 0, len(doc.Events))
	for _, id := range sortedKeys(doc.Events) {
		events = append(events, doc.Events[id])
	}
	attendees := make([]*model.Attendee, 0, len(doc.Attendees))
	for _, id := range sortedKeys(doc.Attendees) {
		attendees = append(attendees, doc.Attendees[id])
	}

	s.Restore(events, attendees)
	return true, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
