package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	eventIDPrefix    = "EVT"
	attendeeIDPrefix = "ATT"
)

// IDGenerator allocates identifiers for new events and attendees. It is
// injected into the store so identifier generation does not depend on store
// size and can be swapped out (e.g. for UUIDs) without touching the store.
type IDGenerator interface {
	NextEventID() string
	NextAttendeeID() string
	// Observe marks an identifier as already in use so that future
	// allocations never collide with it. Called for every record
	// restored from a snapshot.
	Observe(id string)
}

// SequenceIDGenerator produces EVT0001, ATT0001, ... style identifiers from
// two monotonic counters. Not safe for concurrent use.
type SequenceIDGenerator struct {
	events    int
	attendees int
}

// NewSequenceIDGenerator returns a generator starting at EVT0001 / ATT0001.
func NewSequenceIDGenerator() *SequenceIDGenerator {
	return &SequenceIDGenerator{}
}

// NextEventID returns the next event identifier.
func (g *SequenceIDGenerator) NextEventID() string {
	g.events++
	return fmt.Sprintf("%s%04d", eventIDPrefix, g.events)
}

// NextAttendeeID returns the next attendee identifier.
func (g *SequenceIDGenerator) NextAttendeeID() string {
	g.attendees++
	return fmt.Sprintf("%s%04d", attendeeIDPrefix, g.attendees)
}

// Observe advances the matching counter past id. Identifiers that do not
// carry a parseable sequence number (e.g. UUID-based ones from an earlier
// run) are ignored.
func (g *SequenceIDGenerator) Observe(id string) {
	switch {
	case strings.HasPrefix(id, eventIDPrefix):
		if n, err := strconv.Atoi(id[len(eventIDPrefix):]); err == nil && n > g.events {
			g.events = n
		}
	case strings.HasPrefix(id, attendeeIDPrefix):
		if n, err := strconv.Atoi(id[len(attendeeIDPrefix):]); err == nil && n > g.attendees {
			g.attendees = n
		}
	}
}

// UUIDGenerator produces collision-resistant identifiers. It keeps the
// EVT/ATT prefixes so identifiers remain self-describing, and is the scheme
// to use if event or attendee creation ever happens from more than one
// goroutine.
type UUIDGenerator struct{}

// NextEventID returns a prefixed random UUID.
func (UUIDGenerator) NextEventID() string {
	return eventIDPrefix + "-" + uuid.NewString()
}

// NextAttendeeID returns a prefixed random UUID.
func (UUIDGenerator) NextAttendeeID() string {
	return attendeeIDPrefix + "-" + uuid.NewString()
}

// Observe is a no-op; random UUIDs do not collide with restored ones.
func (UUIDGenerator) Observe(string) {}
