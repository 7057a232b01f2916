package seed

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/logger"
	"eventdesk/internal/service"
	"eventdesk/internal/store"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	log := logger.New(logger.Config{Output: io.Discard})
	st := store.New(store.NewSequenceIDGenerator())
	return service.New(st, log, filepath.Join(t.TempDir(), "data.json"))
}

func TestApplyDefaultFixture(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, Apply(svc, Default()))

	events := svc.ListEvents()
	require.Len(t, events, 3)
	assert.Equal(t, "Tech Conference 2025", events[0].Title)
	assert.Equal(t, "Music Festival", events[1].Title)
	assert.Equal(t, "Startup Pitch Day", events[2].Title)
	assert.Equal(t, 200, events[0].Capacity)
}

func TestLoadFileAndApply(t *testing.T) {
	fixture := `
events:
  - title: Board Games Night
    date: "2026-01-10"
    time: "07:00 PM"
    venue: Community Hall
    capacity: 30
    category: Social
attendees:
  - name: Alice
    email: alice@example.com
    phone: "555-0100"
  - name: Bob
    email: bob@example.com
    phone: "555-0101"
bookings:
  - attendee: 0
    event: 0
  - attendee: 1
    event: 0
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	parsed, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, parsed.Events, 1)
	require.Len(t, parsed.Attendees, 2)
	require.Len(t, parsed.Bookings, 2)

	svc := newTestService(t)
	require.NoError(t, Apply(svc, parsed))

	event, err := svc.GetEvent("EVT0001")
	require.NoError(t, err)
	assert.Equal(t, "Board Games Night", event.Title)
	assert.Equal(t, []string{"ATT0001", "ATT0002"}, event.RegisteredAttendees)
}

func TestApplyRejectsOutOfRangeBooking(t *testing.T) {
	svc := newTestService(t)
	fixture := Default()
	fixture.Bookings = []BookingFixture{{Attendee: 0, Event: 0}}

	err := Apply(svc, fixture)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestApplyRejectsInvalidSeedEvent(t *testing.T) {
	svc := newTestService(t)
	fixture := Fixture{Events: []EventFixture{{Title: "Broken", Capacity: 0}}}

	assert.Error(t, Apply(svc, fixture))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
