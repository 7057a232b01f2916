package service

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/logger"
	"eventdesk/internal/model"
	"eventdesk/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := logger.New(logger.Config{Output: io.Discard})
	st := store.New(store.NewSequenceIDGenerator())
	return New(st, log, filepath.Join(t.TempDir(), "data.json"))
}

func validEvent() model.CreateEventRequest {
	return model.CreateEventRequest{
		Title:    "Tech Conference 2025",
		Date:     "2025-12-15",
		Venue:    "Convention Center",
		Capacity: 200,
		Category: "Technology",
	}
}

func TestCreateEventRejectsNonPositiveCapacity(t *testing.T) {
	svc := newTestService(t)

	for _, capacity := range []int{0, -1, -200} {
		req := validEvent()
		req.Capacity = capacity
		_, err := svc.CreateEvent(req)
		require.Error(t, err, "capacity %d", capacity)
		assert.Contains(t, err.Error(), "capacity")
	}
	assert.Empty(t, svc.ListEvents())
}

func TestCreateEventRejectsBlankTitle(t *testing.T) {
	svc := newTestService(t)

	req := validEvent()
	req.Title = "   "
	_, err := svc.CreateEvent(req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestCreateEventTrimsTitle(t *testing.T) {
	svc := newTestService(t)

	event, err := svc.CreateEvent(model.CreateEventRequest{
		Title:    "  Music Festival  ",
		Capacity: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, "Music Festival", event.Title)
}

func TestRegisterAttendeeNormalisesEmail(t *testing.T) {
	svc := newTestService(t)

	attendee, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name:  "Alice",
		Email: "  Alice@Example.COM ",
		Phone: "anything goes here",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", attendee.Email)
	assert.Equal(t, "anything goes here", attendee.Phone)
}

func TestRegisterAttendeeRejectsMalformedInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name: "", Email: "alice@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	_, err = svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name: "Alice", Email: "not-an-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestBookPassesStoreErrorsThrough(t *testing.T) {
	svc := newTestService(t)
	event, err := svc.CreateEvent(validEvent())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Book("ATT9999", event.ID), store.ErrAttendeeNotFound)

	attendee, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name: "Alice", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Book(attendee.ID, event.ID))
	assert.ErrorIs(t, svc.Book(attendee.ID, event.ID), store.ErrAlreadyBooked)
}

func TestBookAndCancelRequireIdentifiers(t *testing.T) {
	svc := newTestService(t)

	assert.Error(t, svc.Book("", "EVT0001"))
	assert.Error(t, svc.Book("ATT0001", ""))
	assert.Error(t, svc.Cancel("", ""))
}

func TestEventReportOccupancy(t *testing.T) {
	svc := newTestService(t)
	event, err := svc.CreateEvent(validEvent())
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		attendee, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
			Name: "Attendee", Email: "attendee@example.com",
		})
		require.NoError(t, err)
		require.NoError(t, svc.Book(attendee.ID, event.ID))
	}

	report, err := svc.EventReport(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, report.OccupancyRate)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	event, err := svc.CreateEvent(validEvent())
	require.NoError(t, err)
	attendee, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name: "Alice", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Book(attendee.ID, event.ID))

	require.NoError(t, svc.Save())

	// Booking made after the save disappears when the snapshot is loaded
	// back: load fully replaces in-memory state.
	require.NoError(t, svc.Cancel(attendee.ID, event.ID))
	loaded, err := svc.Load()
	require.NoError(t, err)
	require.True(t, loaded)

	restored, err := svc.GetEvent(event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{attendee.ID}, restored.RegisteredAttendees)
}

func TestLoadMissingFileKeepsCurrentData(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CreateEvent(validEvent())
	require.NoError(t, err)

	loaded, err := svc.Load()

	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Len(t, svc.ListEvents(), 1)
}
