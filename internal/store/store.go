// Package store implements the in-memory booking registry: events, attendees,
// and the many-to-many booking relation between them. It is the data layer of
// the system; validation of user input belongs to the service layer above it.
//
// The store is not safe for concurrent use. Every mutation either completes
// fully or leaves the store untouched, so the mirrored booking lists on the
// event and attendee sides never diverge.
package store

import (
	"errors"
	"math"
	"slices"
	"strings"

	"eventdesk/internal/model"
)

// ErrEventNotFound is returned when an event identifier is unknown.
var ErrEventNotFound = errors.New("event not found")

// ErrAttendeeNotFound is returned when an attendee identifier is unknown.
var ErrAttendeeNotFound = errors.New("attendee not found")

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("event is fully booked")

// ErrAlreadyBooked is returned when the attendee already holds a booking for
// the event.
var ErrAlreadyBooked = errors.New("attendee is already booked for this event")

// ErrBookingNotFound is returned by Cancel when no booking exists between the
// attendee and the event.
var ErrBookingNotFound = errors.New("no booking found for this event")

// BookingStore is an in-memory registry of events and attendees keyed by
// their generated identifiers. The order slices record creation order, which
// map iteration would not preserve.
type BookingStore struct {
	ids IDGenerator

	events        map[string]*model.Event
	attendees     map[string]*model.Attendee
	eventOrder    []string
	attendeeOrder []string
}

// New returns an empty store drawing identifiers from ids.
func New(ids IDGenerator) *BookingStore {
	return &BookingStore{
		ids:       ids,
		events:    make(map[string]*model.Event),
		attendees: make(map[string]*model.Attendee),
	}
}

// CreateEvent inserts a new event with an empty booking list and returns it.
func (s *BookingStore) CreateEvent(req model.CreateEventRequest) *model.Event {
	event := &model.Event{
		ID:                  s.ids.NextEventID(),
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		Time:                req.Time,
		Venue:               req.Venue,
		Capacity:            req.Capacity,
		Category:            req.Category,
		RegisteredAttendees: []string{},
	}
	s.events[event.ID] = event
	s.eventOrder = append(s.eventOrder, event.ID)
	return event
}

// RegisterAttendee inserts a new attendee with an empty booking list and
// returns it.
func (s *BookingStore) RegisterAttendee(req model.RegisterAttendeeRequest) *model.Attendee {
	attendee := &model.Attendee{
		ID:               s.ids.NextAttendeeID(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RegisteredEvents: []string{},
	}
	s.attendees[attendee.ID] = attendee
	s.attendeeOrder = append(s.attendeeOrder, attendee.ID)
	return attendee
}

// Book creates the booking edge between an attendee and an event.
//
// Preconditions are checked in a fixed order: attendee exists, event exists,
// event has capacity, booking does not already exist. A failed precondition
// returns the matching sentinel error and leaves both records untouched.
func (s *BookingStore) Book(attendeeID, eventID string) error {
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return ErrAttendeeNotFound
	}
	event, ok := s.events[eventID]
	if !ok {
		return ErrEventNotFound
	}
	if event.IsFull() {
		return ErrEventFull
	}
	if slices.Contains(attendee.RegisteredEvents, eventID) {
		return ErrAlreadyBooked
	}

	// All checks passed; append to both sides together so the mirrored
	// lists stay consistent.
	event.RegisteredAttendees = append(event.RegisteredAttendees, attendeeID)
	attendee.RegisteredEvents = append(attendee.RegisteredEvents, eventID)
	return nil
}

// Cancel removes the booking edge between an attendee and an event. Unknown
// identifiers are reported individually; a missing edge returns
// ErrBookingNotFound. Rejected calls leave both records untouched.
func (s *BookingStore) Cancel(attendeeID, eventID string) error {
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return ErrAttendeeNotFound
	}
	event, ok := s.events[eventID]
	if !ok {
		return ErrEventNotFound
	}
	if !slices.Contains(attendee.RegisteredEvents, eventID) {
		return ErrBookingNotFound
	}

	event.RegisteredAttendees = remove(event.RegisteredAttendees, attendeeID)
	attendee.RegisteredEvents = remove(attendee.RegisteredEvents, eventID)
	return nil
}

// GetEvent returns the event with the given identifier.
func (s *BookingStore) GetEvent(eventID string) (*model.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// GetAttendee returns the attendee with the given identifier.
func (s *BookingStore) GetAttendee(attendeeID string) (*model.Attendee, error) {
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return nil, ErrAttendeeNotFound
	}
	return attendee, nil
}

// ListEvents returns all events in creation order.
func (s *BookingStore) ListEvents() []*model.Event {
	events := make([]*model.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		events = append(events, s.events[id])
	}
	return events
}

// ListAttendees returns all attendees in creation order.
func (s *BookingStore) ListAttendees() []*model.Attendee {
	attendees := make([]*model.Attendee, 0, len(s.attendeeOrder))
	for _, id := range s.attendeeOrder {
		attendees = append(attendees, s.attendees[id])
	}
	return attendees
}

// SearchEvents returns the events whose title or category contains keyword,
// case-insensitively, in creation order. An event matching on both fields
// appears once.
func (s *BookingStore) SearchEvents(keyword string) []*model.Event {
	keyword = strings.ToLower(keyword)
	var results []*model.Event
	for _, id := range s.eventOrder {
		event := s.events[id]
		if strings.Contains(strings.ToLower(event.Title), keyword) ||
			strings.Contains(strings.ToLower(event.Category), keyword) {
			results = append(results, event)
		}
	}
	return results
}

// Report summarises an event's bookings. The occupancy rate is a percentage
// rounded to one decimal place; a zero-capacity event reports 0 rather than
// dividing by zero. The roster lists attendees in booking order.
func (s *BookingStore) Report(eventID string) (*model.EventReport, error) {
	event, ok := s.events[eventID]
	if !ok {
		return nil, ErrEventNotFound
	}

	registered := len(event.RegisteredAttendees)
	var rate float64
	if event.Capacity > 0 {
		rate = math.Round(float64(registered)/float64(event.Capacity)*1000) / 10
	}

	report := &model.EventReport{
		EventID:        event.ID,
		Title:          event.Title,
		Capacity:       event.Capacity,
		Registered:     registered,
		AvailableSeats: event.AvailableSeats(),
		OccupancyRate:  rate,
	}
	for _, attendeeID := range event.RegisteredAttendees {
		if attendee, ok := s.attendees[attendeeID]; ok {
			report.Attendees = append(report.Attendees, model.AttendeeSummary{
				Name:  attendee.Name,
				Email: attendee.Email,
			})
		}
	}
	return report, nil
}

// Restore replaces the store's entire contents with the given records, in the
// given order. Nil booking lists are normalised to empty ones, and every
// restored identifier is reported to the generator so later allocations do
// not collide.
func (s *BookingStore) Restore(events []*model.Event, attendees []*model.Attendee) {
	s.events = make(map[string]*model.Event, len(events))
	s.attendees = make(map[string]*model.Attendee, len(attendees))
	s.eventOrder = s.eventOrder[:0]
	s.attendeeOrder = s.attendeeOrder[:0]

	for _, event := range events {
		if event.RegisteredAttendees == nil {
			event.RegisteredAttendees = []string{}
		}
		s.events[event.ID] = event
		s.eventOrder = append(s.eventOrder, event.ID)
		s.ids.Observe(event.ID)
	}
	for _, attendee := range attendees {
		if attendee.RegisteredEvents == nil {
			attendee.RegisteredEvents = []string{}
		}
		s.attendees[attendee.ID] = attendee
		s.attendeeOrder = append(s.attendeeOrder, attendee.ID)
		s.ids.Observe(attendee.ID)
	}
}

// remove deletes the first occurrence of v, preserving order.
func remove(list []string, v string) []string {
	if i := slices.Index(list, v); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
