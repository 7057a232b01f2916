// Package model defines the core domain types for the event booking system.
package model

// Event represents a bookable event with a fixed seating capacity.
//
// RegisteredAttendees holds attendee IDs in booking order and never contains
// the same ID twice. The JSON tags match the on-disk snapshot format exactly.
type Event struct {
	ID                  string   `json:"event_id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Date                string   `json:"date"`
	Time                string   `json:"time"`
	Venue               string   `json:"venue"`
	Capacity            int      `json:"capacity"`
	Category            string   `json:"category"`
	RegisteredAttendees []string `json:"registered_attendees"`
}

// AvailableSeats returns the number of seats still open.
func (e *Event) AvailableSeats() int {
	return e.Capacity - len(e.RegisteredAttendees)
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return len(e.RegisteredAttendees) >= e.Capacity
}

// Attendee represents a person who can book events.
//
// RegisteredEvents holds event IDs in booking order. An event ID appears here
// if and only if this attendee's ID appears in that event's
// RegisteredAttendees list.
type Attendee struct {
	ID               string   `json:"attendee_id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	RegisteredEvents []string `json:"registered_events"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Title       string `validate:"required"`
	Description string
	Date        string
	Time        string
	Venue       string
	Capacity    int `validate:"gt=0"`
	Category    string
}

// RegisterAttendeeRequest is the payload for registering a new attendee.
// Phone is free text; the original system accepts any value there.
type RegisterAttendeeRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string
}

// EventReport summarises a single event's bookings.
type EventReport struct {
	EventID        string
	Title          string
	Capacity       int
	Registered     int
	AvailableSeats int
	// OccupancyRate is a percentage rounded to one decimal place.
	// A zero-capacity event reports 0 rather than dividing by zero.
	OccupancyRate float64
	Attendees     []AttendeeSummary
}

// AttendeeSummary is one roster line of an EventReport, in booking order.
type AttendeeSummary struct {
	Name  string
	Email string
}
