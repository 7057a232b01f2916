// Package seed populates a fresh store with demonstration data, either the
// built-in sample events or a YAML fixture file.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventdesk/internal/model"
	"eventdesk/internal/service"
)

// Fixture describes seed data. Bookings reference events and attendees by
// their zero-based position in the fixture, since identifiers are only
// assigned at creation time.
type Fixture struct {
	Events    []EventFixture    `yaml:"events"`
	Attendees []AttendeeFixture `yaml:"attendees"`
	Bookings  []BookingFixture  `yaml:"bookings"`
}

// EventFixture is one event to create.
type EventFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Venue       string `yaml:"venue"`
	Capacity    int    `yaml:"capacity"`
	Category    string `yaml:"category"`
}

// AttendeeFixture is one attendee to register.
type AttendeeFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone"`
}

// BookingFixture links an attendee to an event by fixture position.
type BookingFixture struct {
	Attendee int `yaml:"attendee"`
	Event    int `yaml:"event"`
}

// Default returns the built-in demonstration events.
func Default() Fixture {
	return Fixture{
		Events: []EventFixture{
			{
				Title:       "Tech Conference 2025",
				Description: "Annual technology conference featuring AI and ML talks",
				Date:        "2025-12-15",
				Time:        "09:00 AM",
				Venue:       "Convention Center",
				Capacity:    200,
				Category:    "Technology",
			},
			{
				Title:       "Music Festival",
				Description: "Live music performances by popular artists",
				Date:        "2025-12-20",
				Time:        "06:00 PM",
				Venue:       "Open Air Stadium",
				Capacity:    500,
				Category:    "Entertainment",
			},
			{
				Title:       "Startup Pitch Day",
				Description: "Startup founders pitch their ideas to investors",
				Date:        "2025-12-10",
				Time:        "10:00 AM",
				Venue:       "Business Hub",
				Capacity:    100,
				Category:    "Business",
			},
		},
	}
}

// LoadFile parses a YAML fixture from path.
func LoadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read seed file: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// Apply creates the fixture's events, attendees, and bookings through the
// service, so seed data goes through the same validation as user input.
func Apply(svc *service.Service, f Fixture) error {
	eventIDs := make([]string, 0, len(f.Events))
	for i, ef := range f.Events {
		event, err := svc.CreateEvent(model.CreateEventRequest{
			Title:       ef.Title,
			Description: ef.Description,
			Date:        ef.Date,
			Time:        ef.Time,
			Venue:       ef.Venue,
			Capacity:    ef.Capacity,
			Category:    ef.Category,
		})
		if err != nil {
			return fmt.Errorf("seed event %d: %w", i, err)
		}
		eventIDs = append(eventIDs, event.ID)
	}

	attendeeIDs := make([]string, 0, len(f.Attendees))
	for i, af := range f.Attendees {
		attendee, err := svc.RegisterAttendee(model.RegisterAttendeeRequest{
			Name:  af.Name,
			Email: af.Email,
			Phone: af.Phone,
		})
		if err != nil {
			return fmt.Errorf("seed attendee %d: %w", i, err)
		}
		attendeeIDs = append(attendeeIDs, attendee.ID)
	}

	for i, bf := range f.Bookings {
		if bf.Attendee < 0 || bf.Attendee >= len(attendeeIDs) {
			return fmt.Errorf("seed booking %d: attendee index %d out of range", i, bf.Attendee)
		}
		if bf.Event < 0 || bf.Event >= len(eventIDs) {
			return fmt.Errorf("seed booking %d: event index %d out of range", i, bf.Event)
		}
		if err := svc.Book(attendeeIDs[bf.Attendee], eventIDs[bf.Event]); err != nil {
			return fmt.Errorf("seed booking %d: %w", i, err)
		}
	}
	return nil
}
