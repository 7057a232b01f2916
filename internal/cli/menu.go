// Package cli implements the interactive menu front end. It prompts, formats
// console output, and maps service failures to user-visible messages; all
// state lives behind the service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eventdesk/internal/model"
	"eventdesk/internal/service"
	"eventdesk/internal/store"
)

const rule = "============================================================"

// Menu runs the numbered menu loop against a service, reading choices from
// in and rendering to out.
type Menu struct {
	svc *service.Service
	in  *bufio.Scanner
	out io.Writer
}

// New constructs a Menu.
func New(svc *service.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops until the user picks Exit or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.prompt("\nEnter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.createEvent()
		case "2":
			m.registerAttendee()
		case "3":
			m.bookEvent()
		case "4":
			m.cancelBooking()
		case "5":
			m.viewEvent()
		case "6":
			m.viewAttendee()
		case "7":
			m.listEvents()
		case "8":
			m.searchEvents()
		case "9":
			m.eventReport()
		case "10":
			m.save()
		case "11":
			m.load()
		case "0":
			fmt.Fprintln(m.out, "\nThank you for using Event Management System!")
			return
		default:
			fmt.Fprintln(m.out, "\n✗ Invalid choice! Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintln(m.out, "EVENT MANAGEMENT SYSTEM")
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "1. Create Event")
	fmt.Fprintln(m.out, "2. Register Attendee")
	fmt.Fprintln(m.out, "3. Book Event")
	fmt.Fprintln(m.out, "4. Cancel Booking")
	fmt.Fprintln(m.out, "5. View Event Details")
	fmt.Fprintln(m.out, "6. View Attendee Details")
	fmt.Fprintln(m.out, "7. List All Events")
	fmt.Fprintln(m.out, "8. Search Events")
	fmt.Fprintln(m.out, "9. Generate Event Report")
	fmt.Fprintln(m.out, "10. Save Data")
	fmt.Fprintln(m.out, "11. Load Data")
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprintln(m.out, rule)
}

// prompt prints label and returns the next trimmed input line. ok is false
// once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) createEvent() {
	fmt.Fprintln(m.out, "\n--- Create Event ---")
	title, ok := m.prompt("Title: ")
	if !ok {
		return
	}
	description, ok := m.prompt("Description: ")
	if !ok {
		return
	}
	date, ok := m.prompt("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	timeOfDay, ok := m.prompt("Time: ")
	if !ok {
		return
	}
	venue, ok := m.prompt("Venue: ")
	if !ok {
		return
	}
	capacityText, ok := m.prompt("Capacity: ")
	if !ok {
		return
	}
	capacity, err := strconv.Atoi(capacityText)
	if err != nil {
		fmt.Fprintln(m.out, "✗ Error: capacity must be a number!")
		return
	}
	category, ok := m.prompt("Category: ")
	if !ok {
		return
	}

	event, err := m.svc.CreateEvent(model.CreateEventRequest{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        timeOfDay,
		Venue:       venue,
		Capacity:    capacity,
		Category:    category,
	})
	if err != nil {
		m.failure(err)
		return
	}
	fmt.Fprintf(m.out, "✓ Event created successfully! Event ID: %s\n", event.ID)
}

func (m *Menu) registerAttendee() {
	fmt.Fprintln(m.out, "\n--- Register Attendee ---")
	name, ok := m.prompt("Name: ")
	if !ok {
		return
	}
	email, ok := m.prompt("Email: ")
	if !ok {
		return
	}
	phone, ok := m.prompt("Phone: ")
	if !ok {
		return
	}

	attendee, err := m.svc.RegisterAttendee(model.RegisterAttendeeRequest{
		Name:  name,
		Email: email,
		Phone: phone,
	})
	if err != nil {
		m.failure(err)
		return
	}
	fmt.Fprintf(m.out, "✓ Attendee registered successfully! Attendee ID: %s\n", attendee.ID)
}

func (m *Menu) bookEvent() {
	fmt.Fprintln(m.out, "\n--- Book Event ---")
	attendeeID, ok := m.prompt("Attendee ID: ")
	if !ok {
		return
	}
	eventID, ok := m.prompt("Event ID: ")
	if !ok {
		return
	}

	if err := m.svc.Book(attendeeID, eventID); err != nil {
		m.failure(err)
		return
	}
	fmt.Fprintln(m.out, "✓ Booking confirmed!")
}

func (m *Menu) cancelBooking() {
	fmt.Fprintln(m.out, "\n--- Cancel Booking ---")
	attendeeID, ok := m.prompt("Attendee ID: ")
	if !ok {
		return
	}
	eventID, ok := m.prompt("Event ID: ")
	if !ok {
		return
	}

	if err := m.svc.Cancel(attendeeID, eventID); err != nil {
		m.failure(err)
		return
	}
	fmt.Fprintln(m.out, "✓ Booking cancelled!")
}

func (m *Menu) viewEvent() {
	eventID, ok := m.prompt("\nEnter Event ID: ")
	if !ok {
		return
	}
	event, err := m.svc.GetEvent(eventID)
	if err != nil {
		m.failure(err)
		return
	}

	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintf(m.out, "Event: %s\n", event.Title)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintf(m.out, "ID: %s\n", event.ID)
	fmt.Fprintf(m.out, "Description: %s\n", event.Description)
	fmt.Fprintf(m.out, "Date: %s\n", event.Date)
	fmt.Fprintf(m.out, "Time: %s\n", event.Time)
	fmt.Fprintf(m.out, "Venue: %s\n", event.Venue)
	fmt.Fprintf(m.out, "Category: %s\n", event.Category)
	fmt.Fprintf(m.out, "Capacity: %d\n", event.Capacity)
	fmt.Fprintf(m.out, "Registered: %d\n", len(event.RegisteredAttendees))
	fmt.Fprintf(m.out, "Available Seats: %d\n", event.AvailableSeats())
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) viewAttendee() {
	attendeeID, ok := m.prompt("\nEnter Attendee ID: ")
	if !ok {
		return
	}
	attendee, err := m.svc.GetAttendee(attendeeID)
	if err != nil {
		m.failure(err)
		return
	}

	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintf(m.out, "Attendee: %s\n", attendee.Name)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintf(m.out, "ID: %s\n", attendee.ID)
	fmt.Fprintf(m.out, "Email: %s\n", attendee.Email)
	fmt.Fprintf(m.out, "Phone: %s\n", attendee.Phone)
	fmt.Fprintf(m.out, "Registered Events: %d\n", len(attendee.RegisteredEvents))
	if len(attendee.RegisteredEvents) > 0 {
		fmt.Fprintln(m.out, "\nEvents:")
		for _, eventID := range attendee.RegisteredEvents {
			if event, err := m.svc.GetEvent(eventID); err == nil {
				fmt.Fprintf(m.out, "  - %s (%s)\n", event.Title, eventID)
			}
		}
	}
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) listEvents() {
	events := m.svc.ListEvents()
	if len(events) == 0 {
		fmt.Fprintln(m.out, "No events available.")
		return
	}

	wide := strings.Repeat("=", 80)
	fmt.Fprintln(m.out, "\n"+wide)
	fmt.Fprintf(m.out, "%-10s %-25s %-12s %-20s %-10s\n", "ID", "Title", "Date", "Venue", "Available")
	fmt.Fprintln(m.out, wide)
	for _, event := range events {
		available := fmt.Sprintf("%d/%d", event.AvailableSeats(), event.Capacity)
		fmt.Fprintf(m.out, "%-10s %-25s %-12s %-20s %-10s\n",
			event.ID, truncate(event.Title, 24), event.Date, truncate(event.Venue, 19), available)
	}
	fmt.Fprintln(m.out, wide)
}

func (m *Menu) searchEvents() {
	keyword, ok := m.prompt("\nEnter search keyword: ")
	if !ok {
		return
	}
	results := m.svc.SearchEvents(keyword)
	fmt.Fprintf(m.out, "\nFound %d event(s):\n", len(results))
	for _, event := range results {
		fmt.Fprintf(m.out, "  %s: %s\n", event.ID, event.Title)
	}
}

func (m *Menu) eventReport() {
	eventID, ok := m.prompt("\nEnter Event ID: ")
	if !ok {
		return
	}
	report, err := m.svc.EventReport(eventID)
	if err != nil {
		m.failure(err)
		return
	}

	fmt.Fprintln(m.out, "\n"+rule)
	fmt.Fprintf(m.out, "EVENT REPORT: %s\n", report.Title)
	fmt.Fprintln(m.out, rule)
	fmt.Fprintf(m.out, "Total Capacity: %d\n", report.Capacity)
	fmt.Fprintf(m.out, "Total Registered: %d\n", report.Registered)
	fmt.Fprintf(m.out, "Available Seats: %d\n", report.AvailableSeats)
	fmt.Fprintf(m.out, "Occupancy Rate: %.1f%%\n", report.OccupancyRate)
	fmt.Fprintln(m.out, "\nRegistered Attendees:")
	fmt.Fprintln(m.out, strings.Repeat("-", 60))
	for _, attendee := range report.Attendees {
		fmt.Fprintf(m.out, "%-25s %-30s\n", attendee.Name, attendee.Email)
	}
	fmt.Fprintln(m.out, rule)
}

func (m *Menu) save() {
	if err := m.svc.Save(); err != nil {
		m.failure(err)
		return
	}
	fmt.Fprintln(m.out, "✓ Data saved!")
}

func (m *Menu) load() {
	loaded, err := m.svc.Load()
	if err != nil {
		m.failure(err)
		return
	}
	if !loaded {
		fmt.Fprintln(m.out, "✗ Data file not found. Continuing with current data.")
		return
	}
	fmt.Fprintln(m.out, "✓ Data loaded!")
}

// failure renders an error as a user-facing message, mapping the store's
// sentinel errors to the wording the menu has always used.
func (m *Menu) failure(err error) {
	var msg string
	switch {
	case errors.Is(err, store.ErrAttendeeNotFound):
		msg = "Attendee not found!"
	case errors.Is(err, store.ErrEventNotFound):
		msg = "Event not found!"
	case errors.Is(err, store.ErrEventFull):
		msg = "Event is fully booked!"
	case errors.Is(err, store.ErrAlreadyBooked):
		msg = "Already registered for this event!"
	case errors.Is(err, store.ErrBookingNotFound):
		msg = "No booking found for this event!"
	default:
		msg = err.Error()
	}
	fmt.Fprintf(m.out, "✗ Error: %s\n", msg)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
