// Package service implements business logic, validation, and orchestration
// between the menu front end and the booking store.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventdesk/internal/logger"
	"eventdesk/internal/model"
	"eventdesk/internal/snapshot"
	"eventdesk/internal/store"
)

// Service wraps the booking store with input validation and persistence. The
// store accepts anything; this layer is where malformed requests are
// rejected, before any state changes.
type Service struct {
	store    *store.BookingStore
	validate *validator.Validate
	log      *logger.Logger
	dataFile string
}

// New constructs a Service persisting to dataFile.
func New(st *store.BookingStore, log *logger.Logger, dataFile string) *Service {
	return &Service{
		store:    st,
		validate: validator.New(),
		log:      log,
		dataFile: dataFile,
	}
}

// CreateEvent validates the request and inserts the event. Titles are
// trimmed; capacity must be a positive integer.
func (s *Service) CreateEvent(req model.CreateEventRequest) (*model.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validate.Struct(req); err != nil {
		return nil, translate(err)
	}

	event := s.store.CreateEvent(req)
	s.log.Info("event created", "event_id", event.ID, "title", event.Title, "capacity", event.Capacity)
	return event, nil
}

// RegisterAttendee validates the request and inserts the attendee. Emails
// are trimmed and lowercased before storage; phone numbers are stored as
// given.
func (s *Service) RegisterAttendee(req model.RegisterAttendeeRequest) (*model.Attendee, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validate.Struct(req); err != nil {
		return nil, translate(err)
	}

	attendee := s.store.RegisterAttendee(req)
	s.log.Info("attendee registered", "attendee_id", attendee.ID, "email", attendee.Email)
	return attendee, nil
}

// Book creates a booking. Domain errors from the store (not found, full,
// already booked) pass through untouched so the caller can match on them.
func (s *Service) Book(attendeeID, eventID string) error {
	if attendeeID == "" || eventID == "" {
		return fmt.Errorf("attendee id and event id are required")
	}
	if err := s.store.Book(attendeeID, eventID); err != nil {
		return err
	}
	s.log.Info("booking created", "attendee_id", attendeeID, "event_id", eventID)
	return nil
}

// Cancel removes a booking, passing store errors through untouched.
func (s *Service) Cancel(attendeeID, eventID string) error {
	if attendeeID == "" || eventID == "" {
		return fmt.Errorf("attendee id and event id are required")
	}
	if err := s.store.Cancel(attendeeID, eventID); err != nil {
		return err
	}
	s.log.Info("booking cancelled", "attendee_id", attendeeID, "event_id", eventID)
	return nil
}

// GetEvent returns a single event by ID.
func (s *Service) GetEvent(eventID string) (*model.Event, error) {
	return s.store.GetEvent(eventID)
}

// GetAttendee returns a single attendee by ID.
func (s *Service) GetAttendee(attendeeID string) (*model.Attendee, error) {
	return s.store.GetAttendee(attendeeID)
}

// ListEvents returns all events in creation order.
func (s *Service) ListEvents() []*model.Event {
	return s.store.ListEvents()
}

// SearchEvents returns events matching keyword in title or category.
func (s *Service) SearchEvents(keyword string) []*model.Event {
	return s.store.SearchEvents(strings.TrimSpace(keyword))
}

// EventReport summarises one event's bookings.
func (s *Service) EventReport(eventID string) (*model.EventReport, error) {
	return s.store.Report(eventID)
}

// Save writes the whole store to the configured data file.
func (s *Service) Save() error {
	if err := snapshot.Save(s.store, s.dataFile); err != nil {
		return err
	}
	s.log.Info("data saved", "path", s.dataFile)
	return nil
}

// Load replaces the store with the configured data file's contents. A
// missing file is informational, not an error: the store is left as it was.
// Load reports whether a snapshot was found.
func (s *Service) Load() (bool, error) {
	loaded, err := snapshot.Load(s.store, s.dataFile)
	if err != nil {
		return false, err
	}
	if !loaded {
		s.log.Info("no data file found, continuing with current data", "path", s.dataFile)
		return false, nil
	}
	s.log.Info("data loaded", "path", s.dataFile)
	return true, nil
}

// translate turns validator errors into user-facing messages; anything else
// is returned as-is.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
