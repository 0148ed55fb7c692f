package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

type eventTemplate struct {
	title       string
	description string
	dayOffset   int
	hour        int
	duration    time.Duration
	attendees   []string
}

var mockEvents = []eventTemplate{
	{"Weekly Planning", "Plan tasks for the week", -1, 9, 30 * time.Minute, []string{"team@example.com"}},
	{"Client Meeting - ABC Corp", "Discuss project requirements", 0, 10, time.Hour, []string{"john@abccorp.com", "sarah@abccorp.com"}},
	{"Team Standup", "Daily team sync", 0, 15, 15 * time.Minute, []string{"dev1@company.com", "dev2@company.com", "designer@company.com"}},
	{"Project Review", "Review milestone deliverables", 1, 14, time.Hour, []string{"pm@company.com"}},
	{"Invoice Review", "Go through outstanding invoices", 2, 11, 30 * time.Minute, []string{"finance@company.com"}},
	{"Design Workshop", "Landing page redesign", 3, 13, 2 * time.Hour, []string{"designer@company.com", "client@xyzltd.com"}},
	{"Freelancer Onboarding", "Access and tooling setup", 5, 10, time.Hour, []string{"freelancer@example.com"}},
}

type calendarService struct {
	clock func() time.Time
}

// NewCalendarService создает CalendarService. События строятся относительно clock.
func NewCalendarService(clock func() time.Time) CalendarService {
	if clock == nil {
		clock = time.Now
	}
	return &calendarService{clock: clock}
}

func (s *calendarService) Events(_ context.Context) ([]*domain.CalendarEvent, error) {
	return s.generate(s.clock().UTC()), nil
}

func (s *calendarService) Upcoming(_ context.Context, limit int) ([]*domain.CalendarEvent, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	current := s.clock().UTC()
	upcoming := make([]*domain.CalendarEvent, 0, limit)
	for _, e := range s.generate(current) {
		if e.StartTime.After(current) {
			upcoming = append(upcoming, e)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartTime.Before(upcoming[j].StartTime)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming, nil
}

func (s *calendarService) generate(current time.Time) []*domain.CalendarEvent {
	day := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.UTC)

	events := make([]*domain.CalendarEvent, 0, len(mockEvents))
	for i, t := range mockEvents {
		start := day.AddDate(0, 0, t.dayOffset).Add(time.Duration(t.hour) * time.Hour)
		attendees := make([]string, len(t.attendees))
		copy(attendees, t.attendees)

		events = append(events, &domain.CalendarEvent{
			ID:          fmt.Sprintf("event_%d", i+1),
			Title:       t.title,
			Description: t.description,
			StartTime:   start,
			EndTime:     start.Add(t.duration),
			Attendees:   attendees,
		})
	}
	return events
}
