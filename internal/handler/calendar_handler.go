package handler

import (
	"net/http"

	"github.com/bagdasarian/bizdesk/internal/service"
)

func (h *Handler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendarService.Events(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := CalendarEventsResponse{Events: make([]CalendarEventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, domainEventToHTTP(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUpcomingMeetings(w http.ResponseWriter, r *http.Request) {
	events, err := h.calendarService.Upcoming(r.Context(), service.DefaultUpcomingLimit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := UpcomingMeetingsResponse{UpcomingMeetings: make([]UpcomingMeetingResponse, 0, len(events))}
	for _, e := range events {
		resp.UpcomingMeetings = append(resp.UpcomingMeetings, UpcomingMeetingResponse{
			ID:             e.ID,
			Title:          e.Title,
			StartTime:      formatTime(e.StartTime),
			AttendeesCount: len(e.Attendees),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
