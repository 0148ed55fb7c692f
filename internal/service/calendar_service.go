package service

import (
	"context"

	"github.com/bagdasarian/bizdesk/internal/domain"
)

const DefaultUpcomingLimit = 5

// CalendarService отдает демонстрационные события. Реальный календарь не подключен.
type CalendarService interface {
	Events(ctx context.Context) ([]*domain.CalendarEvent, error)
	// Upcoming возвращает не более limit событий, начинающихся позже текущего момента
	Upcoming(ctx context.Context, limit int) ([]*domain.CalendarEvent, error)
}
