package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarService(t *testing.T) {
	fixed := time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)
	service := NewCalendarService(func() time.Time { return fixed })

	t.Run("события строятся от часов", func(t *testing.T) {
		events, err := service.Events(context.Background())

		require.NoError(t, err)
		require.NotEmpty(t, events)
		for _, e := range events {
			assert.NotEmpty(t, e.ID)
			assert.True(t, e.EndTime.After(e.StartTime))
			assert.NotEmpty(t, e.Attendees)
		}
	})

	t.Run("ближайшие встречи только в будущем и по порядку", func(t *testing.T) {
		upcoming, err := service.Upcoming(context.Background(), DefaultUpcomingLimit)

		require.NoError(t, err)
		require.NotEmpty(t, upcoming)
		assert.LessOrEqual(t, len(upcoming), DefaultUpcomingLimit)
		for i, e := range upcoming {
			assert.True(t, e.StartTime.After(fixed))
			if i > 0 {
				assert.False(t, e.StartTime.Before(upcoming[i-1].StartTime))
			}
		}
	})

	t.Run("лимит соблюдается", func(t *testing.T) {
		upcoming, err := service.Upcoming(context.Background(), 2)

		require.NoError(t, err)
		assert.Len(t, upcoming, 2)
	})

	t.Run("результат детерминирован", func(t *testing.T) {
		first, _ := service.Events(context.Background())
		second, _ := service.Events(context.Background())

		assert.Equal(t, first, second)
	})
}
