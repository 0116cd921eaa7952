package usecase

import (
	"testing"
	"time"

	"medflow-server/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}

func appointmentAt(date time.Time, clock string, duration int, status entity.AppointmentStatus) entity.Appointment {
	c, _ := time.Parse("15:04", clock)
	start := time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
	return entity.Appointment{
		AppointmentDate: start,
		Duration:        duration,
		Status:          status,
	}
}

func TestResolveWorkingHours(t *testing.T) {
	tests := []struct {
		name      string
		hours     entity.JSON
		wantStart string
		wantEnd   string
	}{
		{"nil hours fall back", nil, "09:00", "17:00"},
		{"configured window wins", entity.JSON{"start": "08:00", "end": "12:00"}, "08:00", "12:00"},
		{"partial config keeps default end", entity.JSON{"start": "10:00"}, "10:00", "17:00"},
		{"malformed start ignored", entity.JSON{"start": "not-a-time", "end": "15:00"}, "09:00", "15:00"},
		{"non-string values ignored", entity.JSON{"start": 9, "end": 17}, "09:00", "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveWorkingHours(tt.hours, "09:00", "17:00")
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveDuration(t *testing.T) {
	svc := &entity.Service{Duration: 45}
	zeroSvc := &entity.Service{Duration: 0}

	tests := []struct {
		name      string
		svc       *entity.Service
		requested int
		want      int
	}{
		{"service duration wins over request", svc, 60, 45},
		{"requested used without service", nil, 20, 20},
		{"default when nothing given", nil, 0, 30},
		{"zero service duration falls through", zeroSvc, 15, 15},
		{"zero everywhere yields default", zeroSvc, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDuration(tt.svc, tt.requested))
		})
	}
}

func TestOverlapsTouchingEndpoints(t *testing.T) {
	base := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// [10:00,10:30) and [10:30,11:00) share only the boundary
	assert.False(t, Overlaps(base, base.Add(30*time.Minute), base.Add(30*time.Minute), base.Add(60*time.Minute)))

	// [10:00,10:30) and [10:15,10:45) intersect
	assert.True(t, Overlaps(base, base.Add(30*time.Minute), base.Add(15*time.Minute), base.Add(45*time.Minute)))

	// containment counts as overlap
	assert.True(t, Overlaps(base, base.Add(60*time.Minute), base.Add(15*time.Minute), base.Add(30*time.Minute)))
}

func TestFindConflictSkipsInactive(t *testing.T) {
	date := mustDate(t, "2026-03-10")
	cancelled := appointmentAt(date, "10:00", 30, entity.AppointmentStatusCancelled)
	confirmed := appointmentAt(date, "11:00", 30, entity.AppointmentStatusConfirmed)
	busy := []entity.Appointment{cancelled, confirmed}

	start, _ := time.Parse("2006-01-02 15:04", "2026-03-10 10:00")

	assert.Nil(t, FindConflict(start, start.Add(30*time.Minute), busy))

	hit := FindConflict(confirmed.AppointmentDate, confirmed.End(), busy)
	assert.NotNil(t, hit)
	assert.Equal(t, entity.AppointmentStatusConfirmed, hit.Status)
}

func TestBuildAvailableSlots(t *testing.T) {
	date := mustDate(t, "2026-03-10")
	past := date.Add(-24 * time.Hour)

	t.Run("full default window", func(t *testing.T) {
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 30, nil, past)
		assert.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "16:30", slots[len(slots)-1])
	})

	t.Run("booked slot omitted", func(t *testing.T) {
		busy := []entity.Appointment{appointmentAt(date, "10:00", 30, entity.AppointmentStatusScheduled)}
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 30, busy, past)
		assert.NotContains(t, slots, "10:00")
		assert.Contains(t, slots, "09:30")
		assert.Contains(t, slots, "10:30")
	})

	t.Run("off-grid appointment blocks both straddled slots", func(t *testing.T) {
		busy := []entity.Appointment{appointmentAt(date, "10:15", 30, entity.AppointmentStatusScheduled)}
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 30, busy, past)
		assert.NotContains(t, slots, "10:00")
		assert.NotContains(t, slots, "10:30")
		assert.Contains(t, slots, "11:00")
	})

	t.Run("long duration must fit the window", func(t *testing.T) {
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 60, nil, past)
		assert.Equal(t, "16:00", slots[len(slots)-1])
		assert.NotContains(t, slots, "16:30")
	})

	t.Run("cadence stays on the interval grid regardless of duration", func(t *testing.T) {
		slots := BuildAvailableSlots(date, "09:00", "11:00", 30*time.Minute, 45, nil, past)
		assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
	})

	t.Run("past slots excluded", func(t *testing.T) {
		now := date.Add(12*time.Hour + 10*time.Minute) // 12:10 on the day
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 30, nil, now)
		assert.Equal(t, "12:30", slots[0])
	})

	t.Run("cancelled appointments do not block", func(t *testing.T) {
		busy := []entity.Appointment{appointmentAt(date, "10:00", 30, entity.AppointmentStatusCancelled)}
		slots := BuildAvailableSlots(date, "09:00", "17:00", 30*time.Minute, 30, busy, past)
		assert.Contains(t, slots, "10:00")
	})

	t.Run("malformed clocks yield empty not nil", func(t *testing.T) {
		slots := BuildAvailableSlots(date, "nope", "17:00", 30*time.Minute, 30, nil, past)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2026, 3, 10, 14, 45, 0, 0, time.UTC)
	start, end := DayBounds(date)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), end)
}
