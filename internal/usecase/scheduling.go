package usecase

import (
	"fmt"
	"time"

	"medflow-server/internal/domain/entity"
)

// ConflictError reports the occupied window that blocked a booking.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("doctor is not available at this time, conflicts with appointment from %s to %s",
		e.Start.Format("15:04"), e.End.Format("15:04"))
}

// ResolveWorkingHours extracts the doctor's working window from the stored
// JSONB pair. Absent or malformed values silently fall back to the defaults;
// a doctor is never unbookable because of bad configuration data.
func ResolveWorkingHours(hours entity.JSON, defaultStart, defaultEnd string) (string, string) {
	start, end := defaultStart, defaultEnd

	if hours != nil {
		if s, ok := hours["start"].(string); ok && validClock(s) {
			start = s
		}
		if e, ok := hours["end"].(string); ok && validClock(e) {
			end = e
		}
	}

	if !validClock(start) || !validClock(end) {
		return defaultStart, defaultEnd
	}
	return start, end
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ResolveDuration decides an appointment's length in minutes. A service with
// a configured duration always wins; otherwise a positive requested value is
// kept; otherwise the default applies. Create and update resolve identically.
func ResolveDuration(svc *entity.Service, requested int) int {
	if svc != nil && svc.Duration > 0 {
		return svc.Duration
	}
	if requested > 0 {
		return requested
	}
	return entity.DefaultAppointmentDuration
}

// Overlaps reports whether two half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching endpoints do not overlap: a 10:00-10:30 appointment
// and a 10:30 start are compatible.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// FindConflict returns the first active appointment whose occupied interval
// overlaps [start,end), or nil when the window is free. Inactive statuses
// never block.
func FindConflict(start, end time.Time, appointments []entity.Appointment) *entity.Appointment {
	for i := range appointments {
		a := &appointments[i]
		if !a.IsActive() {
			continue
		}
		if Overlaps(start, end, a.AppointmentDate, a.End()) {
			return a
		}
	}
	return nil
}

// BuildAvailableSlots generates bookable start times for one doctor-day.
// Slots step at a fixed interval from the window start regardless of the
// appointment duration; a slot is offered when the full duration fits inside
// the window, it does not overlap any active appointment, and it starts in
// the future.
func BuildAvailableSlots(
	date time.Time,
	startClock, endClock string,
	interval time.Duration,
	duration int,
	busy []entity.Appointment,
	now time.Time,
) []string {
	start, err := clockOn(date, startClock)
	if err != nil {
		return []string{}
	}
	end, err := clockOn(date, endClock)
	if err != nil {
		return []string{}
	}

	d := time.Duration(duration) * time.Minute
	slots := []string{}

	for t := start; !t.Add(d).After(end); t = t.Add(interval) {
		if !t.After(now) {
			continue
		}
		if FindConflict(t, t.Add(d), busy) != nil {
			continue
		}
		slots = append(slots, t.Format("15:04"))
	}

	return slots
}

// clockOn places a HH:MM wall-clock time on the given date, in its location.
func clockOn(date time.Time, clock string) (time.Time, error) {
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		c.Hour(), c.Minute(), 0, 0, date.Location()), nil
}

// DayBounds returns the half-open [midnight, next midnight) span of the date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
