package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentEnd(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	a := Appointment{AppointmentDate: start, Duration: 45}
	assert.Equal(t, start.Add(45*time.Minute), a.End())
}

func TestAppointmentIsActive(t *testing.T) {
	active := []AppointmentStatus{
		AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
	}
	inactive := []AppointmentStatus{
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}

	for _, s := range active {
		a := Appointment{Status: s}
		assert.True(t, a.IsActive(), string(s))
	}
	for _, s := range inactive {
		a := Appointment{Status: s}
		assert.False(t, a.IsActive(), string(s))
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	assert.True(t, ValidAppointmentStatus(AppointmentStatusNoShow))
	assert.False(t, ValidAppointmentStatus("rescheduled"))
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Alex", LastName: "Morgan"}
	assert.Equal(t, "Alex Morgan", u.FullName())

	assert.Equal(t, "Alex", (&User{FirstName: "Alex"}).FullName())
	assert.Equal(t, "Morgan", (&User{LastName: "Morgan"}).FullName())
}

func TestRoleIDByName(t *testing.T) {
	assert.Equal(t, RoleIDAdmin, RoleIDByName(RoleAdmin))
	assert.Equal(t, RoleIDDoctor, RoleIDByName(RoleDoctor))
	assert.Equal(t, RoleIDReceptionist, RoleIDByName(RoleReceptionist))
	assert.Equal(t, RoleIDPatient, RoleIDByName(RolePatient))
	assert.Equal(t, 0, RoleIDByName("superuser"))
}
