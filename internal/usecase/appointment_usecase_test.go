package usecase

import (
	"context"
	"testing"
	"time"

	"medflow-server/config"
	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityFixture(t *testing.T, doctor *entity.Doctor, services []*entity.Service, booked []entity.Appointment) AppointmentUsecase {
	t.Helper()

	doctorRepo := &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{doctor.ID: doctor}}
	serviceRepo := &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{}}
	for _, svc := range services {
		serviceRepo.services[svc.ID] = svc
	}

	scheduling := config.SchedulingConfig{
		SlotInterval:     30 * time.Minute,
		DefaultWorkStart: "09:00",
		DefaultWorkEnd:   "17:00",
	}

	return NewAppointmentUsecase(testDB(t), logrus.New(), scheduling,
		&fakeAppointmentRepo{appointments: booked}, nil, doctorRepo, serviceRepo, nil, nopAuditService{})
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()
	doctor := &entity.Doctor{ID: uuid.New(), IsAvailable: true, IsActive: true}
	date := "2030-01-02"

	t.Run("unknown service falls back to default duration", func(t *testing.T) {
		u := newAvailabilityFixture(t, doctor, nil, nil)

		resp, err := u.AvailableSlots(ctx, doctor.ID, date, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 30, resp.Duration)
		require.Len(t, resp.AvailableSlots, 16)
		assert.Equal(t, "09:00", resp.AvailableSlots[0].StartTime)
		assert.Equal(t, "16:30", resp.AvailableSlots[15].StartTime)
		for _, slot := range resp.AvailableSlots {
			assert.True(t, slot.Available)
		}
	})

	t.Run("service duration shortens the window", func(t *testing.T) {
		svc := &entity.Service{ID: uuid.New(), Duration: 60}
		u := newAvailabilityFixture(t, doctor, []*entity.Service{svc}, nil)

		resp, err := u.AvailableSlots(ctx, doctor.ID, date, svc.ID)
		require.NoError(t, err)
		assert.Equal(t, 60, resp.Duration)
		require.Len(t, resp.AvailableSlots, 15)
		assert.Equal(t, "16:00", resp.AvailableSlots[14].StartTime)
	})

	t.Run("booked slot is omitted", func(t *testing.T) {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		require.NoError(t, err)
		booked := []entity.Appointment{{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentDate: day.Add(10 * time.Hour),
			Duration:        30,
			Status:          entity.AppointmentStatusScheduled,
		}}
		u := newAvailabilityFixture(t, doctor, nil, booked)

		resp, err := u.AvailableSlots(ctx, doctor.ID, date, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, resp.AvailableSlots, 15)
		for _, slot := range resp.AvailableSlots {
			assert.NotEqual(t, "10:00", slot.StartTime)
		}
	})

	t.Run("unavailable doctor yields empty list", func(t *testing.T) {
		off := &entity.Doctor{ID: uuid.New(), IsAvailable: false, IsActive: true}
		u := newAvailabilityFixture(t, off, nil, nil)

		resp, err := u.AvailableSlots(ctx, off.ID, date, uuid.Nil)
		require.NoError(t, err)
		assert.Empty(t, resp.AvailableSlots)
		assert.Equal(t, 30, resp.Duration)
	})

	t.Run("unknown doctor fails", func(t *testing.T) {
		u := newAvailabilityFixture(t, doctor, nil, nil)

		_, err := u.AvailableSlots(ctx, uuid.New(), date, uuid.Nil)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("malformed date fails", func(t *testing.T) {
		u := newAvailabilityFixture(t, doctor, nil, nil)

		_, err := u.AvailableSlots(ctx, doctor.ID, "02-01-2030", uuid.Nil)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}
