package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"medflow-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// stubConnPool lets gorm hand out transactions without a database. The fake
// repositories below never touch the *gorm.DB they receive, so the pool only
// has to satisfy the transaction interfaces.
type stubConnPool struct{}

func (*stubConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) { return nil, nil }
func (*stubConnPool) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (*stubConnPool) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (*stubConnPool) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (p *stubConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}
func (*stubConnPool) Commit() error   { return nil }
func (*stubConnPool) Rollback() error { return nil }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: &stubConnPool{}})
	require.NoError(t, err)
	return db
}

type nopAuditService struct{}

func (nopAuditService) LogAction(context.Context, *gorm.DB, *uuid.UUID, string, entity.JSON) error {
	return nil
}
func (nopAuditService) LogCreate(context.Context, *gorm.DB, *uuid.UUID, string, string, string, interface{}) error {
	return nil
}
func (nopAuditService) LogUpdate(context.Context, *gorm.DB, *uuid.UUID, string, string, string, interface{}, interface{}) error {
	return nil
}
func (nopAuditService) LogDelete(context.Context, *gorm.DB, *uuid.UUID, string, string, string, interface{}) error {
	return nil
}

type fakeConversationRepo struct {
	conversations map[uuid.UUID]*entity.Conversation
}

func newFakeConversationRepo(conversations ...*entity.Conversation) *fakeConversationRepo {
	repo := &fakeConversationRepo{conversations: map[uuid.UUID]*entity.Conversation{}}
	for _, c := range conversations {
		repo.conversations[c.ID] = c
	}
	return repo
}

func (f *fakeConversationRepo) Create(_ *gorm.DB, conversation *entity.Conversation, participants []entity.User) error {
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	conversation.Participants = participants
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeConversationRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Conversation, error) {
	return f.conversations[id], nil
}

func (f *fakeConversationRepo) FindActiveByClinic(_ *gorm.DB, clinicID uuid.UUID) ([]entity.Conversation, error) {
	var out []entity.Conversation
	for _, c := range f.conversations {
		if c.IsActive && c.ClinicID == clinicID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) FindVisibleByUser(_ *gorm.DB, userID uuid.UUID) ([]entity.Conversation, error) {
	var out []entity.Conversation
	for _, c := range f.conversations {
		if !c.IsActive || !c.HasParticipant(userID) {
			continue
		}
		hidden := false
		for _, u := range c.HiddenFor {
			if u.ID == userID {
				hidden = true
			}
		}
		if !hidden {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeConversationRepo) AddParticipant(_ *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	stored := f.conversations[conversation.ID]
	stored.Participants = append(stored.Participants, *user)
	return nil
}

func (f *fakeConversationRepo) RemoveParticipant(_ *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	stored := f.conversations[conversation.ID]
	for i, p := range stored.Participants {
		if p.ID == user.ID {
			stored.Participants = append(stored.Participants[:i], stored.Participants[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeConversationRepo) HideFor(_ *gorm.DB, conversation *entity.Conversation, user *entity.User) error {
	stored := f.conversations[conversation.ID]
	for _, u := range stored.HiddenFor {
		if u.ID == user.ID {
			return nil
		}
	}
	stored.HiddenFor = append(stored.HiddenFor, *user)
	return nil
}

func (f *fakeConversationRepo) UnhideForAll(_ *gorm.DB, conversation *entity.Conversation) error {
	f.conversations[conversation.ID].HiddenFor = nil
	return nil
}

func (f *fakeConversationRepo) Touch(_ *gorm.DB, id uuid.UUID) error {
	if c, ok := f.conversations[id]; ok {
		c.UpdatedAt = time.Now()
	}
	return nil
}

type fakeMessageRepo struct {
	messages []*entity.Message
}

func messageDeletedFor(m *entity.Message, userID uuid.UUID) bool {
	for _, u := range m.DeletedFor {
		if u.ID == userID {
			return true
		}
	}
	return false
}

func (f *fakeMessageRepo) Create(_ *gorm.DB, message *entity.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMessageRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMessageRepo) FindVisibleByConversation(_ *gorm.DB, conversationID, userID uuid.UUID) ([]entity.Message, error) {
	var out []entity.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID && !messageDeletedFor(m, userID) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) FindByConversation(_ *gorm.DB, conversationID uuid.UUID) ([]entity.Message, error) {
	var out []entity.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) FindLastByConversation(_ *gorm.DB, conversationID uuid.UUID) (*entity.Message, error) {
	var last *entity.Message
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			last = m
		}
	}
	return last, nil
}

func (f *fakeMessageRepo) CountUnread(_ *gorm.DB, conversationID, excludeSenderID uuid.UUID) (int64, error) {
	var count int64
	for _, m := range f.messages {
		if m.ConversationID == conversationID && !m.IsRead && m.SenderID != excludeSenderID {
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) MarkConversationRead(_ *gorm.DB, conversationID, readerID uuid.UUID) (int64, error) {
	now := time.Now()
	var count int64
	for _, m := range f.messages {
		if m.ConversationID == conversationID && !m.IsRead && m.SenderID != readerID {
			m.IsRead = true
			m.ReadAt = &now
			count++
		}
	}
	return count, nil
}

func (f *fakeMessageRepo) MarkRead(_ *gorm.DB, message *entity.Message) error {
	now := time.Now()
	message.IsRead = true
	message.ReadAt = &now
	return nil
}

func (f *fakeMessageRepo) DeleteFor(_ *gorm.DB, message *entity.Message, user *entity.User) error {
	if !messageDeletedFor(message, user.ID) {
		message.DeletedFor = append(message.DeletedFor, *user)
	}
	return nil
}

func (f *fakeMessageRepo) DeleteConversationFor(_ *gorm.DB, conversationID uuid.UUID, user *entity.User) error {
	for _, m := range f.messages {
		if m.ConversationID == conversationID {
			if err := f.DeleteFor(nil, m, user); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *fakeMessageRepo) Delete(_ *gorm.DB, id uuid.UUID) error {
	for i, m := range f.messages {
		if m.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			break
		}
	}
	return nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func (f *fakeDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByUserID(_ *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	for _, d := range f.doctors {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByClinicID(_ *gorm.DB, clinicID uuid.UUID) ([]entity.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) { return nil, nil }

func (f *fakeDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error { return nil }

func (f *fakeDoctorRepo) Delete(_ *gorm.DB, id uuid.UUID) error { return nil }

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (f *fakeServiceRepo) Create(_ *gorm.DB, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindByIDs(_ *gorm.DB, ids []uuid.UUID) ([]entity.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) FindByClinicID(_ *gorm.DB, clinicID uuid.UUID) ([]entity.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) FindAll(_ *gorm.DB) ([]entity.Service, error) { return nil, nil }

func (f *fakeServiceRepo) Update(_ *gorm.DB, service *entity.Service) error { return nil }

func (f *fakeServiceRepo) Delete(_ *gorm.DB, id uuid.UUID) error { return nil }

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
}

func (f *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindActiveByDoctorForUpdate(_ *gorm.DB, doctorID, excludeID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.ID != excludeID && a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindActiveByDoctorOnDate(_ *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.IsActive() &&
			!a.AppointmentDate.Before(dayStart) && a.AppointmentDate.Before(dayEnd) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(_ *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(_ *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByClinicID(_ *gorm.DB, clinicID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindAll(_ *gorm.DB) ([]entity.Appointment, error) { return nil, nil }

func (f *fakeAppointmentRepo) Update(_ *gorm.DB, appointment *entity.Appointment) error { return nil }

func (f *fakeAppointmentRepo) UpdateStatus(_ *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return nil
}
