package usecase

import (
	"context"

	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Actor is the calling user with the role profile resolved once per request.
// A staff or patient user whose profile row is missing keeps a nil profile;
// scoped queries then simply match nothing instead of failing the request.
type Actor struct {
	User         *entity.User
	Patient      *entity.Patient
	Doctor       *entity.Doctor
	Receptionist *entity.Receptionist
}

func (a *Actor) IsAdmin() bool        { return a.User.IsAdmin() }
func (a *Actor) IsDoctor() bool       { return a.User.IsDoctor() }
func (a *Actor) IsReceptionist() bool { return a.User.IsReceptionist() }
func (a *Actor) IsPatient() bool      { return a.User.IsPatient() }

// ClinicID returns the clinic the actor belongs to. Admins belong to no
// single clinic; the second return is false for them and for actors whose
// profile row is missing.
func (a *Actor) ClinicID() (uuid.UUID, bool) {
	switch {
	case a.Patient != nil:
		return a.Patient.ClinicID, true
	case a.Doctor != nil:
		return a.Doctor.ClinicID, true
	case a.Receptionist != nil:
		return a.Receptionist.ClinicID, true
	}
	return uuid.Nil, false
}

// ActorResolver loads users together with their role profile.
type ActorResolver struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	receptionistRepo repository.ReceptionistRepository
}

func NewActorResolver(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
) *ActorResolver {
	return &ActorResolver{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
	}
}

// Resolve loads the user and the profile matching its role.
func (r *ActorResolver) Resolve(ctx context.Context, userID uuid.UUID) (*Actor, error) {
	db := r.db.WithContext(ctx)

	user, err := r.userRepo.FindByID(db, userID)
	if err != nil {
		r.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	actor := &Actor{User: user}

	switch user.RoleID {
	case entity.RoleIDPatient:
		actor.Patient, err = r.patientRepo.FindByUserID(db, user.ID)
	case entity.RoleIDDoctor:
		actor.Doctor, err = r.doctorRepo.FindByUserID(db, user.ID)
	case entity.RoleIDReceptionist:
		actor.Receptionist, err = r.receptionistRepo.FindByUserID(db, user.ID)
	}
	if err != nil {
		r.log.Warnf("Failed to load actor profile: %+v", err)
		return nil, err
	}

	return actor, nil
}
