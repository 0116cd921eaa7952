package usecase

import (
	"context"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserUsecase is the admin-facing user provisioning surface. Public
// self-registration lives in AuthUsecase and only creates patients.
type UserUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	List(ctx context.Context, roleName string) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	ResetPassword(ctx context.Context, actorID, id uuid.UUID) (*dto.ResetPasswordResponse, error)
	ToggleStatus(ctx context.Context, actorID, id uuid.UUID) (*dto.ToggleStatusResponse, error)
}

type userUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	roleRepo         repository.RoleRepository
	clinicRepo       repository.ClinicRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	receptionistRepo repository.ReceptionistRepository
	serviceRepo      repository.ServiceRepository
	auditService     service.AuditService
	authUsecase      AuthUsecase
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	clinicRepo repository.ClinicRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	receptionistRepo repository.ReceptionistRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
	authUsecase AuthUsecase,
) UserUsecase {
	return &userUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		roleRepo:         roleRepo,
		clinicRepo:       clinicRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		receptionistRepo: receptionistRepo,
		serviceRepo:      serviceRepo,
		auditService:     auditService,
		authUsecase:      authUsecase,
	}
}

// Create provisions a user of any role together with its role profile in one
// transaction, so a profile failure never leaves an orphaned user row.
func (u *userUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	roleID := entity.RoleIDByName(req.Role)
	if roleID == 0 {
		return nil, ErrRoleNotFound
	}

	switch roleID {
	case entity.RoleIDDoctor:
		if req.DoctorProfile == nil || req.DoctorProfile.ClinicID == "" ||
			req.DoctorProfile.Specialization == "" || req.DoctorProfile.LicenseNumber == "" {
			return nil, ErrProfileRequired
		}
	case entity.RoleIDReceptionist:
		if req.ReceptionistProfile == nil || req.ReceptionistProfile.ClinicID == "" ||
			req.ReceptionistProfile.ShiftStart == "" || req.ReceptionistProfile.ShiftEnd == "" {
			return nil, ErrProfileRequired
		}
	case entity.RoleIDPatient:
		if req.PatientProfile == nil || req.PatientProfile.ClinicID == "" {
			return nil, ErrProfileRequired
		}
	}

	dob, err := parseDateOnly(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Address:     req.Address,
		RoleID:      roleID,
		IsActive:    true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	switch roleID {
	case entity.RoleIDPatient:
		user.PatientProfile, err = u.createPatientProfile(tx, user.ID, req.PatientProfile)
	case entity.RoleIDDoctor:
		user.DoctorProfile, err = u.createDoctorProfile(tx, user.ID, req.DoctorProfile)
	case entity.RoleIDReceptionist:
		user.ReceptionistProfile, err = u.createReceptionistProfile(tx, user.ID, req.ReceptionistProfile)
	}
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionUserCreate,
		"user", user.ID.String(), entity.JSON{"email": user.Email, "role": req.Role}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: roleID, RoleName: req.Role}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) createPatientProfile(tx *gorm.DB, userID uuid.UUID, in *dto.PatientProfileInput) (*entity.Patient, error) {
	clinicID, err := u.resolveClinic(tx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	gender := in.Gender
	if gender == "" {
		gender = entity.GenderOther
	}

	patient := &entity.Patient{
		UserID:                       userID,
		ClinicID:                     clinicID,
		PatientCode:                  generateCode("PAT"),
		Gender:                       gender,
		BloodType:                    in.BloodType,
		EmergencyContactName:         in.EmergencyContactName,
		EmergencyContactPhone:        in.EmergencyContactPhone,
		EmergencyContactRelationship: in.EmergencyContactRelationship,
		MedicalHistory:               in.MedicalHistory,
		Allergies:                    in.Allergies,
		CurrentMedications:           in.CurrentMedications,
		InsuranceNumber:              in.InsuranceNumber,
		InsuranceProvider:            in.InsuranceProvider,
		IsActive:                     true,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}
	return patient, nil
}

func (u *userUsecase) createDoctorProfile(tx *gorm.DB, userID uuid.UUID, in *dto.DoctorProfileInput) (*entity.Doctor, error) {
	clinicID, err := u.resolveClinic(tx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	fee := decimal.Zero
	if in.ConsultationFee != "" {
		fee, err = decimal.NewFromString(in.ConsultationFee)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}

	doctor := &entity.Doctor{
		UserID:            userID,
		ClinicID:          clinicID,
		DoctorCode:        generateCode("DOC"),
		Specialization:    in.Specialization,
		LicenseNumber:     in.LicenseNumber,
		YearsOfExperience: in.YearsOfExperience,
		Education:         in.Education,
		Certifications:    in.Certifications,
		ConsultationFee:   fee,
		AvailableDays:     in.AvailableDays,
		AvailableHours:    in.AvailableHours,
		IsAvailable:       isAvailable,
		IsActive:          true,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}
	return doctor, nil
}

func (u *userUsecase) createReceptionistProfile(tx *gorm.DB, userID uuid.UUID, in *dto.ReceptionistProfileInput) (*entity.Receptionist, error) {
	clinicID, err := u.resolveClinic(tx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	receptionist := &entity.Receptionist{
		UserID:       userID,
		ClinicID:     clinicID,
		EmployeeCode: generateCode("EMP"),
		ShiftStart:   in.ShiftStart,
		ShiftEnd:     in.ShiftEnd,
		WorkingDays:  in.WorkingDays,
		IsActive:     true,
	}

	if err := u.receptionistRepo.Create(tx, receptionist); err != nil {
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
		return nil, err
	}

	if len(in.ServiceIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(in.ServiceIDs))
		for _, raw := range in.ServiceIDs {
			id, err := parseUUID(raw)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		services, err := u.serviceRepo.FindByIDs(tx, ids)
		if err != nil {
			u.log.Warnf("Failed to load services: %+v", err)
			return nil, err
		}
		if err := u.receptionistRepo.ReplaceServices(tx, receptionist, services); err != nil {
			u.log.Warnf("Failed to assign services: %+v", err)
			return nil, err
		}
	}

	return receptionist, nil
}

func (u *userUsecase) resolveClinic(tx *gorm.DB, rawID string) (uuid.UUID, error) {
	clinicID, err := parseUUID(rawID)
	if err != nil {
		return uuid.Nil, err
	}
	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic: %+v", err)
		return uuid.Nil, err
	}
	if clinic == nil {
		return uuid.Nil, ErrClinicNotFound
	}
	return clinicID, nil
}

func (u *userUsecase) List(ctx context.Context, roleName string) ([]dto.UserResponse, error) {
	roleID := 0
	if roleName != "" {
		roleID = entity.RoleIDByName(roleName)
		if roleID == 0 {
			return nil, ErrRoleNotFound
		}
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx), roleID)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByIDWithProfiles(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByIDWithProfiles(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.DateOfBirth != "" {
		dob, err := parseDateOnly(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		user.DateOfBirth = dob
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if req.PatientProfile != nil && user.PatientProfile != nil {
		applyPatientInput(user.PatientProfile, req.PatientProfile)
		if err := u.patientRepo.Update(tx, user.PatientProfile); err != nil {
			u.log.Warnf("Failed to update patient profile: %+v", err)
			return nil, err
		}
	}
	if req.DoctorProfile != nil && user.DoctorProfile != nil {
		if err := applyDoctorInput(user.DoctorProfile, req.DoctorProfile); err != nil {
			return nil, err
		}
		if err := u.doctorRepo.Update(tx, user.DoctorProfile); err != nil {
			if isDuplicateKeyError(err, "license_number") {
				return nil, ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to update doctor profile: %+v", err)
			return nil, err
		}
	}
	if req.ReceptionistProfile != nil && user.ReceptionistProfile != nil {
		applyReceptionistInput(user.ReceptionistProfile, req.ReceptionistProfile)
		if err := u.receptionistRepo.Update(tx, user.ReceptionistProfile); err != nil {
			u.log.Warnf("Failed to update receptionist profile: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionUserUpdate,
		"user", user.ID.String(), nil, entity.JSON{"email": user.Email}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func applyPatientInput(patient *entity.Patient, in *dto.PatientProfileInput) {
	if in.Gender != "" {
		patient.Gender = in.Gender
	}
	if in.BloodType != "" {
		patient.BloodType = in.BloodType
	}
	if in.EmergencyContactName != "" {
		patient.EmergencyContactName = in.EmergencyContactName
	}
	if in.EmergencyContactPhone != "" {
		patient.EmergencyContactPhone = in.EmergencyContactPhone
	}
	if in.EmergencyContactRelationship != "" {
		patient.EmergencyContactRelationship = in.EmergencyContactRelationship
	}
	if in.MedicalHistory != "" {
		patient.MedicalHistory = in.MedicalHistory
	}
	if in.Allergies != "" {
		patient.Allergies = in.Allergies
	}
	if in.CurrentMedications != "" {
		patient.CurrentMedications = in.CurrentMedications
	}
	if in.InsuranceNumber != "" {
		patient.InsuranceNumber = in.InsuranceNumber
	}
	if in.InsuranceProvider != "" {
		patient.InsuranceProvider = in.InsuranceProvider
	}
}

func applyDoctorInput(doctor *entity.Doctor, in *dto.DoctorProfileInput) error {
	if in.Specialization != "" {
		doctor.Specialization = in.Specialization
	}
	if in.LicenseNumber != "" {
		doctor.LicenseNumber = in.LicenseNumber
	}
	if in.YearsOfExperience > 0 {
		doctor.YearsOfExperience = in.YearsOfExperience
	}
	if in.Education != "" {
		doctor.Education = in.Education
	}
	if in.Certifications != "" {
		doctor.Certifications = in.Certifications
	}
	if in.ConsultationFee != "" {
		fee, err := decimal.NewFromString(in.ConsultationFee)
		if err != nil {
			return ErrInvalidAmount
		}
		doctor.ConsultationFee = fee
	}
	if in.AvailableDays != nil {
		doctor.AvailableDays = in.AvailableDays
	}
	if in.AvailableHours != nil {
		doctor.AvailableHours = in.AvailableHours
	}
	if in.IsAvailable != nil {
		doctor.IsAvailable = *in.IsAvailable
	}
	return nil
}

func applyReceptionistInput(receptionist *entity.Receptionist, in *dto.ReceptionistProfileInput) {
	if in.ShiftStart != "" {
		receptionist.ShiftStart = in.ShiftStart
	}
	if in.ShiftEnd != "" {
		receptionist.ShiftEnd = in.ShiftEnd
	}
	if in.WorkingDays != nil {
		receptionist.WorkingDays = in.WorkingDays
	}
}

func (u *userUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := u.userRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionUserDelete,
		"user", id.String(), entity.JSON{"email": user.Email}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return u.authUsecase.RevokeAllUserTokens(ctx, id)
}

// ResetPassword replaces the user's password with a random temporary one and
// revokes every active session. The plaintext goes back to the admin once.
func (u *userUsecase) ResetPassword(ctx context.Context, actorID, id uuid.UUID) (*dto.ResetPasswordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	tempPassword, err := generateTemporaryPassword(12)
	if err != nil {
		u.log.Warnf("Failed to generate password: %+v", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}
	user.Password = string(hashedPassword)

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionUserPasswordReset,
		entity.JSON{"entity": "user", "entity_id": id.String()}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.authUsecase.RevokeAllUserTokens(ctx, id); err != nil {
		return nil, err
	}

	return &dto.ResetPasswordResponse{TemporaryPassword: tempPassword}, nil
}

func (u *userUsecase) ToggleStatus(ctx context.Context, actorID, id uuid.UUID) (*dto.ToggleStatusResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsActive = !user.IsActive
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &actorID, entity.AuditActionUserToggleStatus,
		entity.JSON{"entity": "user", "entity_id": id.String(), "is_active": user.IsActive}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if !user.IsActive {
		if err := u.authUsecase.RevokeAllUserTokens(ctx, id); err != nil {
			return nil, err
		}
	}

	return &dto.ToggleStatusResponse{ID: id.String(), IsActive: user.IsActive}, nil
}
