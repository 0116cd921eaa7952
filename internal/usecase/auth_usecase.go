package usecase

import (
	"context"
	"fmt"

	"medflow-server/internal/converter"
	"medflow-server/internal/delivery/dto"
	"medflow-server/internal/domain/entity"
	"medflow-server/internal/domain/repository"
	"medflow-server/internal/service"
	"medflow-server/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	patientRepo  repository.PatientRepository
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	patientRepo repository.PatientRepository,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		patientRepo:  patientRepo,
		clinicRepo:   clinicRepo,
		auditService: auditService,
		jwtService:   jwtService,
		redisClient:  redisClient,
	}
}

// Register is public self-registration. It always creates a patient; staff
// accounts are provisioned by an admin. User and patient profile are created
// in one transaction so a profile failure never leaves an orphaned user.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dob, err := parseDateOnly(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	clinicID, err := parseOptionalUUID(req.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinicID == uuid.Nil {
		clinic, err := u.clinicRepo.FindFirstActive(tx)
		if err != nil {
			u.log.Warnf("Failed to find fallback clinic: %+v", err)
			return nil, err
		}
		if clinic == nil {
			return nil, ErrNoActiveClinic
		}
		clinicID = clinic.ID
	} else {
		clinic, err := u.clinicRepo.FindByID(tx, clinicID)
		if err != nil {
			u.log.Warnf("Failed to find clinic: %+v", err)
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
		Address:     req.Address,
		RoleID:      entity.RoleIDPatient,
		IsActive:    true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	gender := req.Gender
	if gender == "" {
		gender = entity.GenderOther
	}

	patient := &entity.Patient{
		UserID:                user.ID,
		ClinicID:              clinicID,
		PatientCode:           generateCode("PAT"),
		Gender:                gender,
		BloodType:             req.BloodType,
		EmergencyContactName:  req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyPhone,
		IsActive:              true,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister,
		"user", user.ID.String(), entity.JSON{"email": user.Email, "role": entity.RolePatient}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}

	user.Role = entity.Role{ID: entity.RoleIDPatient, RoleName: entity.RolePatient}
	user.PatientProfile = patient

	return &dto.RegisterResponse{
		User:   converter.UserToResponse(user),
		Tokens: tokens,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), &user.ID,
		entity.AuditActionUserLogin, entity.JSON{"email": user.Email}); err != nil {
		u.log.Warnf("Failed to audit login: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	patterns := []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	}

	for _, pattern := range patterns {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token dies with this exchange.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByIDWithProfiles(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// IsTokenValid checks whether a token ID is still present in Redis.
func (u *authUsecase) IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	var key string
	if tokenType == jwt.AccessToken {
		key = fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
	} else {
		key = fmt.Sprintf("refresh_token:%s:%s", userID.String(), tokenID)
	}

	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists > 0, nil
}

// RevokeAllUserTokens drops every stored token of a user, used on password
// reset and account deactivation.
func (u *authUsecase) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	patterns := []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	}

	for _, pattern := range patterns {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}
