package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

const tokenTypeBearer = "bearer"

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context) (*dto.UserDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	jwtService     service.JWTService
	cfg            config.AuthConfig
	logger         *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepository: userRepository,
		cacheRepo:      cacheRepo,
		jwtService:     jwtService,
		cfg:            cfg,
		logger:         logger,
	}
}

// Register creates a user. Anonymous callers always get role User; the requested role is honoured
// only when an authenticated Admin is on the context.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	existing, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("email already registered")
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	role := constants.RoleUser
	if payload.Role != nil {
		if callerRole, err := utils.GetUserRoleFromCtx(ctx); err == nil && callerRole == constants.RoleAdmin {
			role = constants.UserRole(*payload.Role)
		} else {
			s.logger.Warn("requested role ignored on self-registration", zap.String("role", *payload.Role))
		}
	}

	created, err := s.userRepository.CreateUser(ctx, entities.User{
		Email:    email,
		Name:     payload.Name,
		Password: hashed,
		Role:     role,
		TeamID:   null.Uint64FromPtr(payload.TeamID),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.Uint64("id", created.ID), zap.String("role", string(created.Role)))
	res := userToDTO(created)
	return &res, nil
}

// Login verifies credentials and issues an access token. Repeated failures lock the account
// for the configured duration; unknown emails and wrong passwords are indistinguishable.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}
	s.resetLoginAttempts(ctx, user.ID)

	var teamID *uint64
	if user.TeamID.Valid {
		teamID = &user.TeamID.Uint64
	}
	token, err := s.jwtService.GenerateToken(service.TokenSubject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		Name:   user.Name,
		TeamID: teamID,
	})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.AuthResponseDTO{AccessToken: token, TokenType: tokenTypeBearer, User: userToDTO(user)}, nil
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := userToDTO(user)
	return &res, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	locked, err := s.cacheRepo.Exists(ctx, fmt.Sprintf(constants.CacheKeyLockout, userID))
	if err != nil {
		s.logger.Warn("lockout check failed", zap.Uint64("userID", userID), zap.Error(err))
		return nil
	}
	if locked {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf(constants.CacheKeyLoginAttempts, userID)
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("failed to count login attempt", zap.Uint64("userID", userID), zap.Error(err))
		return
	}
	if attempts == 1 {
		_ = s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		s.logger.Warn("account locked", zap.Uint64("userID", userID), zap.Int64("attempts", attempts))
		_ = s.cacheRepo.Set(ctx, fmt.Sprintf(constants.CacheKeyLockout, userID), "locked", s.cfg.LockoutDuration)
		_ = s.cacheRepo.Del(ctx, attemptsKey)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	_ = s.cacheRepo.Del(ctx,
		fmt.Sprintf(constants.CacheKeyLoginAttempts, userID),
		fmt.Sprintf(constants.CacheKeyLockout, userID),
	)
}
