package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"halo-service/internal/app/config"
	"halo-service/internal/app/contracts"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/constvars"
	"halo-service/internal/pkg/dto/requests"
	"halo-service/internal/pkg/dto/responses"
	"halo-service/internal/pkg/exceptions"
	"halo-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository        contracts.UserRepository
	UserProfileRepository contracts.UserProfileRepository
	RedisRepository       contracts.RedisRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	userProfileRepository contracts.UserProfileRepository,
	redisRepository contracts.RedisRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:        userRepository,
		UserProfileRepository: userProfileRepository,
		RedisRepository:       redisRepository,
		SessionService:        sessionService,
		LockerService:         lockerService,
		MailerService:         mailerService,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyRegisterLockFormat, request.Email)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.RegisterLockTTLInSecs*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		uc.Log.Warn("authUsecase.RegisterUser registration already in progress",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrLockNotAcquired(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("authUsecase.RegisterUser error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     request.Name,
		Email:    request.Email,
		Age:      request.Age,
		Password: hashedPassword,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	_, err = uc.UserProfileRepository.Upsert(ctx, userID, map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
		"age":   user.Age,
	})
	if err != nil {
		uc.Log.Warn("authUsecase.RegisterUser failed to seed user profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{
		UserID:  userID,
		Name:    user.Name,
		Email:   user.Email,
		Message: constvars.RegisterSuccessMessage,
	}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	session, token, err := uc.SessionService.Create(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error calling SessionService.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.LoginUser{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LogoutUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.SessionService.Delete(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.LogoutUser error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.LogoutUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) SendOTP(ctx context.Context, request *requests.SendOTP) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	otp, err := utils.GenerateOTP(constvars.OTPLength)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	expiry := time.Duration(uc.InternalConfig.OTP.ExpiredTimeInMinutes) * time.Minute
	now := time.Now().UTC()
	record := &models.OTPRecord{
		Email:     request.Email,
		OTP:       otp,
		CreatedAt: now,
		ExpiresAt: now.Add(expiry),
	}

	// The key outlives the code so an expired code is told apart from a missing one.
	err = uc.RedisRepository.Set(ctx, otpKey(request.Email), record, 2*expiry)
	if err != nil {
		uc.Log.Error("authUsecase.SendOTP error storing OTP",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if err := uc.RedisRepository.Delete(ctx, otpAttemptsKey(request.Email)); err != nil {
		uc.Log.Warn("authUsecase.SendOTP error resetting verify attempts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	err = uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      request.Email,
		Subject: constvars.EmailOTPSubject,
		Body:    fmt.Sprintf(constvars.EmailBodyOTPFormat, otp, uc.InternalConfig.OTP.ExpiredTimeInMinutes),
		IsHTML:  true,
	})
	if err != nil {
		uc.Log.Error("authUsecase.SendOTP error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.SendOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	key := otpKey(request.Email)
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == "" {
		return exceptions.ErrOTPNotFound(nil)
	}

	record := new(models.OTPRecord)
	if err := json.Unmarshal([]byte(data), record); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	attemptsKey := otpAttemptsKey(request.Email)
	expiry := time.Duration(uc.InternalConfig.OTP.ExpiredTimeInMinutes) * time.Minute
	attempts, err := uc.RedisRepository.IncrementWithTTL(ctx, attemptsKey, 2*expiry)
	if err != nil {
		uc.Log.Error("authUsecase.VerifyOTP error counting attempts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if attempts > uc.maxVerifyAttempts() {
		// the code is burned; the caller has to request a new one
		if err := uc.RedisRepository.Delete(ctx, key); err != nil {
			return err
		}
		uc.Log.Warn("authUsecase.VerifyOTP attempts exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Int(constvars.LoggingAttemptsKey, attempts),
		)
		return exceptions.ErrOTPTooManyAttempts(nil)
	}

	if subtle.ConstantTimeCompare([]byte(record.OTP), []byte(request.OTP)) != 1 {
		return exceptions.ErrOTPInvalid(nil)
	}
	if record.IsExpired(time.Now().UTC()) {
		return exceptions.ErrOTPExpired(nil)
	}

	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		return err
	}
	if err := uc.RedisRepository.Delete(ctx, attemptsKey); err != nil {
		return err
	}

	verifiedTTL := time.Duration(uc.InternalConfig.OTP.VerifiedTimeInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, otpVerifiedKey(request.Email), true, verifiedTTL); err != nil {
		uc.Log.Error("authUsecase.VerifyOTP error storing verified marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.VerifyOTP succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	markerKey := otpVerifiedKey(request.Email)
	marker, err := uc.RedisRepository.Get(ctx, markerKey)
	if err != nil {
		return err
	}
	if marker == "" {
		return exceptions.ErrOTPNotVerified(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	err = uc.UserRepository.UpdatePassword(ctx, user.ID, hashedPassword)
	if err != nil {
		uc.Log.Error("authUsecase.ResetPassword error calling UserRepository.UpdatePassword",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if err := uc.RedisRepository.Delete(ctx, markerKey); err != nil {
		uc.Log.Warn("authUsecase.ResetPassword error consuming verified marker",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.ResetPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) GetSessionUser(ctx context.Context, session *models.Session) (*responses.SessionUser, error) {
	return &responses.SessionUser{
		UserID:    session.UserID,
		Name:      session.Name,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func otpKey(email string) string {
	return fmt.Sprintf(constvars.RedisKeyOTPFormat, email)
}

func otpAttemptsKey(email string) string {
	return fmt.Sprintf(constvars.RedisKeyOTPAttemptsFormat, email)
}

func (uc *authUsecase) maxVerifyAttempts() int {
	if uc.InternalConfig.OTP.MaxVerifyAttempts > 0 {
		return uc.InternalConfig.OTP.MaxVerifyAttempts
	}
	return constvars.DefaultOTPMaxVerifyAttempts
}

func otpVerifiedKey(email string) string {
	return fmt.Sprintf(constvars.RedisKeyOTPVerifiedFormat, email)
}
