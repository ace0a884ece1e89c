package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"chore/infras/jwt"
	"chore/infras/otel"
	"chore/internal/domains/auth/model/dto"
	userModel "chore/internal/domains/user/model"
	userRepo "chore/internal/domains/user/repository"
	"chore/shared"
	"chore/shared/cache"
	"chore/shared/constant"
	gDto "chore/shared/dto"
	"chore/shared/failure"
	"chore/shared/password"
	"chore/shared/timezone"
	"chore/shared/validator"
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Auth registers accounts, verifies credentials and tracks sessions. A session
// is a signed token whose id must also be present in the cache, so ending a
// session revokes the token before it expires.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.Account, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (dto.Account, error)
	StartSession(ctx context.Context, account dto.Account) (dto.Session, error)
	EndSession(ctx context.Context, token string) error
	CurrentCaller(ctx context.Context, token string) (dto.Caller, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func sessionKey(tokenID string) string {
	return shared.BuildCacheKey(constant.CacheKeySession, tokenID)
}

func byUsername(username string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(userModel.TableName, userModel.FieldUsername, username))
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.Account, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Password1 != req.Password2 {
		return res, failure.BadRequestFromString(constant.MessagePasswordMismatch)
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user := req.ToUserModel("")

	exists, err := s.userRepo.Exist(ctx, byUsername(user.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(constant.MessageUsernameTaken)
	}

	user.Password, err = password.Hash(req.Password1)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user.ID, err = s.userRepo.Insert(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return res, failure.Conflict(constant.MessageUsernameTaken)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("account registered")

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, req dto.LoginRequest) (res dto.Account, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if validator.ValidateStruct(&req) != nil {
		return res, failure.BadRequestFromString(constant.MessageLoginMismatch)
	}

	user, err := s.userRepo.Get(ctx, byUsername(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.BadRequestFromString(constant.MessageLoginMismatch)
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to verify password")
		}

		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(constant.MessageLoginMismatch)
	}

	lastLogin := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()})
	filter := gDto.And(gDto.Eq(userModel.TableName, userModel.FieldID, user.ID))

	if _, err = s.userRepo.Update(ctx, lastLogin, filter); err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) StartSession(ctx context.Context, account dto.Account) (res dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.jwtService.GenerateToken(account.ID, account.Username)
	if err != nil {
		log.Error().Err(err).Int64("user_id", account.ID).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	caller := dto.Caller{ID: account.ID, Username: account.Username}

	if err = s.cache.Save(ctx, sessionKey(token.TokenID), caller, token.ExpiresIn); err != nil {
		log.Error().Err(err).Int64("user_id", account.ID).Msg("failed to store session")

		return res, fmt.Errorf("failed to store session: %w", err)
	}

	return dto.Session{Token: token.Value, ExpiresIn: token.ExpiresIn}, nil
}

func (s *serviceImpl) EndSession(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EndSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return failure.Unauthorized(constant.MessageLoginFirst)
	}

	if err = s.cache.Delete(ctx, sessionKey(claims.TokenID)); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *serviceImpl) CurrentCaller(ctx context.Context, token string) (res dto.Caller, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentCaller")
	defer scope.End()

	if token == "" {
		return res, failure.Unauthorized(constant.MessageLoginFirst)
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected session token")

		return res, failure.Unauthorized(constant.MessageLoginFirst)
	}

	var stored dto.Caller

	err = s.cache.Get(ctx, sessionKey(claims.TokenID), &stored)
	if errors.Is(err, cache.Nil) {
		return res, failure.Unauthorized(constant.MessageLoginFirst)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load session")

		return res, fmt.Errorf("failed to load session: %w", err)
	}

	if stored.ID != claims.UserID {
		log.Warn().Int64("token_user", claims.UserID).Int64("session_user", stored.ID).Msg("session does not match token")

		return res, failure.Unauthorized(constant.MessageLoginFirst)
	}

	return stored, nil
}
