package service

import (
	"context"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/contract"
	"lumera-client/pkg/api"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Logout() error
	Session() entity.Session
}

// AuthAPI is the slice of the API client the auth flow needs.
type AuthAPI interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
}

type authService struct {
	client   AuthAPI
	sessions contract.SessionRepository
	logger   logger.ILogger
	validate *validator.Validate
}

func NewAuthService(client AuthAPI, sessions contract.SessionRepository, log logger.ILogger) IAuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		logger:   log,
		validate: validator.New(),
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// 1. Validate locally before any network call
	if err := s.validate.Struct(req); err != nil {
		return nil, api.NewError(api.KindRequestFailed, "Please enter a valid email and password")
	}

	// 2. Exchange credentials for a token
	res, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Persist token + user atomically
	if err := s.sessions.Set(res.AccessToken, res.User); err != nil {
		return nil, api.NewError(api.KindRequestFailed, "Could not save your session")
	}

	s.logTokenLifetime(res.AccessToken)
	s.logger.Info("auth", "login successful", map[string]interface{}{
		"user_id": res.User.Id,
	})
	return res, nil
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, api.NewError(api.KindRequestFailed, "Please fill in all fields correctly")
	}

	res, err := s.client.Signup(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(res.AccessToken, res.User); err != nil {
		return nil, api.NewError(api.KindRequestFailed, "Could not save your session")
	}

	s.logTokenLifetime(res.AccessToken)
	s.logger.Info("auth", "signup successful", map[string]interface{}{
		"user_id": res.User.Id,
	})
	return res, nil
}

func (s *authService) Logout() error {
	err := s.sessions.Clear()
	s.logger.Info("auth", "logged out", nil)
	return err
}

func (s *authService) Session() entity.Session {
	return s.sessions.Get()
}

// logTokenLifetime parses the token without verifying it (we hold no signing
// key) purely to record when the server will start bouncing it. The guard
// never consults this: expiry stays reactive.
func (s *authService) logTokenLifetime(token string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	s.logger.Debug("auth", "session token issued", map[string]interface{}{
		"expires_at": exp.Time,
	})
}
