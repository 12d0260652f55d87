package service

import (
	"context"
	"testing"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

type fakeAuthAPI struct {
	calls    int
	response *dto.AuthResponse
	err      error
}

func (f *fakeAuthAPI) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeAuthAPI) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	f.calls++
	return f.response, f.err
}

func TestLoginStoresTokenAndUserAtomically(t *testing.T) {
	client := &fakeAuthAPI{response: &dto.AuthResponse{
		AccessToken: "token-abc",
		User:        entity.User{Id: 7, Email: "jane@example.com", Username: "jane"},
	}}
	sessions := memory.NewSessionRepository()
	svc := NewAuthService(client, sessions, logger.NewNopLogger())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@example.com", Password: "secret"})

	assert.NoError(t, err)
	session := sessions.Get()
	assert.Equal(t, "token-abc", session.Token)
	if assert.NotNil(t, session.User) {
		assert.Equal(t, "jane", session.User.Username)
	}
}

func TestLoginRejectsInvalidInputBeforeNetwork(t *testing.T) {
	client := &fakeAuthAPI{}
	svc := NewAuthService(client, memory.NewSessionRepository(), logger.NewNopLogger())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "not-an-email", Password: "x"})

	assert.Error(t, err)
	assert.Equal(t, 0, client.calls, "validation failures never reach the network")
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := memory.NewSessionRepository()
	_ = sessions.Set("token-abc", entity.User{Id: 7, Email: "jane@example.com", Username: "jane"})
	svc := NewAuthService(&fakeAuthAPI{}, sessions, logger.NewNopLogger())

	assert.NoError(t, svc.Logout())
	assert.False(t, sessions.Get().Authenticated())
	assert.Nil(t, sessions.Get().User)
}
