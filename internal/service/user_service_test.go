package service

import (
	"MovieDiary/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserService_Register(t *testing.T) {
	m := new(mockUserRepo)
	s := NewUserService(m)
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль сохраняется только хешем
			return u.Login == "john" && u.Password != "p" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("p")) == nil
		})).Return(&model.User{ID: 42, Login: "john"}, nil).Once()

		u, err := s.Register(ctx, "john", "p")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), u.ID)
		m.AssertExpectations(t)
	})

	t.Run("login taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "john").Return(&model.User{ID: 1, Login: "john"}, nil).Once()

		_, err := s.Register(ctx, "john", "p")
		assert.ErrorIs(t, err, ErrLoginTaken)
	})
}

func TestUserService_Login(t *testing.T) {
	m := new(mockUserRepo)
	s := NewUserService(m)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: 2, Login: "alice", Password: string(hash)}, nil).Once()

		u, err := s.Login(ctx, "alice", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "alice").Return(&model.User{ID: 2, Login: "alice", Password: string(hash)}, nil).Once()

		_, err := s.Login(ctx, "alice", "bad")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown login", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByLogin", mock.Anything, "ghost").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		_, err := s.Login(ctx, "ghost", "x")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}
