package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type authFixture struct {
	users *fakeUserRepo
	cache *fakeCache
	jwt   service.JWTService
	svc   AuthServiceInterface
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users: newFakeUserRepo(),
		cache: newFakeCache(),
		jwt:   service.NewJWTService("test-secret", time.Hour),
	}
	cfg := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: time.Minute}
	f.svc = NewAuthService(f.users, f.cache, f.jwt, cfg, zap.NewNop())
	return f
}

func (f *authFixture) register(t *testing.T) *dto.UserDTO {
	t.Helper()
	u, err := f.svc.Register(context.Background(), dto.RegisterDTO{Email: "Tech@Plant.io", Name: "Dana", Password: "s3cret!"})
	require.NoError(t, err)
	return u
}

func TestRegister_DefaultsAndHashes(t *testing.T) {
	f := newAuthFixture()
	u := f.register(t)

	assert.Equal(t, "tech@plant.io", u.Email)
	assert.Equal(t, string(constants.RoleUser), u.Role)

	stored := f.users.items[u.ID]
	assert.NotEqual(t, "s3cret!", stored.Password)
	assert.NoError(t, utils.ComparePasswords(stored.Password, "s3cret!"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	_, err := f.svc.Register(context.Background(), dto.RegisterDTO{Email: "tech@plant.io", Name: "Other", Password: "another"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestLogin_IssuesToken(t *testing.T) {
	f := newAuthFixture()
	u := f.register(t)

	res, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", res.TokenType)

	claims, err := f.jwt.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "tech@plant.io", claims.Subject)
	assert.Equal(t, string(constants.RoleUser), claims.Role)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	f := newAuthFixture()
	f.register(t)

	_, errUnknown := f.svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@plant.io", Password: "x"})
	_, errWrong := f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "x"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
}

func TestLogin_LocksAfterMaxAttempts(t *testing.T) {
	f := newAuthFixture()
	u := f.register(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "s3cret!"})
	assert.ErrorIs(t, err, apperrors.ErrAccountLocked, "correct password is refused while locked")

	locked, _ := f.cache.Exists(context.Background(), fmt.Sprintf(constants.CacheKeyLockout, u.ID))
	assert.True(t, locked)
}

func TestLogin_SuccessResetsAttempts(t *testing.T) {
	f := newAuthFixture()
	u := f.register(t)

	_, _ = f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "wrong"})
	_, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "tech@plant.io", Password: "s3cret!"})
	require.NoError(t, err)

	exists, _ := f.cache.Exists(context.Background(), fmt.Sprintf(constants.CacheKeyLoginAttempts, u.ID))
	assert.False(t, exists)
}

func TestMe(t *testing.T) {
	f := newAuthFixture()
	u := f.register(t)

	_, err := f.svc.Me(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	ctx := utils.WithUser(context.Background(), u.ID, u.Email, u.Name, constants.RoleUser, nil)
	me, err := f.svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)
}

func TestRegister_AnonymousCannotPickAdmin(t *testing.T) {
	f := newAuthFixture()
	u, err := f.svc.Register(context.Background(), dto.RegisterDTO{
		Email: "mallory@plant.io", Name: "Mallory", Password: "s3cret!", Role: utils.ToPtr(string(constants.RoleAdmin)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.RoleUser), u.Role)

	res, err := f.svc.Login(context.Background(), dto.LoginDTO{Email: "mallory@plant.io", Password: "s3cret!"})
	require.NoError(t, err)
	claims, err := f.jwt.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(constants.RoleUser), claims.Role)
}

func TestRegister_NonAdminCannotPickRole(t *testing.T) {
	f := newAuthFixture()
	ctx := utils.WithUser(context.Background(), 5, "t@plant.io", "Tess", constants.RoleTechnician, nil)

	u, err := f.svc.Register(ctx, dto.RegisterDTO{
		Email: "friend@plant.io", Name: "Friend", Password: "s3cret!", Role: utils.ToPtr(string(constants.RoleAdmin)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.RoleUser), u.Role)
}

func TestRegister_AdminAssignsRole(t *testing.T) {
	f := newAuthFixture()
	ctx := utils.WithUser(context.Background(), 1, "admin@plant.io", "Admin", constants.RoleAdmin, nil)

	u, err := f.svc.Register(ctx, dto.RegisterDTO{
		Email: "tech@plant.io", Name: "Tech", Password: "s3cret!", Role: utils.ToPtr(string(constants.RoleTechnician)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.RoleTechnician), u.Role)
}
