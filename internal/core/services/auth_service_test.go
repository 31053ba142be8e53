package services

import (
	"context"
	"testing"

	"vvms/internal/adapters/persistence/repositories"
	"vvms/internal/config"
	"vvms/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
	return NewAuthService(repositories.NewUserRepository(newTestDB(t)), cfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotZero(t, reg.User.ID)
	require.Equal(t, string(domain.RoleOfficer), reg.User.Role)
	require.NotEmpty(t, reg.AccessToken)

	login, err := svc.Login(ctx, &LoginInput{
		Username: "officer1",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, login.User.ID)

	claims, err := svc.ValidateAccessToken(login.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "officer1", claims.Username)
	require.Equal(t, string(domain.RoleOfficer), claims.Role)
}

func TestAuthService_PasswordNeverStoredPlaintext(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	})
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", user.Password)
	require.NotEmpty(t, user.Password)
}

func TestAuthService_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Wrong password
	_, wrongPassErr := svc.Login(ctx, &LoginInput{Username: "officer1", Password: "wrong"})
	require.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)

	// Unknown username yields the same error, no information leak
	_, unknownUserErr := svc.Login(ctx, &LoginInput{Username: "nobody", Password: "supersecret"})
	require.ErrorIs(t, unknownUserErr, domain.ErrInvalidCredentials)

	require.Equal(t, wrongPassErr, unknownUserErr)
}

func TestAuthService_DuplicateRegistration(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	})
	require.NoError(t, err)

	// Same username
	_, err = svc.Register(ctx, &RegisterInput{
		Username: "officer1",
		Email:    "other@violations.local",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// Same email
	_, err = svc.Register(ctx, &RegisterInput{
		Username: "officer2",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

// blindUserRepo reports every username and email as free, so inserts land
// straight on the unique indexes the way two concurrent registrations would.
type blindUserRepo struct {
	repositories.UserRepository
}

func (blindUserRepo) UsernameTaken(context.Context, string) (bool, error) { return false, nil }
func (blindUserRepo) EmailTaken(context.Context, string) (bool, error)    { return false, nil }

func TestAuthService_RegisterConcurrentDuplicate(t *testing.T) {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
	repo := blindUserRepo{repositories.NewUserRepository(newTestDB(t))}
	svc := NewAuthService(repo, cfg)
	ctx := context.Background()

	input := RegisterInput{
		Username: "officer1",
		Email:    "officer1@violations.local",
		Password: "supersecret",
	}
	dup := input

	_, err := svc.Register(ctx, &input)
	require.NoError(t, err)

	// The existence checks see nothing, so the unique index decides
	_, err = svc.Register(ctx, &dup)
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}
