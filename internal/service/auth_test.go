package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidhub/internal/auth"
	"aidhub/internal/domain"
	"aidhub/internal/testutil"
)

func newAuthService(st *testutil.Store) (*AuthService, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("test-secret", "aidhub", time.Hour)
	return NewAuthService(testutil.Users{Store: st}, auth.NewPasswordHasher(4), tokens, zerolog.Nop()), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	st := testutil.NewStore()
	svc, tokens := newAuthService(st)
	ctx := context.Background()
	city := " kharkiv "

	sess, err := svc.Register(ctx, RegisterInput{
		Name:     "Olena",
		Email:    " Olena@Example.org ",
		Password: "secret1",
		Role:     "requester",
		City:     &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "olena@example.org", sess.User.Email)
	assert.Equal(t, domain.RoleRequester, sess.User.Role)
	require.NotNil(t, sess.User.City)
	assert.Equal(t, "Kharkiv", *sess.User.City)
	assert.NotEqual(t, "secret1", sess.User.PasswordHash)

	claims, err := tokens.Verify(sess.Token)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, id)

	again, err := svc.Login(ctx, "OLENA@example.org", "secret1")
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, again.User.ID)
}

func TestRegisterRejects(t *testing.T) {
	st := testutil.NewStore()
	svc, _ := newAuthService(st)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.org", Password: "secret1", Role: "volunteer"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"duplicate email", RegisterInput{Name: "B", Email: "A@example.org", Password: "secret1", Role: "volunteer"}, domain.ErrConflict},
		{"short password", RegisterInput{Name: "B", Email: "b@example.org", Password: "12345", Role: "volunteer"}, domain.ErrValidation},
		{"bad email", RegisterInput{Name: "B", Email: "not-an-email", Password: "secret1", Role: "volunteer"}, domain.ErrValidation},
		{"email without domain dot", RegisterInput{Name: "B", Email: "b@localhost", Password: "secret1", Role: "volunteer"}, domain.ErrValidation},
		{"unknown role", RegisterInput{Name: "B", Email: "b@example.org", Password: "secret1", Role: "admin"}, domain.ErrValidation},
		{"missing name", RegisterInput{Email: "b@example.org", Password: "secret1", Role: "volunteer"}, domain.ErrValidation},
		{"password over bcrypt limit", RegisterInput{Name: "B", Email: "b@example.org", Password: strings.Repeat("p", 80), Role: "volunteer"}, domain.ErrValidation},
		{"long email", RegisterInput{Name: "B", Email: strings.Repeat("b", 95) + "@example.org", Password: "secret1", Role: "volunteer"}, domain.ErrValidation},
		{"long name", RegisterInput{Name: strings.Repeat("B", 101), Email: "b@example.org", Password: "secret1", Role: "volunteer"}, domain.ErrValidation},
		{"long phone", RegisterInput{Name: "B", Email: "b@example.org", Password: "secret1", Role: "volunteer", Phone: strPtr(strings.Repeat("1", 21))}, domain.ErrValidation},
		{"long region", RegisterInput{Name: "B", Email: "b@example.org", Password: "secret1", Role: "volunteer", Region: strPtr(strings.Repeat("r", 101))}, domain.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoginDoesNotRevealWhichPartFailed(t *testing.T) {
	st := testutil.NewStore()
	svc, _ := newAuthService(st)
	ctx := context.Background()
	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.org", Password: "secret1", Role: "requester"})
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@example.org", "secret1")
	_, errWrong := svc.Login(ctx, "a@example.org", "wrong-password")
	require.ErrorIs(t, errUnknown, domain.ErrUnauthenticated)
	require.ErrorIs(t, errWrong, domain.ErrUnauthenticated)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProfileClearsOmittedFields(t *testing.T) {
	st := testutil.NewStore()
	svc, _ := newAuthService(st)
	ctx := context.Background()
	phone := "+380501112233"
	sess, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.org", Password: "secret1", Role: "requester", Phone: &phone})
	require.NoError(t, err)
	actor := sess.User.Actor()

	blank := "  "
	region := "odesa"
	u, err := svc.UpdateProfile(ctx, actor, domain.ProfileUpdate{Name: " Anna ", Phone: &blank, Region: &region})
	require.NoError(t, err)
	assert.Equal(t, "Anna", u.Name)
	assert.Nil(t, u.Phone)
	require.NotNil(t, u.Region)
	assert.Equal(t, "Odesa", *u.Region)

	_, err = svc.UpdateProfile(ctx, actor, domain.ProfileUpdate{})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.UpdateProfile(ctx, actor, domain.ProfileUpdate{Name: "Anna", Address: strPtr(strings.Repeat("a", 256))})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Profile(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
}

func strPtr(s string) *string { return &s }
