package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/infrastructure/memory"
	"github.com/oksasatya/mentor-hub/pkg/helpers"
)

type notifierMock struct{ mock.Mock }

func (n *notifierMock) SendWelcome(ctx context.Context, to, name string, isMentor bool) error {
	return n.Called(to, name, isMentor).Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type fixture struct {
	store    *memory.Store
	reg      *RegistrationService
	users    *UserService
	mentors  *MentorService
	auth     *AuthService
	notifier *notifierMock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	logger := helpers.NewDiscardLogger()
	n := &notifierMock{}
	n.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return &fixture{
		store:    store,
		reg:      NewRegistrationService(store, n, logger),
		users:    NewUserService(store),
		mentors:  NewMentorService(store, logger),
		auth:     NewAuthService(store, helpers.NewJWTManager("test-secret", time.Minute), logger),
		notifier: n,
	}
}

func (f *fixture) register(t *testing.T, email string, mentor bool) *RegisterResult {
	t.Helper()
	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "Test User", Email: email, Password: "p1", IsMentor: mentor,
	})
	require.NoError(t, err)
	return res
}

func TestRegister_PlainUser(t *testing.T) {
	f := newFixture(t)

	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "A", Email: "A@X.com", Password: "p1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.User.ID)
	require.Equal(t, "a@x.com", res.User.Email)
	require.NotEqual(t, "p1", res.User.Password)
	require.Nil(t, res.MentorProfile)

	f.notifier.AssertCalled(t, "SendWelcome", "a@x.com", "A", false)
}

func TestRegister_DuplicateEmailLeavesOneRow(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", false)

	_, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "B", Email: " a@x.com", Password: "p2",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := f.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.Register(context.Background(), entity.Registration{Email: "not-an-email"})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "full_name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestRegister_MultibytePasswordOverBcryptLimit(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "A", Email: "a@x.com", Password: strings.Repeat("é", 60),
	})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "password")

	users, err := f.users.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestRegister_NegativeExperienceRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "M", Email: "m@x.com", Password: "p", IsMentor: true, ExperienceYears: intPtr(-1),
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegister_MentorFlagFalseCreatesNoProfile(t *testing.T) {
	f := newFixture(t)

	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "A", Email: "a@x.com", Password: "p1", Skills: strPtr("go"),
	})
	require.NoError(t, err)
	require.Nil(t, res.MentorProfile)

	list, err := f.mentors.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRegister_MentorWithFields(t *testing.T) {
	f := newFixture(t)

	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "M", Email: "m@x.com", Password: "p", IsMentor: true,
		Skills: strPtr("go"), ExperienceYears: intPtr(5),
	})
	require.NoError(t, err)
	require.NotNil(t, res.MentorProfile)
	require.Equal(t, res.User.ID, res.MentorProfile.UserID)
	require.Equal(t, 5, res.MentorProfile.ExperienceYears)
	require.True(t, res.MentorProfile.IsActive)
}

func TestRegister_MentorWithoutFieldsCreatesNoProfile(t *testing.T) {
	f := newFixture(t)

	res := f.register(t, "m@x.com", true)
	require.True(t, res.User.IsMentor)
	require.Nil(t, res.MentorProfile)
	require.NoError(t, res.MentorProfileErr)
}

func TestRegister_MentorInsertFailureKeepsUser(t *testing.T) {
	f := newFixture(t)
	f.store.FailNextMentorCreate(errors.New("insert failed"))

	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "M", Email: "m@x.com", Password: "p", IsMentor: true, Skills: strPtr("go"),
	})
	require.NoError(t, err)
	require.Error(t, res.MentorProfileErr)
	require.Nil(t, res.MentorProfile)

	u, err := f.users.Get(context.Background(), res.User.ID)
	require.NoError(t, err)
	require.Equal(t, "m@x.com", u.Email)
}

func TestUserService_GetNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Get(context.Background(), 99)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMentorService_CreateMarksUserAsMentor(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "a@x.com", false).User

	m, err := f.mentors.Create(context.Background(), CreateMentorInput{
		UserID: u.ID, Skills: "go", Expertise: "backend", ExperienceYears: 2,
		LanguagesSpoken: "en", Availability: "weekends",
	})
	require.NoError(t, err)
	require.True(t, m.IsActive)

	got, err := f.users.Get(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, got.IsMentor)

	_, err = f.mentors.Create(context.Background(), CreateMentorInput{
		UserID: u.ID, Skills: "go", Expertise: "backend", LanguagesSpoken: "en", Availability: "any",
	})
	require.ErrorIs(t, err, ErrMentorProfileExists)
}

func TestMentorService_CreateUnknownUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.mentors.Create(context.Background(), CreateMentorInput{
		UserID: 42, Skills: "go", Expertise: "backend", LanguagesSpoken: "en", Availability: "any",
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMentorService_UpdateLeavesOmittedFields(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "a@x.com", false).User
	m, err := f.mentors.Create(context.Background(), CreateMentorInput{
		UserID: u.ID, Skills: "go", Expertise: "backend", ExperienceYears: 2,
		LanguagesSpoken: "en", Availability: "weekends",
	})
	require.NoError(t, err)

	updated, err := f.mentors.Update(context.Background(), m.ID, entity.MentorPatch{Availability: strPtr("evenings")})
	require.NoError(t, err)
	assert.Equal(t, "evenings", updated.Availability)
	assert.Equal(t, "go", updated.Skills)
	assert.Equal(t, "backend", updated.Expertise)
	assert.Equal(t, 2, updated.ExperienceYears)
	assert.Equal(t, u.ID, updated.UserID)

	got, err := f.mentors.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "evenings", got.Availability)
}

func TestMentorService_UpdateErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.mentors.Update(context.Background(), 5, entity.MentorPatch{Skills: strPtr("x")})
	require.ErrorIs(t, err, ErrMentorProfileNotFound)

	_, err = f.mentors.Update(context.Background(), 5, entity.MentorPatch{ExperienceYears: intPtr(-3)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestMentorService_DeleteKeepsUser(t *testing.T) {
	f := newFixture(t)
	res, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "M", Email: "m@x.com", Password: "p", IsMentor: true, Skills: strPtr("go"),
	})
	require.NoError(t, err)
	id := res.MentorProfile.ID

	require.NoError(t, f.mentors.Delete(context.Background(), id))

	_, err = f.mentors.Get(context.Background(), id)
	require.ErrorIs(t, err, ErrMentorProfileNotFound)
	require.ErrorIs(t, f.mentors.Delete(context.Background(), id), ErrMentorProfileNotFound)

	_, err = f.users.Get(context.Background(), res.User.ID)
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", false)

	res, err := f.auth.Login(context.Background(), LoginInput{Email: "A@x.com", Password: "p1"})
	require.NoError(t, err)
	require.Equal(t, TokenTypeBearer, res.TokenType)
	require.Nil(t, res.MentorProfile)

	claims, err := f.auth.JWT.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, claims.UserID)
	require.Equal(t, "a@x.com", claims.Subject)
}

func TestLogin_AttachesMentorProfile(t *testing.T) {
	f := newFixture(t)
	_, err := f.reg.Register(context.Background(), entity.Registration{
		FullName: "M", Email: "m@x.com", Password: "p", IsMentor: true, Expertise: strPtr("ml"),
	})
	require.NoError(t, err)

	res, err := f.auth.Login(context.Background(), LoginInput{Email: "m@x.com", Password: "p"})
	require.NoError(t, err)
	require.NotNil(t, res.MentorProfile)
	require.Equal(t, "ml", res.MentorProfile.Expertise)
}

func TestLogin_MentorWithoutProfile(t *testing.T) {
	f := newFixture(t)
	f.register(t, "m@x.com", true)

	res, err := f.auth.Login(context.Background(), LoginInput{Email: "m@x.com", Password: "p1"})
	require.NoError(t, err)
	require.Nil(t, res.MentorProfile)
}

func TestLogin_Failures(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com", false)

	res, err := f.auth.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, res)

	_, err = f.auth.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "p1"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "a@x.com", false).User

	got, m, err := f.users.Me(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Nil(t, m)

	_, _, err = f.users.Me(context.Background(), 404)
	require.ErrorIs(t, err, ErrUserNotFound)
}
