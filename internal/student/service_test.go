package student

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"EduAgent/internal/apperr"
	"EduAgent/internal/auth"
	"EduAgent/internal/config"
	"EduAgent/internal/organization"
)

type fakeStore struct {
	students []*Student
}

func (f *fakeStore) find(match func(*Student) bool) *Student {
	for _, s := range f.students {
		if match(s) {
			return s
		}
	}
	return nil
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*Student, error) {
	return f.find(func(s *Student) bool { return s.Email == email }), nil
}

func (f *fakeStore) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	return f.find(func(s *Student) bool { return s.StudentID == studentID }), nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Student, error) {
	return f.find(func(s *Student) bool { return s.ID == id }), nil
}

func (f *fakeStore) Create(ctx context.Context, s *Student) error {
	if existing, _ := f.FindByEmail(ctx, s.Email); existing != nil {
		return apperr.DuplicateAccount("email or student_id already registered")
	}
	if existing, _ := f.FindByStudentID(ctx, s.StudentID); existing != nil {
		return apperr.DuplicateAccount("email or student_id already registered")
	}
	f.students = append(f.students, s)
	return nil
}

func (f *fakeStore) ListByOrganization(ctx context.Context, orgID primitive.ObjectID) ([]*Student, error) {
	var out []*Student
	for _, s := range f.students {
		if s.OrganizationID == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeOrgStore struct {
	orgs map[primitive.ObjectID]*organization.Organization
}

func (f *fakeOrgStore) FindByID(ctx context.Context, id primitive.ObjectID) (*organization.Organization, error) {
	return f.orgs[id], nil
}

func newTestService() (*Service, primitive.ObjectID) {
	orgID := primitive.NewObjectID()
	orgStore := &fakeOrgStore{orgs: map[primitive.ObjectID]*organization.Organization{
		orgID: {ID: orgID, Name: "Acme", Email: "acme@x.com"},
	}}
	tokens := auth.NewTokenService(&config.JWTConfig{Secret: []byte("student-test-secret"), TTL: time.Hour})
	return &Service{store: &fakeStore{}, organizations: orgStore, tokens: tokens}, orgID
}

func signupReq(orgID primitive.ObjectID) SignupRequest {
	return SignupRequest{
		StudentID:      "S-001",
		Name:           "Sam",
		Email:          "sam@x.com",
		OrganizationID: orgID.Hex(),
		Grade:          "10",
		Password:       "p1",
	}
}

func TestStudentSignupThenLogin(t *testing.T) {
	svc, orgID := newTestService()
	ctx := context.Background()

	student, err := svc.Signup(ctx, signupReq(orgID))
	require.NoError(t, err)
	assert.Equal(t, orgID, student.OrganizationID)
	assert.True(t, auth.CheckPasswordHash("p1", student.PasswordHash))

	// Login by student_id.
	token, err := svc.Login(ctx, LoginRequest{Identifier: "S-001", Password: "p1"})
	require.NoError(t, err)
	claims, err := svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, student.ID.Hex(), claims.Subject)
	assert.Equal(t, auth.KindStudent, claims.Kind)

	// Login by email.
	token, err = svc.Login(ctx, LoginRequest{Identifier: "sam@x.com", Password: "p1"})
	require.NoError(t, err)
	claims, err = svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, student.ID.Hex(), claims.Subject)
}

func TestStudentSignup_UnknownOrganization(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := signupReq(primitive.NewObjectID())
	_, err := svc.Signup(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)

	req.OrganizationID = "not-hex"
	_, err = svc.Signup(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}

func TestStudentSignup_DuplicateEmail(t *testing.T) {
	svc, orgID := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupReq(orgID))
	require.NoError(t, err)

	dup := signupReq(orgID)
	dup.StudentID = "S-002"
	_, err = svc.Signup(ctx, dup)
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateAccount, apperr.From(err).Kind)
}

func TestStudentLogin_BadCredentialsIndistinguishable(t *testing.T) {
	svc, orgID := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupReq(orgID))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginRequest{Identifier: "S-001", Password: "nope"})
	_, unknownID := svc.Login(ctx, LoginRequest{Identifier: "S-404", Password: "p1"})
	_, unknownEmail := svc.Login(ctx, LoginRequest{Identifier: "ghost@x.com", Password: "p1"})

	for _, err := range []error{wrongPassword, unknownID, unknownEmail} {
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidCredentials, apperr.From(err).Kind)
	}
	assert.Equal(t, apperr.From(wrongPassword), apperr.From(unknownID))
	assert.Equal(t, apperr.From(wrongPassword), apperr.From(unknownEmail))
}

func TestListByOrganization(t *testing.T) {
	svc, orgID := newTestService()
	ctx := context.Background()

	first := signupReq(orgID)
	second := signupReq(orgID)
	second.StudentID = "S-002"
	second.Email = "sally@x.com"
	second.Name = "Sally"

	_, err := svc.Signup(ctx, first)
	require.NoError(t, err)
	_, err = svc.Signup(ctx, second)
	require.NoError(t, err)

	profiles, err := svc.ListByOrganization(ctx, orgID.Hex())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "S-001", profiles[0].StudentID)
	assert.Equal(t, "S-002", profiles[1].StudentID)

	profiles, err = svc.ListByOrganization(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, profiles)

	_, err = svc.ListByOrganization(ctx, "not-hex")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}
