package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonsuite/salon-scheduler/internal/apperr"
	"github.com/salonsuite/salon-scheduler/internal/audit"
	"github.com/salonsuite/salon-scheduler/internal/domain/access"
	"github.com/salonsuite/salon-scheduler/internal/models"
	ucuser "github.com/salonsuite/salon-scheduler/internal/usecase/user"
)

// MockUserRepository is a mock implementation of user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindBySalon(ctx context.Context, salonID uint) ([]models.User, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type RecorderStub struct {
	Events []audit.Event
}

func (r *RecorderStub) Dispatch(ev audit.Event) {
	r.Events = append(r.Events, ev)
}

func uintPtr(v uint) *uint { return &v }

func notFound() error {
	return apperr.NotFound("user_not_found", "user not found")
}

func superAdmin() access.Actor {
	return access.Actor{ID: 1, Role: access.RoleSuperAdmin, IsActive: true}
}

func admin(id, salonID uint) access.Actor {
	return access.Actor{ID: id, Role: access.RoleAdmin, SalonID: uintPtr(salonID), IsActive: true}
}

func receptionist(id, salonID uint) access.Actor {
	return access.Actor{ID: id, Role: access.RoleReceptionist, SalonID: uintPtr(salonID), IsActive: true}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateUser_ReceptionistCannotCreateAdmin(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewCreateUser(users, &RecorderStub{})

	_, err := uc.Execute(context.Background(), ucuser.CreateUserInput{
		Email:    "new@example.com",
		Password: "secret123",
		Role:     access.RoleAdmin,
	}, receptionist(5, 1))

	assert.True(t, apperr.HasCode(err, "role_create_forbidden"))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_ReceptionistCreatesStylist_InheritsSalon(t *testing.T) {
	users := new(MockUserRepository)
	rec := &RecorderStub{}
	uc := ucuser.NewCreateUser(users, rec)

	users.On("FindByEmail", mock.Anything, "stylist@example.com").Return(nil, notFound())
	users.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 30
		}).
		Return(nil)

	created, err := uc.Execute(context.Background(), ucuser.CreateUserInput{
		Name:     "Sam",
		Email:    "stylist@example.com",
		Password: "secret123",
		Role:     access.RoleStylist,
	}, receptionist(5, 1))

	assert.NoError(t, err)
	assert.NotNil(t, created.SalonID)
	assert.Equal(t, uint(1), *created.SalonID)
	assert.Equal(t, string(access.RoleStylist), created.Role)
	assert.True(t, created.IsActive)
	assert.Equal(t, uint(5), *created.CreatedBy)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	assert.Len(t, rec.Events, 1)
	assert.Equal(t, "user_created", rec.Events[0].Action)
}

func TestCreateUser_SuperAdminCreatedUserStartsUnassigned(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewCreateUser(users, &RecorderStub{})

	users.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, notFound())
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := uc.Execute(context.Background(), ucuser.CreateUserInput{
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     access.RoleAdmin,
	}, superAdmin())

	assert.NoError(t, err)
	assert.Nil(t, created.SalonID)
}

func TestCreateUser_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewCreateUser(users, &RecorderStub{})

	users.On("FindByEmail", mock.Anything, "dup@example.com").
		Return(&models.User{ID: 9, Email: "dup@example.com"}, nil)

	_, err := uc.Execute(context.Background(), ucuser.CreateUserInput{
		Email:    "dup@example.com",
		Password: "secret123",
		Role:     access.RoleStylist,
	}, admin(2, 1))

	assert.True(t, apperr.HasCode(err, "email_taken"))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ======================================================
// FIND
// ======================================================

func TestListUsers_AdminScopedToOwnSalon(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewListUsers(users)

	staff := []models.User{{ID: 3, SalonID: uintPtr(1)}}
	users.On("FindBySalon", mock.Anything, uint(1)).Return(staff, nil)

	got, err := uc.Execute(context.Background(), admin(2, 1))

	assert.NoError(t, err)
	assert.Equal(t, staff, got)
	users.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestListUsers_SuperAdminSeesAll(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewListUsers(users)

	users.On("FindAll", mock.Anything).Return([]models.User{{ID: 1}, {ID: 2}}, nil)

	got, err := uc.Execute(context.Background(), superAdmin())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetUser_CrossSalonForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewGetUser(users)

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Role: string(access.RoleStylist), SalonID: uintPtr(2)}, nil)

	_, err := uc.Execute(context.Background(), 7, admin(2, 1))

	assert.True(t, apperr.HasCode(err, "user_access_forbidden"))
}

func TestGetUser_NotFoundBeatsForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewGetUser(users)

	users.On("FindByID", mock.Anything, uint(99)).Return(nil, notFound())

	_, err := uc.Execute(context.Background(), 99, admin(2, 1))

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateUser_RoleEscalationForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewUpdateUser(users, &RecorderStub{})

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Role: string(access.RoleStylist), SalonID: uintPtr(1)}, nil)

	role := access.RoleAdmin
	_, err := uc.Execute(context.Background(), 7, ucuser.UpdateUserInput{Role: &role}, receptionist(5, 1))

	assert.True(t, apperr.HasCode(err, "role_assign_forbidden"))
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateUser_EmailChangeConflict(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewUpdateUser(users, &RecorderStub{})

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Email: "old@example.com", Role: string(access.RoleStylist), SalonID: uintPtr(1)}, nil)
	users.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: 8, Email: "taken@example.com"}, nil)

	email := "taken@example.com"
	_, err := uc.Execute(context.Background(), 7, ucuser.UpdateUserInput{Email: &email}, admin(2, 1))

	assert.True(t, apperr.HasCode(err, "email_taken"))
}

func TestUpdateUser_DeactivateStylist(t *testing.T) {
	users := new(MockUserRepository)
	rec := &RecorderStub{}
	uc := ucuser.NewUpdateUser(users, rec)

	stylist := &models.User{ID: 7, Role: string(access.RoleStylist), SalonID: uintPtr(1), IsActive: true}
	users.On("FindByID", mock.Anything, uint(7)).Return(stylist, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	inactive := false
	updated, err := uc.Execute(context.Background(), 7, ucuser.UpdateUserInput{IsActive: &inactive}, admin(2, 1))

	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Len(t, rec.Events, 1)
	assert.Equal(t, "user_updated", rec.Events[0].Action)
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteUser_SelfForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewDeleteUser(users, &RecorderStub{})

	err := uc.Execute(context.Background(), 2, admin(2, 1))

	assert.True(t, apperr.HasCode(err, "self_delete_forbidden"))
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteUser_SuperAdminTargetForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewDeleteUser(users, &RecorderStub{})

	users.On("FindByID", mock.Anything, uint(9)).
		Return(&models.User{ID: 9, Role: string(access.RoleSuperAdmin)}, nil)

	err := uc.Execute(context.Background(), 9, superAdmin())

	assert.True(t, apperr.HasCode(err, "super_admin_delete_forbidden"))
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUser_PeerRoleForbidden(t *testing.T) {
	users := new(MockUserRepository)
	uc := ucuser.NewDeleteUser(users, &RecorderStub{})

	users.On("FindByID", mock.Anything, uint(6)).
		Return(&models.User{ID: 6, Role: string(access.RoleReceptionist), SalonID: uintPtr(1)}, nil)

	err := uc.Execute(context.Background(), 6, receptionist(5, 1))

	assert.True(t, apperr.HasCode(err, "user_modify_forbidden"))
}

func TestDeleteUser_Success(t *testing.T) {
	users := new(MockUserRepository)
	rec := &RecorderStub{}
	uc := ucuser.NewDeleteUser(users, rec)

	users.On("FindByID", mock.Anything, uint(7)).
		Return(&models.User{ID: 7, Role: string(access.RoleStylist), SalonID: uintPtr(1)}, nil)
	users.On("Delete", mock.Anything, mock.Anything).Return(nil)

	err := uc.Execute(context.Background(), 7, admin(2, 1))

	assert.NoError(t, err)
	assert.Len(t, rec.Events, 1)
	assert.Equal(t, "user_deleted", rec.Events[0].Action)
}
