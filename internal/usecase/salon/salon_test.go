package salon_test

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
	ucsalon "github.com/salonsuite/salon-scheduler/internal/usecase/salon"
)

// MockSalonRepository is a mock implementation of salon.Repository.
type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) FindByID(ctx context.Context, id uint) (*models.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *MockSalonRepository) FindByName(ctx context.Context, name string) (*models.Salon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Salon), args.Error(1)
}

func (m *MockSalonRepository) FindAll(ctx context.Context) ([]models.Salon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Salon), args.Error(1)
}

func (m *MockSalonRepository) Update(ctx context.Context, s *models.Salon) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSalonRepository) Delete(ctx context.Context, s *models.Salon) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSalonRepository) CountActiveUsers(ctx context.Context, salonID uint) (int64, error) {
	args := m.Called(ctx, salonID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalonRepository) CreateWithAdmin(ctx context.Context, s *models.Salon, admin *models.User) error {
	args := m.Called(ctx, s, admin)
	return args.Error(0)
}

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

// RecorderStub collects dispatched audit events synchronously.
type RecorderStub struct {
	Events []audit.Event
}

func (r *RecorderStub) Dispatch(ev audit.Event) {
	r.Events = append(r.Events, ev)
}

func uintPtr(v uint) *uint { return &v }

func superAdmin() access.Actor {
	return access.Actor{ID: 1, Email: "root@example.com", Role: access.RoleSuperAdmin, IsActive: true}
}

func salonAdmin(salonID uint) access.Actor {
	return access.Actor{ID: 2, Email: "admin@example.com", Role: access.RoleAdmin, SalonID: uintPtr(salonID), IsActive: true}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateSalon_Success(t *testing.T) {
	salons := new(MockSalonRepository)
	users := new(MockUserRepository)
	rec := &RecorderStub{}

	uc := ucsalon.NewCreateSalon(salons, users, rec)

	salons.On("FindByName", mock.Anything, "Glow Studio").
		Return(nil, apperr.NotFound("salon_not_found", "salon not found"))
	users.On("FindByEmail", mock.Anything, "owner@glow.com").
		Return(nil, apperr.NotFound("user_not_found", "user not found"))

	salons.On("CreateWithAdmin", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*models.Salon)
			admin := args.Get(2).(*models.User)
			s.ID = 10
			admin.ID = 20
			admin.SalonID = &s.ID
		}).
		Return(nil)

	salons.On("FindByID", mock.Anything, uint(10)).
		Return(&models.Salon{ID: 10, Name: "Glow Studio"}, nil)

	created, err := uc.Execute(context.Background(), ucsalon.CreateSalonInput{
		Name: "Glow Studio",
		Admin: ucsalon.AdminInput{
			Name:     "Olivia",
			Email:    "owner@glow.com",
			Password: "secret123",
		},
	}, superAdmin())

	assert.NoError(t, err)
	assert.Equal(t, uint(10), created.ID)

	admin := salons.Calls[1].Arguments.Get(2).(*models.User)
	assert.Equal(t, string(access.RoleAdmin), admin.Role)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret123")))

	assert.Len(t, rec.Events, 1)
	assert.Equal(t, "salon_created", rec.Events[0].Action)
	salons.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestCreateSalon_NonSuperAdminForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	users := new(MockUserRepository)

	uc := ucsalon.NewCreateSalon(salons, users, &RecorderStub{})

	_, err := uc.Execute(context.Background(), ucsalon.CreateSalonInput{Name: "X"}, salonAdmin(1))

	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	salons.AssertNotCalled(t, "CreateWithAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSalon_NameTaken(t *testing.T) {
	salons := new(MockSalonRepository)
	users := new(MockUserRepository)

	uc := ucsalon.NewCreateSalon(salons, users, &RecorderStub{})

	salons.On("FindByName", mock.Anything, "Glow Studio").
		Return(&models.Salon{ID: 5, Name: "Glow Studio"}, nil)

	_, err := uc.Execute(context.Background(), ucsalon.CreateSalonInput{Name: "Glow Studio"}, superAdmin())

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.True(t, apperr.HasCode(err, "salon_name_taken"))
	salons.AssertNotCalled(t, "CreateWithAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSalon_AdminEmailTaken_NothingPersisted(t *testing.T) {
	salons := new(MockSalonRepository)
	users := new(MockUserRepository)

	uc := ucsalon.NewCreateSalon(salons, users, &RecorderStub{})

	salons.On("FindByName", mock.Anything, "Glow Studio").
		Return(nil, apperr.NotFound("salon_not_found", "salon not found"))
	users.On("FindByEmail", mock.Anything, "owner@glow.com").
		Return(&models.User{ID: 7, Email: "owner@glow.com"}, nil)

	_, err := uc.Execute(context.Background(), ucsalon.CreateSalonInput{
		Name:  "Glow Studio",
		Admin: ucsalon.AdminInput{Email: "owner@glow.com", Password: "secret123"},
	}, superAdmin())

	assert.True(t, apperr.HasCode(err, "email_taken"))
	salons.AssertNotCalled(t, "CreateWithAdmin", mock.Anything, mock.Anything, mock.Anything)
}

// ======================================================
// FIND
// ======================================================

func TestListSalons_NonSuperAdminForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewListSalons(salons)

	_, err := uc.Execute(context.Background(), salonAdmin(1))

	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestGetSalon_NotFoundBeatsForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewGetSalon(salons)

	salons.On("FindByID", mock.Anything, uint(99)).
		Return(nil, apperr.NotFound("salon_not_found", "salon not found"))

	_, err := uc.Execute(context.Background(), 99, salonAdmin(1))

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetSalon_OtherSalonForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewGetSalon(salons)

	salons.On("FindByID", mock.Anything, uint(3)).
		Return(&models.Salon{ID: 3, Name: "Other"}, nil)

	_, err := uc.Execute(context.Background(), 3, salonAdmin(1))

	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestGetMySalon_SuperAdminHasNone(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewGetMySalon(salons)

	salon, err := uc.Execute(context.Background(), superAdmin())

	assert.NoError(t, err)
	assert.Nil(t, salon)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateSalon_RenameToTakenName(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewUpdateSalon(salons, &RecorderStub{})

	salons.On("FindByID", mock.Anything, uint(1)).
		Return(&models.Salon{ID: 1, Name: "Glow Studio"}, nil)
	salons.On("FindByName", mock.Anything, "Shine Studio").
		Return(&models.Salon{ID: 2, Name: "Shine Studio"}, nil)

	name := "Shine Studio"
	_, err := uc.Execute(context.Background(), 1, ucsalon.UpdateSalonInput{Name: &name}, salonAdmin(1))

	assert.True(t, apperr.HasCode(err, "salon_name_taken"))
	salons.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSalon_ReceptionistForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewUpdateSalon(salons, &RecorderStub{})

	salons.On("FindByID", mock.Anything, uint(1)).
		Return(&models.Salon{ID: 1, Name: "Glow Studio"}, nil)

	actor := access.Actor{ID: 4, Role: access.RoleReceptionist, SalonID: uintPtr(1), IsActive: true}

	name := "New Name"
	_, err := uc.Execute(context.Background(), 1, ucsalon.UpdateSalonInput{Name: &name}, actor)

	assert.True(t, apperr.HasCode(err, "salon_modify_forbidden"))
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteSalon_BlockedByActiveUsers(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewDeleteSalon(salons, &RecorderStub{})

	salons.On("FindByID", mock.Anything, uint(1)).
		Return(&models.Salon{ID: 1, Name: "Glow Studio"}, nil)
	salons.On("CountActiveUsers", mock.Anything, uint(1)).
		Return(int64(3), nil)

	err := uc.Execute(context.Background(), 1, superAdmin())

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.True(t, apperr.HasCode(err, "salon_has_active_users"))
	salons.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteSalon_NonSuperAdminForbidden(t *testing.T) {
	salons := new(MockSalonRepository)
	uc := ucsalon.NewDeleteSalon(salons, &RecorderStub{})

	err := uc.Execute(context.Background(), 1, salonAdmin(1))

	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
	salons.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteSalon_Success(t *testing.T) {
	salons := new(MockSalonRepository)
	rec := &RecorderStub{}
	uc := ucsalon.NewDeleteSalon(salons, rec)

	salons.On("FindByID", mock.Anything, uint(1)).
		Return(&models.Salon{ID: 1, Name: "Glow Studio"}, nil)
	salons.On("CountActiveUsers", mock.Anything, uint(1)).
		Return(int64(0), nil)
	salons.On("Delete", mock.Anything, mock.Anything).Return(nil)

	err := uc.Execute(context.Background(), 1, superAdmin())

	assert.NoError(t, err)
	assert.Len(t, rec.Events, 1)
	assert.Equal(t, "salon_deleted", rec.Events[0].Action)
	salons.AssertExpectations(t)
}
