package services_test

import (
	"context"
	"testing"
	"time"

	mock_storage "job-board-api/internal/mocks"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/token"
	"job-board-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "super-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func setupAuthServiceTest(t *testing.T) (context.Context, services.AuthService, *mock_storage.MockApplicantRepository, *mock_storage.MockHiringManagerRepository, *token.Manager, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockApplicantRepo := mock_storage.NewMockApplicantRepository(ctrl)
	mockManagerRepo := mock_storage.NewMockHiringManagerRepository(ctrl)
	tokens := token.NewManager("test-secret", time.Hour)
	svc := services.NewAuthService(mockApplicantRepo, mockManagerRepo, tokens, services.AdminCredentials{
		Username: "admin",
		Password: testAdminPassword,
	})
	ctx := context.Background()
	return ctx, svc, mockApplicantRepo, mockManagerRepo, tokens, ctrl
}

func TestAuthService_Register_Applicant_Success(t *testing.T) {
	ctx, svc, mockApplicantRepo, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	mockApplicantRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *dto.CreateApplicantRequest) (*models.Applicant, error) {
			assert.Equal(t, "alice", req.Username)
			// The service must store a bcrypt hash, never the raw password.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(req.PasswordHash), []byte("pw123")))
			return &models.Applicant{ID: uuid.New(), Username: req.Username}, nil
		}).Times(1)

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123", Role: "applicant"})

	require.NoError(t, err)
}

func TestAuthService_Register_HiringManager_Success(t *testing.T) {
	ctx, svc, _, mockManagerRepo, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	mockManagerRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *dto.CreateHiringManagerRequest) (*models.HiringManager, error) {
			assert.Equal(t, "bob", req.Username)
			assert.Equal(t, "Acme", req.CompanyName)
			return &models.HiringManager{ID: uuid.New(), Username: req.Username, CompanyName: req.CompanyName}, nil
		}).Times(1)

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "bob", Password: "pw123", Role: "hiringManager", CompanyName: "Acme"})

	require.NoError(t, err)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	ctx, svc, _, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "eve", Password: "pw", Role: "admin"})
	assert.ErrorIs(t, err, services.ErrInvalidRole)

	err = svc.Register(ctx, &dto.RegisterRequest{Username: "eve", Password: "pw", Role: "superuser"})
	assert.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctx, svc, mockApplicantRepo, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	mockApplicantRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil, storage.ErrConflict).Times(1)

	err := svc.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw", Role: "applicant"})

	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestAuthService_Login_Applicant_Success(t *testing.T) {
	ctx, svc, mockApplicantRepo, _, tokens, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	applicantID := uuid.New()
	mockApplicantRepo.EXPECT().GetByUsername(ctx, "alice").Return(&models.Applicant{
		ID:           applicantID,
		Username:     "alice",
		PasswordHash: hashPassword(t, "pw123"),
	}, nil).Times(1)

	signed, role, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw123", Role: "applicant"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleApplicant, role)

	ident, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, applicantID.String(), ident.SubjectID)
	assert.Equal(t, models.RoleApplicant, ident.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx, svc, mockApplicantRepo, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	mockApplicantRepo.EXPECT().GetByUsername(ctx, "alice").Return(&models.Applicant{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: hashPassword(t, "pw123"),
	}, nil).Times(1)

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong", Role: "applicant"})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx, svc, mockApplicantRepo, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	mockApplicantRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, storage.ErrNotFound).Times(1)

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "pw", Role: "applicant"})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_UnapprovedManager(t *testing.T) {
	ctx, svc, _, mockManagerRepo, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	// Approval is checked before the password, so even the correct password
	// is rejected with the approval error.
	mockManagerRepo.EXPECT().GetByUsername(ctx, "bob").Return(&models.HiringManager{
		ID:           uuid.New(),
		Username:     "bob",
		PasswordHash: hashPassword(t, "pw123"),
		IsApproved:   false,
	}, nil).Times(1)

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "pw123", Role: "hiringManager"})

	assert.ErrorIs(t, err, services.ErrNotApproved)
}

func TestAuthService_Login_ApprovedManager_Success(t *testing.T) {
	ctx, svc, _, mockManagerRepo, tokens, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	managerID := uuid.New()
	mockManagerRepo.EXPECT().GetByUsername(ctx, "bob").Return(&models.HiringManager{
		ID:           managerID,
		Username:     "bob",
		PasswordHash: hashPassword(t, "pw123"),
		IsApproved:   true,
	}, nil).Times(1)

	signed, role, err := svc.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "pw123", Role: "hiringManager"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleHiringManager, role)

	ident, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, managerID.String(), ident.SubjectID)
	assert.Equal(t, models.RoleHiringManager, ident.Role)
}

func TestAuthService_Login_Admin_Success(t *testing.T) {
	ctx, svc, _, _, tokens, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	signed, role, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: testAdminPassword, Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	ident, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", ident.SubjectID)
	assert.Equal(t, models.RoleAdmin, ident.Role)
}

func TestAuthService_Login_Admin_WrongCredentials(t *testing.T) {
	ctx, svc, _, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "nope", Role: "admin"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Username: "root", Password: testAdminPassword, Role: "admin"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_Admin_BcryptHashConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := token.NewManager("test-secret", time.Hour)
	svc := services.NewAuthService(
		mock_storage.NewMockApplicantRepository(ctrl),
		mock_storage.NewMockHiringManagerRepository(ctrl),
		tokens,
		services.AdminCredentials{Username: "admin", Password: hashPassword(t, "hashed-pw")},
	)

	_, role, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "hashed-pw", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, _, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong", Role: "admin"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_Login_InvalidRole(t *testing.T) {
	ctx, svc, _, _, _, ctrl := setupAuthServiceTest(t)
	defer ctrl.Finish()

	_, _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw", Role: "superuser"})

	assert.ErrorIs(t, err, services.ErrInvalidRole)
}
