package routes_test

import (
	"context"
	"time"

	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/token"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

func newTestTokens() *token.Manager {
	return token.NewManager(testSecret, time.Hour)
}

// issueTestToken mints a token the middleware under test will accept.
func issueTestToken(subjectID string, role models.Role) string {
	signed, err := newTestTokens().Issue(subjectID, role)
	if err != nil {
		panic(err)
	}
	return signed
}

// expiredTestToken mints a token that was valid an hour ago.
func expiredTestToken(subjectID string, role models.Role) string {
	claims := &token.Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// --- Service mocks shared by the route tests ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, models.Role, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Get(1).(models.Role), args.Error(2)
}

var _ services.AuthService = (*MockAuthService)(nil)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListManagers(ctx context.Context) ([]models.HiringManager, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HiringManager), args.Error(1)
}

func (m *MockAdminService) Approve(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminService) Deny(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ services.AdminService = (*MockAdminService)(nil)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) ListAll(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, applicantID, jobID uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, applicantID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockApplicationService) Accept(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error) {
	args := m.Called(ctx, jobID, applicantID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockApplicationService) Decline(ctx context.Context, jobID, applicantID uuid.UUID, callerID string) (*models.Job, error) {
	args := m.Called(ctx, jobID, applicantID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

type MockApplicantService struct {
	mock.Mock
}

func (m *MockApplicantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Applicant), args.Error(1)
}

func (m *MockApplicantService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Applicant), args.Error(1)
}

func (m *MockApplicantService) UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Applicant), args.Error(1)
}

func (m *MockApplicantService) AppliedJobs(ctx context.Context, applicantID uuid.UUID) ([]models.Job, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockApplicantService) Resume(ctx context.Context, applicantID uuid.UUID) ([]byte, string, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ services.ApplicantService = (*MockApplicantService)(nil)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
