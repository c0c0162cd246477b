package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/api/routes"
	"job-board-api/internal/models"
	"job-board-api/internal/services"
	"job-board-api/internal/storage"
	"job-board-api/internal/transport/dto"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories backing the full-stack flow test below. They keep
// just enough state for real services and handlers to run against.

type fakeApplicantRepo struct {
	byID        map[uuid.UUID]*models.Applicant
	resumes     map[uuid.UUID][]byte
	resumeTypes map[uuid.UUID]string
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{
		byID:        map[uuid.UUID]*models.Applicant{},
		resumes:     map[uuid.UUID][]byte{},
		resumeTypes: map[uuid.UUID]string{},
	}
}

func (r *fakeApplicantRepo) Create(ctx context.Context, req *dto.CreateApplicantRequest) (*models.Applicant, error) {
	for _, a := range r.byID {
		if a.Username == req.Username {
			return nil, storage.ErrConflict
		}
	}
	applicant := &models.Applicant{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Degrees:      []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.byID[applicant.ID] = applicant
	copied := *applicant
	return &copied, nil
}

func (r *fakeApplicantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Applicant, error) {
	applicant, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *applicant
	return &copied, nil
}

func (r *fakeApplicantRepo) GetByUsername(ctx context.Context, username string) (*models.Applicant, error) {
	for _, a := range r.byID {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *fakeApplicantRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Applicant, error) {
	applicants := []models.Applicant{}
	for _, id := range ids {
		if a, ok := r.byID[id]; ok {
			applicants = append(applicants, *a)
		}
	}
	return applicants, nil
}

func (r *fakeApplicantRepo) UpdateProfile(ctx context.Context, req *dto.UpdateApplicantProfileRequest) (*models.Applicant, error) {
	applicant, ok := r.byID[req.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if req.Name != nil {
		applicant.Name = req.Name
	}
	if req.School != nil {
		applicant.School = req.School
	}
	if req.Degrees != nil {
		applicant.Degrees = req.Degrees
	}
	if req.Resume != nil {
		r.resumes[req.ID] = req.Resume
		r.resumeTypes[req.ID] = req.ResumeContentType
		contentType := req.ResumeContentType
		applicant.ResumeContentType = &contentType
	}
	applicant.UpdatedAt = time.Now()
	copied := *applicant
	return &copied, nil
}

func (r *fakeApplicantRepo) GetResume(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	data, ok := r.resumes[id]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return data, r.resumeTypes[id], nil
}

type fakeManagerRepo struct {
	byID  map[uuid.UUID]*models.HiringManager
	order []uuid.UUID
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{byID: map[uuid.UUID]*models.HiringManager{}}
}

func (r *fakeManagerRepo) Create(ctx context.Context, req *dto.CreateHiringManagerRequest) (*models.HiringManager, error) {
	for _, m := range r.byID {
		if m.Username == req.Username {
			return nil, storage.ErrConflict
		}
	}
	manager := &models.HiringManager{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		CompanyName:  req.CompanyName,
		IsApproved:   false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.byID[manager.ID] = manager
	r.order = append(r.order, manager.ID)
	copied := *manager
	return &copied, nil
}

func (r *fakeManagerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.HiringManager, error) {
	manager, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *manager
	return &copied, nil
}

func (r *fakeManagerRepo) GetByUsername(ctx context.Context, username string) (*models.HiringManager, error) {
	for _, m := range r.byID {
		if m.Username == username {
			copied := *m
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *fakeManagerRepo) GetAll(ctx context.Context) ([]models.HiringManager, error) {
	managers := []models.HiringManager{}
	for _, id := range r.order {
		if m, ok := r.byID[id]; ok {
			managers = append(managers, *m)
		}
	}
	return managers, nil
}

func (r *fakeManagerRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	manager, ok := r.byID[id]
	if !ok {
		return storage.ErrNotFound
	}
	manager.IsApproved = approved
	manager.UpdatedAt = time.Now()
	return nil
}

func (r *fakeManagerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeJobRepo struct {
	byID  map[uuid.UUID]*models.Job
	order []uuid.UUID
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[uuid.UUID]*models.Job{}}
}

func (r *fakeJobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Category:        req.Category,
		Salary:          req.Salary,
		PostDate:        req.PostDate,
		HiringManagerID: req.HiringManagerID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	r.byID[job.ID] = job
	r.order = append(r.order, job.ID)
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]models.Job, error) {
	jobs := []models.Job{}
	for _, id := range r.order {
		if job, ok := r.byID[id]; ok && job.HiringManagerID == managerID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	for _, id := range r.order {
		if job, ok := r.byID[id]; ok {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, ok := r.byID[req.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.PostDate != nil {
		job.PostDate = *req.PostDate
	}
	job.UpdatedAt = time.Now()
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) ListIDsByManager(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, id := range r.order {
		if job, ok := r.byID[id]; ok && job.HiringManagerID == managerID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type applicationKey struct {
	jobID       uuid.UUID
	applicantID uuid.UUID
}

type fakeApplicationRepo struct {
	byKey map[applicationKey]*models.Application
	order []applicationKey
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byKey: map[applicationKey]*models.Application{}}
}

func (r *fakeApplicationRepo) Insert(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	key := applicationKey{jobID: jobID, applicantID: applicantID}
	if _, ok := r.byKey[key]; ok {
		return false, nil
	}
	r.byKey[key] = &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.order = append(r.order, key)
	return true, nil
}

func (r *fakeApplicationRepo) Get(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	app, ok := r.byKey[applicationKey{jobID: jobID, applicantID: applicantID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	for _, key := range r.order {
		if key.jobID == jobID {
			apps = append(apps, *r.byKey[key])
		}
	}
	return apps, nil
}

func (r *fakeApplicationRepo) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	for _, jobID := range jobIDs {
		jobApps, _ := r.ListByJob(ctx, jobID)
		apps = append(apps, jobApps...)
	}
	return apps, nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	for _, key := range r.order {
		if key.applicantID == applicantID {
			apps = append(apps, *r.byKey[key])
		}
	}
	return apps, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, jobID, applicantID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	app, ok := r.byKey[applicationKey{jobID: jobID, applicantID: applicantID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if app.Status != models.StatusPending {
		return nil, storage.ErrStaleStatus
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	copied := *app
	return &copied, nil
}

// setupFlowRouter wires real services, handlers, middleware and routes over
// the in-memory repositories, mirroring the production wiring in
// routes.RegisterRoutes.
func setupFlowRouter() http.Handler {
	applicants := newFakeApplicantRepo()
	managers := newFakeManagerRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()

	tokens := newTestTokens()
	authService := services.NewAuthService(applicants, managers, tokens, services.AdminCredentials{
		Username: "admin",
		Password: "admin-password",
	})
	adminService := services.NewAdminService(managers, jobs)
	jobService := services.NewJobService(jobs, apps)
	applicationService := services.NewApplicationService(apps, jobs, applicants)
	applicantService := services.NewApplicantService(applicants, apps, jobs)

	validate := validator.New()
	router := newTestRouter()
	api := router.Group("/api")
	routes.RegisterAuthRoutes(api, handlers.NewAuthHandler(authService, validate))
	routes.RegisterAdminRoutes(api, handlers.NewAdminHandler(adminService),
		middleware.RequireRole(tokens, models.RoleAdmin))
	routes.RegisterManagerRoutes(api,
		handlers.NewJobHandler(jobService, applicationService, applicantService, validate),
		middleware.RequireRole(tokens, models.RoleHiringManager),
		middleware.Authenticate(tokens),
	)
	routes.RegisterApplicantRoutes(api,
		handlers.NewApplicantHandler(applicantService, applicationService, jobService, validate),
		middleware.Authenticate(tokens),
	)
	return router
}

// TestHiringFlow_EndToEnd walks the whole lifecycle through the HTTP surface:
// register both principals, approve the manager, post a job, apply, accept
// the applicant and finally delete the job.
func TestHiringFlow_EndToEnd(t *testing.T) {
	router := setupFlowRouter()

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		recorder, request := managerRequest(method, path, token, body)
		router.ServeHTTP(recorder, request)
		return recorder
	}

	rec := do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "alice", Password: "applicant-pass", Role: "applicant",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "bob", Password: "manager-pass", Role: "hiringManager", CompanyName: "Acme Corp",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The manager cannot log in before an admin approves the account.
	rec = do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "bob", Password: "manager-pass", Role: "hiringManager",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your account is not yet approved by an admin.")

	rec = do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "admin", Password: "admin-password", Role: "admin",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var adminLogin dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adminLogin))

	rec = do(http.MethodGet, "/api/admin/hiring-managers", adminLogin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pendingManagers []models.HiringManager
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pendingManagers))
	require.Len(t, pendingManagers, 1)
	assert.False(t, pendingManagers[0].IsApproved)
	managerID := pendingManagers[0].ID

	rec = do(http.MethodPatch, "/api/admin/hiring-managers/"+managerID.String()+"/approve", adminLogin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hiring manager approved successfully")

	rec = do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "bob", Password: "manager-pass", Role: "hiringManager",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var managerLogin dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &managerLogin))

	rec = do(http.MethodPost, "/api/manager/jobs", managerLogin.Token, dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build the job board API",
		Location:    "Remote",
		Category:    "Engineering",
		Salary:      "90k-110k",
		PostDate:    "2026-08-31",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var job models.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, managerID, job.HiringManagerID)

	rec = do(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "alice", Password: "applicant-pass", Role: "applicant",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var applicantLogin dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applicantLogin))

	identity, err := newTestTokens().Verify(applicantLogin.Token)
	require.NoError(t, err)
	applicantID, err := uuid.Parse(identity.SubjectID)
	require.NoError(t, err)

	rec = do(http.MethodPost, "/api/applicant/apply", applicantLogin.Token, dto.ApplyRequest{
		ApplicantID: applicantID, JobID: job.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Applied to job successfully")

	acceptPath := "/api/manager/jobs/" + job.ID.String() + "/applicants/" + applicantID.String() + "/accept"
	rec = do(http.MethodPut, acceptPath, managerLogin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Applicant accepted")

	var decided struct {
		Job models.Job `json:"job"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decided))
	require.Len(t, decided.Job.ApplicantStatuses, 1)
	assert.Equal(t, applicantID, decided.Job.ApplicantStatuses[0].ApplicantID)
	assert.Equal(t, models.StatusAccepted, decided.Job.ApplicantStatuses[0].Status)

	// A second decision on the same applicant is rejected.
	rec = do(http.MethodPut, acceptPath, managerLogin.Token, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Applicant status already decided")

	rec = do(http.MethodDelete, "/api/manager/jobs/"+job.ID.String(), managerLogin.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job deleted successfully")

	rec = do(http.MethodGet, "/api/manager/jobs/"+job.ID.String(), managerLogin.Token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
