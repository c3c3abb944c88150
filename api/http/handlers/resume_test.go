package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/recruiting/pkg/resume"
)

// stubResumeUC lets each test override only the calls it cares about.
type stubResumeUC struct {
	create     func(ctx context.Context, callerID uuid.UUID, vacancyID int64, r resume.Resume) (resume.Resume, error)
	getByID    func(ctx context.Context, callerID uuid.UUID, id int64) (resume.Resume, error)
	deleteFunc func(ctx context.Context, callerID uuid.UUID, id int64) error
}

func (s stubResumeUC) Create(ctx context.Context, callerID uuid.UUID, vacancyID int64, r resume.Resume) (resume.Resume, error) {
	return s.create(ctx, callerID, vacancyID, r)
}

func (s stubResumeUC) GetByID(ctx context.Context, callerID uuid.UUID, id int64) (resume.Resume, error) {
	return s.getByID(ctx, callerID, id)
}

func (s stubResumeUC) ListByOwner(context.Context, uuid.UUID) ([]resume.Resume, error) {
	return nil, nil
}

func (s stubResumeUC) ListByStage(context.Context, uuid.UUID, int64, resume.Status) ([]resume.Resume, error) {
	return nil, nil
}

func (s stubResumeUC) Update(context.Context, uuid.UUID, resume.Patch) (resume.Resume, error) {
	return resume.Resume{}, nil
}

func (s stubResumeUC) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	return s.deleteFunc(ctx, callerID, id)
}

func (s stubResumeUC) ListAny(context.Context, int, int) ([]resume.Resume, error) {
	return nil, nil
}

func (s stubResumeUC) DeleteAny(context.Context, int64) error { return nil }

func (s stubResumeUC) CreateCandidate(context.Context, resume.Candidate) (resume.Candidate, error) {
	return resume.Candidate{}, nil
}

func (s stubResumeUC) GetCandidate(context.Context, int64) (resume.Candidate, error) {
	return resume.Candidate{}, nil
}

func (s stubResumeUC) UpdateCandidate(context.Context, int64, resume.CandidatePatch) (resume.Candidate, error) {
	return resume.Candidate{}, nil
}

func (s stubResumeUC) DeleteCandidate(context.Context, int64) error { return nil }

func resumeApp(uc resume.UseCase, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", userID.String())
		return c.Next()
	})
	h := NewResumeHandler(uc)
	app.Post("/resume", h.Create)
	app.Get("/resume/labels", h.Labels)
	app.Get("/resume/:id", h.GetByID)
	app.Delete("/resume/:id", h.Delete)
	return app
}

func TestResumeCreate_PassesVacancyFromBody(t *testing.T) {
	caller := uuid.New()
	uc := stubResumeUC{
		create: func(_ context.Context, callerID uuid.UUID, vacancyID int64, r resume.Resume) (resume.Resume, error) {
			require.Equal(t, caller, callerID)
			require.Equal(t, int64(7), vacancyID)
			r.ID = 1
			return r, nil
		},
	}
	app := resumeApp(uc, caller)

	body := []byte(`{"vacancy_id":7,"job_title":"Backend Developer","candidate":{"first_name":"Jane"}}`)
	req := httptest.NewRequest("POST", "/resume", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got resume.Resume
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "Backend Developer", got.JobTitle)
}

func TestResumeCreate_RequiresVacancyID(t *testing.T) {
	app := resumeApp(stubResumeUC{}, uuid.New())

	req := httptest.NewRequest("POST", "/resume", bytes.NewReader([]byte(`{"job_title":"x"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestResumeGet_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{resume.ErrNotFound, fiber.StatusNotFound},
		{resume.ErrForbidden, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		uc := stubResumeUC{
			getByID: func(context.Context, uuid.UUID, int64) (resume.Resume, error) {
				return resume.Resume{}, tc.err
			},
		}
		app := resumeApp(uc, uuid.New())
		resp, err := app.Test(httptest.NewRequest("GET", "/resume/5", nil))
		require.NoError(t, err)
		require.Equal(t, tc.code, resp.StatusCode)
	}
}

func TestResumeDelete_ConfirmationPayload(t *testing.T) {
	uc := stubResumeUC{
		deleteFunc: func(context.Context, uuid.UUID, int64) error { return nil },
	}
	app := resumeApp(uc, uuid.New())

	resp, err := app.Test(httptest.NewRequest("DELETE", "/resume/3", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"success":"Resume with id 3 deleted."}`, string(raw))
}

func TestResumeLabels_CoversAllEnums(t *testing.T) {
	app := resumeApp(stubResumeUC{}, uuid.New())

	resp, err := app.Test(httptest.NewRequest("GET", "/resume/labels", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string][]labelDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got["resume_status"], 5)
	require.Len(t, got["interest_in_job"], 4)
	require.Len(t, got["gender"], 3)
	require.Len(t, got["degree"], 10)
}
