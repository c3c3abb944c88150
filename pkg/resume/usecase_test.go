package resume

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/recruiting/pkg/vacancy"
)

type mockRepo struct {
	byID        map[int64]Resume
	createCalls int
	updated     *Resume
	deleted     []int64
}

func newMockRepo() *mockRepo { return &mockRepo{byID: map[int64]Resume{}} }

func (m *mockRepo) CreateAggregate(_ context.Context, r Resume) (Resume, error) {
	m.createCalls++
	r.ID = int64(len(m.byID) + 1)
	r.Candidate.ID = r.ID
	m.byID[r.ID] = r
	return r, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (Resume, error) {
	r, ok := m.byID[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return r, nil
}

func (m *mockRepo) ListByOwner(context.Context, uuid.UUID) ([]Resume, error) { return nil, nil }

func (m *mockRepo) ListAll(_ context.Context, limit, offset int) ([]Resume, error) {
	out := make([]Resume, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) ListByVacancyAndStatus(_ context.Context, vacancyID int64, status Status) ([]Resume, error) {
	var out []Resume
	for _, r := range m.byID {
		if r.VacancyID == vacancyID && r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateAggregate(_ context.Context, r Resume) error {
	if _, ok := m.byID[r.ID]; !ok {
		return ErrNotFound
	}
	m.updated = &r
	m.byID[r.ID] = r
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockCandidates struct {
	byID map[int64]Candidate
	next int64
}

func newMockCandidates() *mockCandidates { return &mockCandidates{byID: map[int64]Candidate{}} }

func (m *mockCandidates) Create(_ context.Context, c Candidate) (Candidate, error) {
	m.next++
	c.ID = m.next
	m.byID[c.ID] = c
	return c, nil
}

func (m *mockCandidates) GetByID(_ context.Context, id int64) (Candidate, error) {
	c, ok := m.byID[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return c, nil
}

func (m *mockCandidates) Update(_ context.Context, c Candidate) error {
	if _, ok := m.byID[c.ID]; !ok {
		return ErrNotFound
	}
	m.byID[c.ID] = c
	return nil
}

func (m *mockCandidates) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

type mockVacancies struct {
	byID map[int64]vacancy.Vacancy
}

func (m mockVacancies) GetByID(_ context.Context, id int64) (vacancy.Vacancy, error) {
	v, ok := m.byID[id]
	if !ok {
		return vacancy.Vacancy{}, vacancy.ErrNotFound
	}
	return v, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(owner uuid.UUID) (*mockRepo, *mockCandidates, UseCase) {
	repo := newMockRepo()
	cands := newMockCandidates()
	guard := NewGuard(mockVacancies{byID: map[int64]vacancy.Vacancy{
		1: {ID: 1, UserID: owner, Title: "Go Developer"},
	}})
	return repo, cands, NewService(repo, cands, guard, quietLogger())
}

func validResume() Resume {
	return Resume{
		JobTitle: "Backend Developer",
		Candidate: Candidate{
			FirstName: "Jane",
		},
	}
}

func TestCreate_DefaultsStatusToInWork(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)
	require.Equal(t, StatusInWork, created.Status)
	require.Equal(t, int64(1), created.VacancyID)
	require.NotZero(t, created.ID)
	require.Equal(t, 1, repo.createCalls)
}

func TestCreate_RejectsForeignVacancy(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	_, err := uc.Create(context.Background(), uuid.New(), 1, validResume())
	require.ErrorIs(t, err, ErrForbidden)
	require.Zero(t, repo.createCalls)
}

func TestCreate_UnknownVacancy(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	_, err := uc.Create(context.Background(), owner, 42, validResume())
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, repo.createCalls)
}

func TestCreate_ValidatesBeforePersisting(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	bad := validResume()
	rating := 11
	bad.Rating = &rating

	_, err := uc.Create(context.Background(), owner, 1, bad)
	require.True(t, IsValidation(err), "expected validation error, got %v", err)
	require.Zero(t, repo.createCalls)
}

func TestGetByID_ForbiddenForOtherCaller(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), uuid.New(), created.ID)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := uc.GetByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestListByStage_RejectsUnknownStatus(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	_, err := uc.ListByStage(context.Background(), owner, 1, Status("archived"))
	require.True(t, IsValidation(err), "expected validation error, got %v", err)
}

func TestListByStage_FiltersByStatus(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	first, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	offer := validResume()
	offer.Status = StatusOffer
	_, err = uc.Create(context.Background(), owner, 1, offer)
	require.NoError(t, err)

	list, err := uc.ListByStage(context.Background(), owner, 1, StatusInWork)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, first.ID, list[0].ID)
}

func TestUpdate_PartialLeavesOtherFieldsIntact(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	rating := 8
	updated, err := uc.Update(context.Background(), owner, Patch{ID: created.ID, Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 8, *updated.Rating)
	require.Equal(t, "Backend Developer", updated.JobTitle)
	require.Equal(t, "Jane", updated.Candidate.FirstName)
	require.Equal(t, StatusInWork, updated.Status)
}

func TestUpdate_IsIdempotent(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	status := StatusScreening
	p := Patch{ID: created.ID, Status: &status}
	first, err := uc.Update(context.Background(), owner, p)
	require.NoError(t, err)
	second, err := uc.Update(context.Background(), owner, p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUpdate_SkipsForeignChildRecords(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	r := validResume()
	r.Educations = []Education{{
		EducationalInstitution: "МГУ",
		Degree:                 DegreeMaster,
		Year:                   2018,
		Specialization:         "Computer Science",
	}}
	created, err := uc.Create(context.Background(), owner, 1, r)
	require.NoError(t, err)

	// Seed the stored aggregate with child ids the way storage would.
	stored := repo.byID[created.ID]
	stored.Educations[0].ID = 10
	stored.Educations[0].ResumeID = created.ID
	repo.byID[created.ID] = stored

	inst := "СПбГУ"
	foreign := "чужой вуз"
	updated, err := uc.Update(context.Background(), owner, Patch{
		ID: created.ID,
		Educations: []EducationPatch{
			{ID: 10, EducationalInstitution: &inst},
			{ID: 999, EducationalInstitution: &foreign},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Educations, 1)
	require.Equal(t, "СПбГУ", updated.Educations[0].EducationalInstitution)
}

func TestUpdate_NotFound(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	title := "QA"
	_, err := uc.Update(context.Background(), owner, Patch{ID: 404, JobTitle: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ChecksOwnershipFirst(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	err = uc.Delete(context.Background(), uuid.New(), created.ID)
	require.ErrorIs(t, err, ErrForbidden)
	require.Empty(t, repo.deleted)

	require.NoError(t, uc.Delete(context.Background(), owner, created.ID))
	require.Equal(t, []int64{created.ID}, repo.deleted)
}

func TestDeleteAny_SkipsOwnershipCheck(t *testing.T) {
	owner := uuid.New()
	repo, _, uc := newTestService(owner)

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteAny(context.Background(), created.ID))
	require.Equal(t, []int64{created.ID}, repo.deleted)
}

func TestCandidate_UpdateMergesOnlySetFields(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	city := "Москва"
	created, err := uc.CreateCandidate(context.Background(), Candidate{FirstName: "Иван", City: &city})
	require.NoError(t, err)

	last := "Петров"
	updated, err := uc.UpdateCandidate(context.Background(), created.ID, CandidatePatch{LastName: &last})
	require.NoError(t, err)
	require.Equal(t, "Иван", updated.FirstName)
	require.Equal(t, "Петров", *updated.LastName)
	require.Equal(t, "Москва", *updated.City)
}

func TestCandidate_CreateValidates(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	_, err := uc.CreateCandidate(context.Background(), Candidate{})
	require.True(t, IsValidation(err), "expected validation error, got %v", err)
}

func TestCandidate_DeleteUnknown(t *testing.T) {
	owner := uuid.New()
	_, _, uc := newTestService(owner)

	err := uc.DeleteCandidate(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPatchApply_CandidateWithoutIdentity(t *testing.T) {
	r := validResume()
	r.ID = 1
	name := "Анна"
	_, err := Patch{ID: 1, Candidate: &CandidatePatch{FirstName: &name}}.Apply(&r)
	require.ErrorIs(t, err, ErrIntegrity)
}

var errBoom = errors.New("boom")

type failingRepo struct{ *mockRepo }

func (f failingRepo) UpdateAggregate(context.Context, Resume) error { return errBoom }

func TestUpdate_PropagatesStorageError(t *testing.T) {
	owner := uuid.New()
	repo, cands, _ := newTestService(owner)
	guard := NewGuard(mockVacancies{byID: map[int64]vacancy.Vacancy{
		1: {ID: 1, UserID: owner},
	}})
	uc := NewService(failingRepo{repo}, cands, guard, quietLogger())

	created, err := uc.Create(context.Background(), owner, 1, validResume())
	require.NoError(t, err)

	status := StatusOffer
	_, err = uc.Update(context.Background(), owner, Patch{ID: created.ID, Status: &status})
	require.ErrorIs(t, err, errBoom)
}
