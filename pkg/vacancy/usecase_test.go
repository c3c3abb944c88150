package vacancy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	byID map[int64]Vacancy
	next int64
}

func newMemRepo() *memRepo { return &memRepo{byID: map[int64]Vacancy{}} }

func (m *memRepo) Create(_ context.Context, v Vacancy) (Vacancy, error) {
	m.next++
	v.ID = m.next
	m.byID[v.ID] = v
	return v, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (Vacancy, error) {
	v, ok := m.byID[id]
	if !ok {
		return Vacancy{}, ErrNotFound
	}
	return v, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Vacancy, error) {
	var out []Vacancy
	for _, v := range m.byID {
		if v.UserID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateForOwner(_ context.Context, ownerID uuid.UUID, v Vacancy) error {
	cur, ok := m.byID[v.ID]
	if !ok || cur.UserID != ownerID {
		return ErrNotFound
	}
	cur.Title = v.Title
	cur.Description = v.Description
	m.byID[v.ID] = cur
	return nil
}

func (m *memRepo) DeleteForOwner(_ context.Context, ownerID uuid.UUID, id int64) error {
	cur, ok := m.byID[id]
	if !ok || cur.UserID != ownerID {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memRepo) ListAll(_ context.Context, limit, offset int) ([]Vacancy, error) {
	out := make([]Vacancy, 0, len(m.byID))
	for _, v := range m.byID {
		out = append(out, v)
	}
	return out, nil
}

func (m *memRepo) DeleteAny(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func TestCreate_RequiresTitle(t *testing.T) {
	uc := NewService(newMemRepo())
	_, err := uc.Create(context.Background(), Vacancy{Title: "   "})
	var vErr ErrValidation
	require.ErrorAs(t, err, &vErr)
}

func TestGetByID_HidesForeignVacancy(t *testing.T) {
	repo := newMemRepo()
	uc := NewService(repo)
	owner := uuid.New()

	created, err := uc.Create(context.Background(), Vacancy{UserID: owner, Title: "Go Developer"})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), uuid.New(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := uc.GetByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Go Developer", got.Title)
}

func TestUpdate_OwnerScoped(t *testing.T) {
	repo := newMemRepo()
	uc := NewService(repo)
	owner := uuid.New()

	created, err := uc.Create(context.Background(), Vacancy{UserID: owner, Title: "Go Developer"})
	require.NoError(t, err)

	err = uc.Update(context.Background(), uuid.New(), Vacancy{ID: created.ID, Title: "Hijacked"})
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, uc.Update(context.Background(), owner, Vacancy{ID: created.ID, Title: "Senior Go Developer"}))
	got, err := uc.GetByID(context.Background(), owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Senior Go Developer", got.Title)
}

func TestDelete_OwnerScopedAndAdminBypass(t *testing.T) {
	repo := newMemRepo()
	uc := NewService(repo)
	owner := uuid.New()

	first, err := uc.Create(context.Background(), Vacancy{UserID: owner, Title: "One"})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), Vacancy{UserID: owner, Title: "Two"})
	require.NoError(t, err)

	require.ErrorIs(t, uc.Delete(context.Background(), uuid.New(), first.ID), ErrNotFound)
	require.NoError(t, uc.Delete(context.Background(), owner, first.ID))

	// Admin path deletes regardless of owner.
	require.NoError(t, uc.DeleteAdmin(context.Background(), second.ID))
	require.ErrorIs(t, uc.DeleteAdmin(context.Background(), second.ID), ErrNotFound)
}
