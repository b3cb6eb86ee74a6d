package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
	"github.com/yogastudio/yoga-api/internal/testfixtures"
)

func TestSessionRepositoryCreateAndGet(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)
	u := h.CreateUser(t, "a@x.com")

	s := h.CreateSession(t, "Morning flow", 1, *u)
	assert.NotZero(t, s.ID)

	got, err := h.Sessions.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Morning flow", got.Name)
	assert.Equal(t, "A relaxing yoga session", got.Description)
	assert.True(t, got.Date.Equal(testfixtures.ReferenceTime()))
	require.NotNil(t, got.Teacher)
	assert.Equal(t, int64(1), got.Teacher.ID)
	assert.Equal(t, "DELAHAYE", got.Teacher.LastName)
	assert.Equal(t, []int64{u.ID}, got.ParticipantIDs())
}

func TestSessionRepositoryWithoutTeacher(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)

	s := h.CreateSession(t, "Open floor", 0)

	got, err := h.Sessions.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Teacher)
	assert.Empty(t, got.Participants)
}

func TestSessionRepositoryGetMissing(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)

	_, err := h.Sessions.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepositorySaveReplacesParticipants(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)
	ctx := context.Background()
	a := h.CreateUser(t, "a@x.com")
	b := h.CreateUser(t, "b@x.com")
	s := h.CreateSession(t, "Morning flow", 1, *a)

	s.Name = "Evening flow"
	s.Teacher = &model.Teacher{ID: 2}
	s.Participants = []model.User{*b, *b}
	require.NoError(t, h.Sessions.Save(ctx, s))

	got, err := h.Sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening flow", got.Name)
	assert.Equal(t, int64(2), got.Teacher.ID)
	assert.Equal(t, []int64{b.ID}, got.ParticipantIDs())
	assert.True(t, got.CreatedAt.Equal(s.CreatedAt))
}

func TestSessionRepositoryList(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)
	a := h.CreateUser(t, "a@x.com")
	first := h.CreateSession(t, "First", 1, *a)
	second := h.CreateSession(t, "Second", 2)

	sessions, err := h.Sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, []int64{a.ID}, sessions[0].ParticipantIDs())
	assert.Equal(t, second.ID, sessions[1].ID)
	assert.Empty(t, sessions[1].Participants)
}

func TestSessionRepositoryDelete(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)
	ctx := context.Background()
	a := h.CreateUser(t, "a@x.com")
	s := h.CreateSession(t, "First", 1, *a)

	require.NoError(t, h.Sessions.Delete(ctx, s.ID))
	require.NoError(t, h.Sessions.Delete(ctx, s.ID))

	_, err := h.Sessions.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	_, err = h.Users.GetByID(ctx, a.ID)
	assert.NoError(t, err)
}

func TestTeacherRepository(t *testing.T) {
	h := testfixtures.NewSQLiteHarness(t)
	ctx := context.Background()

	teachers, err := h.Teachers.List(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Margot", teachers[0].FirstName)

	teacher, err := h.Teachers.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "THIERCELIN", teacher.LastName)

	_, err = h.Teachers.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrTeacherNotFound)
}
