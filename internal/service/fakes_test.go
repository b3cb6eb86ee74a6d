package service

import (
	"context"
	"sort"
	"time"

	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/repository"
)

type fakeUsers struct {
	byID   map[int64]*model.User
	nextID int64
}

func newFakeUsers(users ...model.User) *fakeUsers {
	f := &fakeUsers{byID: make(map[int64]*model.User)}
	for _, u := range users {
		u := u
		f.byID[u.ID] = &u
		if u.ID > f.nextID {
			f.nextID = u.ID
		}
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *model.User) error {
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) countEmail(email string) int {
	n := 0
	for _, u := range f.byID {
		if u.Email == email {
			n++
		}
	}
	return n
}

type fakeSessions struct {
	byID   map[int64]*model.Session
	nextID int64
	saves  int
}

func newFakeSessions(sessions ...model.Session) *fakeSessions {
	f := &fakeSessions{byID: make(map[int64]*model.Session)}
	for _, s := range sessions {
		s := s
		f.byID[s.ID] = &s
		if s.ID > f.nextID {
			f.nextID = s.ID
		}
	}
	return f
}

func (f *fakeSessions) List(_ context.Context) ([]model.Session, error) {
	ids := make([]int64, 0, len(f.byID))
	for id := range f.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]model.Session, 0, len(ids))
	for _, id := range ids {
		result = append(result, cloneSession(f.byID[id]))
	}
	return result, nil
}

func (f *fakeSessions) GetByID(_ context.Context, id int64) (*model.Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	copied := cloneSession(s)
	return &copied, nil
}

func (f *fakeSessions) Create(_ context.Context, session *model.Session) error {
	f.nextID++
	session.ID = f.nextID
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	stored := cloneSession(session)
	f.byID[session.ID] = &stored
	return nil
}

func (f *fakeSessions) Save(_ context.Context, session *model.Session) error {
	f.saves++
	session.UpdatedAt = time.Now()
	stored := cloneSession(session)
	f.byID[session.ID] = &stored
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func cloneSession(s *model.Session) model.Session {
	copied := *s
	copied.Participants = append([]model.User(nil), s.Participants...)
	return copied
}

type fakeTeachers struct {
	byID map[int64]*model.Teacher
}

func newFakeTeachers(teachers ...model.Teacher) *fakeTeachers {
	f := &fakeTeachers{byID: make(map[int64]*model.Teacher)}
	for _, t := range teachers {
		t := t
		f.byID[t.ID] = &t
	}
	return f
}

func (f *fakeTeachers) List(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for id := int64(1); id <= int64(len(f.byID)); id++ {
		if t, ok := f.byID[id]; ok {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (f *fakeTeachers) GetByID(_ context.Context, id int64) (*model.Teacher, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrTeacherNotFound
	}
	copied := *t
	return &copied, nil
}

type countingIssuer struct {
	TokenIssuer
	issued int
}

func (c *countingIssuer) Issue(identity model.Identity) (string, error) {
	c.issued++
	return c.TokenIssuer.Issue(identity)
}
