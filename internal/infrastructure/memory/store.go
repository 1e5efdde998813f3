// Package memory is an in-process implementation of the repository contracts.
// It backs DB_DRIVER=memory for local runs and the service/handler tests, and
// enforces the same uniqueness and foreign-key rules as the SQL schema.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/mentor-hub/internal/domain/entity"
	"github.com/oksasatya/mentor-hub/internal/domain/repository"
)

type state struct {
	users        map[int64]entity.User
	mentors      map[int64]entity.MentorProfile
	nextUserID   int64
	nextMentorID int64
}

func (s *state) clone() *state {
	c := &state{
		users:        make(map[int64]entity.User, len(s.users)),
		mentors:      make(map[int64]entity.MentorProfile, len(s.mentors)),
		nextUserID:   s.nextUserID,
		nextMentorID: s.nextMentorID,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.mentors {
		c.mentors[k] = v
	}
	return c
}

// Store serializes units of work behind one mutex.
type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time

	// failMentorCreate makes the next mentor insert fail; used by tests that
	// exercise partial registrations.
	failMentorCreate error
}

func NewStore() *Store {
	return &Store{
		st:  &state{users: map[int64]entity.User{}, mentors: map[int64]entity.MentorProfile{}},
		now: time.Now,
	}
}

// FailNextMentorCreate makes the next mentor profile insert return err.
func (s *Store) FailNextMentorCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failMentorCreate = err
}

func (s *Store) Run(ctx context.Context, fn func(ctx context.Context, sess repository.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &session{store: s, st: s.st})
}

// RunInTx works on a copy of the state and swaps it in only on success.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, sess repository.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.st.clone()
	if err := fn(ctx, &session{store: s, st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

type session struct {
	store *Store
	st    *state
}

func (s *session) Users() repository.UserRepository            { return (*userRepo)(s) }
func (s *session) Mentors() repository.MentorProfileRepository { return (*mentorRepo)(s) }

type userRepo session

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.st.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.st.nextUserID++
	now := r.store.now()
	u.ID, u.CreatedAt, u.UpdatedAt = r.st.nextUserID, now, now
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.st.users))
	for _, u := range r.st.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) SetMentor(_ context.Context, id int64, isMentor bool) error {
	u, ok := r.st.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsMentor = isMentor
	u.UpdatedAt = r.store.now()
	r.st.users[id] = u
	return nil
}

type mentorRepo session

func (r *mentorRepo) Create(_ context.Context, m *entity.MentorProfile) error {
	if err := r.store.failMentorCreate; err != nil {
		r.store.failMentorCreate = nil
		return err
	}
	if _, ok := r.st.users[m.UserID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.st.mentors {
		if existing.UserID == m.UserID {
			return repository.ErrDuplicate
		}
	}
	r.st.nextMentorID++
	now := r.store.now()
	m.ID, m.CreatedAt, m.UpdatedAt = r.st.nextMentorID, now, now
	r.st.mentors[m.ID] = *m
	return nil
}

func (r *mentorRepo) GetByID(_ context.Context, id int64) (*entity.MentorProfile, error) {
	m, ok := r.st.mentors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *mentorRepo) GetByUserID(_ context.Context, userID int64) (*entity.MentorProfile, error) {
	for _, m := range r.st.mentors {
		if m.UserID == userID {
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mentorRepo) List(_ context.Context) ([]*entity.MentorProfile, error) {
	out := make([]*entity.MentorProfile, 0, len(r.st.mentors))
	for _, m := range r.st.mentors {
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mentorRepo) Update(_ context.Context, m *entity.MentorProfile) error {
	if _, ok := r.st.mentors[m.ID]; !ok {
		return repository.ErrNotFound
	}
	m.UpdatedAt = r.store.now()
	r.st.mentors[m.ID] = *m
	return nil
}

func (r *mentorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.st.mentors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.st.mentors, id)
	return nil
}

var _ repository.UnitOfWork = (*Store)(nil)
