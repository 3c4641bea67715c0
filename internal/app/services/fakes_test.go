package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/app/repositories"
	"github.com/yigit/linguacrm/internal/db"
)

var (
	errStoreDown       = errors.New("store unavailable")
	errUniqueViolation = fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
)

type fakeCourseStore struct {
	courses map[uuid.UUID]models.Course
	created int
}

func newFakeCourseStore(courses ...models.Course) *fakeCourseStore {
	s := &fakeCourseStore{courses: map[uuid.UUID]models.Course{}}
	for _, c := range courses {
		s.courses[c.ID] = c
	}
	return s
}

func (s *fakeCourseStore) Create(_ context.Context, c *models.Course) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	s.courses[c.ID] = *c
	s.created++
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (s *fakeCourseStore) Update(_ context.Context, c *models.Course) error {
	old, ok := s.courses[c.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	s.courses[c.ID] = *c
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.courses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *fakeCourseStore) List(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCourseStore) ListByTeacher(_ context.Context, teacherID uuid.UUID) ([]models.Course, error) {
	out := []models.Course{}
	for _, c := range s.courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeLessonStore keeps sessions in insertion order. failOn makes the n-th Create call (1-based) fail.
type fakeLessonStore struct {
	mu      sync.Mutex
	rows    []models.LessonDetail
	calls   int
	failOn  int
	enrolls map[uuid.UUID][]uuid.UUID // student -> courses
}

func (s *fakeLessonStore) Create(_ context.Context, l *models.LessonDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failOn > 0 && s.calls == s.failOn {
		return errStoreDown
	}
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	s.rows = append(s.rows, *l)
	return nil
}

func (s *fakeLessonStore) GetByID(_ context.Context, id uuid.UUID) (*models.LessonDetail, error) {
	for _, l := range s.rows {
		if l.ID == id {
			l := l
			return &l, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeLessonStore) filter(keep func(models.LessonDetail) bool) []models.LessonDetail {
	out := []models.LessonDetail{}
	for _, l := range s.rows {
		if keep(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (s *fakeLessonStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]models.LessonDetail, error) {
	return s.filter(func(l models.LessonDetail) bool { return l.CourseID == courseID }), nil
}

func inWindow(l models.LessonDetail, from, to time.Time) bool {
	return !l.StartTime.Before(from) && !l.EndTime.After(to)
}

func (s *fakeLessonStore) ListByTeacher(_ context.Context, teacherID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	return s.filter(func(l models.LessonDetail) bool { return l.TeacherID == teacherID && inWindow(l, from, to) }), nil
}

func (s *fakeLessonStore) ListByStudent(_ context.Context, studentID uuid.UUID, from, to time.Time) ([]models.LessonDetail, error) {
	courses := map[uuid.UUID]bool{}
	for _, c := range s.enrolls[studentID] {
		courses[c] = true
	}
	return s.filter(func(l models.LessonDetail) bool { return courses[l.CourseID] && inWindow(l, from, to) }), nil
}

func (s *fakeLessonStore) update(id uuid.UUID, apply func(*models.LessonDetail)) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			apply(&s.rows[i])
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (s *fakeLessonStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.LessonStatus) error {
	return s.update(id, func(l *models.LessonDetail) { l.Status = status })
}

func (s *fakeLessonStore) UpdateTeacher(_ context.Context, id, teacherID uuid.UUID) error {
	return s.update(id, func(l *models.LessonDetail) { l.TeacherID = teacherID })
}

type fakeRooms struct {
	rooms map[uuid.UUID]models.Room
	err   error
}

func newFakeRooms(rooms ...models.Room) *fakeRooms {
	f := &fakeRooms{rooms: map[uuid.UUID]models.Room{}}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRooms) Create(_ context.Context, r *models.Room) error {
	for _, existing := range f.rooms {
		if existing.RoomName == r.RoomName {
			return errUniqueViolation
		}
	}
	r.ID = uuid.New()
	f.rooms[r.ID] = *r
	return nil
}

func (f *fakeRooms) List(_ context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomName < out[j].RoomName })
	return out, nil
}

func (f *fakeRooms) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[uuid.UUID]models.Room{}
	for _, id := range ids {
		if r, ok := f.rooms[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

type fakeTeachers map[uuid.UUID]bool

func (f fakeTeachers) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f[id], nil
}

// fakeTeacherStore enforces unique emails like the teachers table
type fakeTeacherStore struct {
	teachers map[uuid.UUID]models.Teacher
}

func newFakeTeacherStore(teachers ...models.Teacher) *fakeTeacherStore {
	s := &fakeTeacherStore{teachers: map[uuid.UUID]models.Teacher{}}
	for _, t := range teachers {
		s.teachers[t.ID] = t
	}
	return s
}

func (s *fakeTeacherStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.teachers[id]
	return ok, nil
}

func (s *fakeTeacherStore) Create(_ context.Context, t *models.Teacher) error {
	for _, existing := range s.teachers {
		if existing.Email == t.Email {
			return errUniqueViolation
		}
	}
	t.ID = uuid.New()
	s.teachers[t.ID] = *t
	return nil
}

func (s *fakeTeacherStore) GetByID(_ context.Context, id uuid.UUID) (*models.Teacher, error) {
	t, ok := s.teachers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (s *fakeTeacherStore) List(_ context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, t)
	}
	return out, nil
}

type fakeStudentStore struct {
	students map[uuid.UUID]models.Student
}

func newFakeStudentStore(students ...models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: map[uuid.UUID]models.Student{}}
	for _, st := range students {
		s.students[st.ID] = st
	}
	return s
}

func (s *fakeStudentStore) Create(_ context.Context, st *models.Student) error {
	st.ID = uuid.New()
	st.CreatedAt = time.Now()
	s.students[st.ID] = *st
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &st, nil
}

func (s *fakeStudentStore) List(_ context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	return out, nil
}

func (s *fakeStudentStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.students[id]
	return ok, nil
}

// fakeEnrollmentStore enforces one enrollment per (student, course)
type fakeEnrollmentStore struct {
	rows []models.Enrollment
}

func (s *fakeEnrollmentStore) Create(_ context.Context, e *models.Enrollment) error {
	for _, existing := range s.rows {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return errUniqueViolation
		}
	}
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	s.rows = append(s.rows, *e)
	return nil
}

func (s *fakeEnrollmentStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	out := []models.Enrollment{}
	for _, e := range s.rows {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeEnrollmentStore) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range s.rows {
		if e.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// fakeTransactor stages writes and copies them into target only when fn succeeds
type fakeTransactor struct {
	staged *fakeLessonStore
	target *fakeLessonStore
	calls  int
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	if err := fn(ctx, nil); err != nil {
		f.staged.rows = nil
		return err
	}
	f.target.rows = append(f.target.rows, f.staged.rows...)
	f.staged.rows = nil
	return nil
}
