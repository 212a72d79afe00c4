package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/storage"
)

var errBoom = errors.New("boom")

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

func imageFile(name string, size int64) File {
	return File{
		Name:        name,
		ContentType: "image/png",
		Size:        size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("png-bytes")), nil
		},
	}
}

type fakeObjectStore struct {
	mu      sync.Mutex
	log     *callLog
	objects map[string]bool

	// failUpload fails uploads whose key ends with this suffix.
	failUpload string
	failRemove map[string]error
}

func newFakeObjectStore(log *callLog) *fakeObjectStore {
	return &fakeObjectStore{log: log, objects: map[string]bool{}, failRemove: map[string]error{}}
}

func (s *fakeObjectStore) Upload(ctx context.Context, bucket, key string, body io.Reader, _ int64, _ string) error {
	s.log.add("upload %s", bucket)
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.failUpload != "" && strings.HasSuffix(key, s.failUpload) {
		return errBoom
	}
	if _, err := io.ReadAll(body); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = true
	return nil
}

func (s *fakeObjectStore) Remove(_ context.Context, bucket string, keys ...string) error {
	s.log.add("remove %s %s", bucket, strings.Join(keys, ","))
	if err := s.failRemove[bucket]; err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var missing error
	for _, k := range keys {
		if !s.objects[bucket+"/"+k] {
			missing = errors.Join(missing, fmt.Errorf("%w: %s", storage.ErrObjectNotFound, k))
			continue
		}
		delete(s.objects, bucket+"/"+k)
	}
	return missing
}

func (s *fakeObjectStore) PublicURL(bucket, key string) string {
	return storage.JoinPublicURL("https://cdn.test/public", bucket, key)
}

func (s *fakeObjectStore) has(bucket, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[bucket+"/"+key]
}

func (s *fakeObjectStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type fakeRestaurantStore struct {
	log  *callLog
	rows map[uuid.UUID]models.Restaurant

	createErr error
	listErr   error
	deleteErr error
	created   int
}

func newFakeRestaurantStore(log *callLog) *fakeRestaurantStore {
	return &fakeRestaurantStore{log: log, rows: map[uuid.UUID]models.Restaurant{}}
}

func (s *fakeRestaurantStore) Create(_ context.Context, r *models.Restaurant) error {
	s.log.add("db create")
	s.created++
	if s.createErr != nil {
		return s.createErr
	}
	r.Prepare()
	r.CreatedAt = time.Now()
	s.rows[r.ID] = *r
	return nil
}

func (s *fakeRestaurantStore) List(context.Context) ([]models.Restaurant, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Restaurant, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b models.Restaurant) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (s *fakeRestaurantStore) GetByID(_ context.Context, id uuid.UUID) (*models.Restaurant, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *fakeRestaurantStore) Update(_ context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	s.log.add("db update")
	existing, ok := s.rows[r.ID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	r.CreatedAt = existing.CreatedAt
	s.rows[r.ID] = *r
	out := *r
	return &out, nil
}

func (s *fakeRestaurantStore) Delete(_ context.Context, id uuid.UUID) error {
	s.log.add("db delete")
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeRestaurantStore) Count(context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

func (s *fakeRestaurantStore) seed(r models.Restaurant) models.Restaurant {
	r.Prepare()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.rows[r.ID] = r
	return r
}

type fakeDraftStore struct {
	drafts map[string]models.EditDraft
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string]models.EditDraft{}}
}

func (s *fakeDraftStore) SaveDraft(_ context.Context, d *models.EditDraft) error {
	c := *d
	c.Images = slices.Clone(d.Images)
	c.ImageKeys = slices.Clone(d.ImageKeys)
	s.drafts[d.ID] = c
	return nil
}

func (s *fakeDraftStore) LoadDraft(_ context.Context, id string) (*models.EditDraft, error) {
	d, ok := s.drafts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	d.Images = slices.Clone(d.Images)
	d.ImageKeys = slices.Clone(d.ImageKeys)
	return &d, nil
}

func (s *fakeDraftStore) DeleteDraft(_ context.Context, id string) error {
	delete(s.drafts, id)
	return nil
}

type fakeDescriptionStore struct {
	row *models.SiteDescription
}

func (s *fakeDescriptionStore) First(context.Context) (*models.SiteDescription, error) {
	if s.row == nil {
		return nil, nil
	}
	c := *s.row
	return &c, nil
}

func (s *fakeDescriptionStore) Update(_ context.Context, id int64, d *models.SiteDescription) error {
	if s.row == nil || s.row.ID != id {
		return repositories.ErrNotFound
	}
	c := *d
	c.ID = id
	s.row = &c
	return nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.Prepare()
	u.CreatedAt = time.Now()
	c := *u
	s.users[u.ID] = &c
	return nil
}

func (s *fakeUserStore) FindUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (s *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CountUsers(context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.LastLoginAt = &at
	return nil
}

type fakeProfileStore struct {
	profiles map[uuid.UUID]models.AdminProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: map[uuid.UUID]models.AdminProfile{}}
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.AdminProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeProfileStore) Create(_ context.Context, p *models.AdminProfile) error {
	p.Prepare()
	s.profiles[p.UserID] = *p
	return nil
}

func (s *fakeProfileStore) Update(_ context.Context, p *models.AdminProfile) error {
	existing, ok := s.profiles[p.UserID]
	if !ok {
		return repositories.ErrNotFound
	}
	p.Prepare()
	p.CreatedAt = existing.CreatedAt
	s.profiles[p.UserID] = *p
	return nil
}

type fakeSessionStore struct {
	sessions  map[string]models.Session
	blacklist map[string]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.Session{}, blacklist: map[string]time.Duration{}}
}

func (s *fakeSessionStore) StoreSession(_ context.Context, sess *models.Session) error {
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *fakeSessionStore) GetSession(_ context.Context, id string) (*models.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (s *fakeSessionStore) DeleteSession(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *fakeSessionStore) Blacklist(_ context.Context, jti string, ttl time.Duration) error {
	s.blacklist[jti] = ttl
	return nil
}

func (s *fakeSessionStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	_, ok := s.blacklist[jti]
	return ok, nil
}
