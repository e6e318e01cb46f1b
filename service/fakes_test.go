package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

type memoryCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	locks   int
	unlocks int
	getErr  error
	lockErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryCache) Lock(_ context.Context, _ string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {
		c.mu.Lock()
		c.unlocks++
		c.mu.Unlock()
	}, nil
}

type memoryRecords struct {
	records []*dmn.SolveRecord
}

func (r *memoryRecords) Save(_ context.Context, record *dmn.SolveRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *memoryRecords) ByID(_ context.Context, ownerID, id uuid.UUID) (*dmn.SolveRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id && rec.OwnerID == ownerID {
			return rec, nil
		}
	}
	return nil, dmn.ErrRecordNotFound
}

func (r *memoryRecords) ByOwner(_ context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.SolveRecord, error) {
	var out []*dmn.SolveRecord
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memoryUsers struct {
	byID map[uuid.UUID]*dmn.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[uuid.UUID]*dmn.User)}
}

func (r *memoryUsers) Save(user *dmn.User) error {
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUsers) ByID(id uuid.UUID) (*dmn.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memoryUsers) ByUsername(username string) (*dmn.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.claims, s.ttl = claims, ttl
	return "token-" + claims[ClaimUsername].(string), nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(string, ...any) {}

func (l *recordingLogger) Warning(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}
