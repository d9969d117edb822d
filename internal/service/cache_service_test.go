package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/vinnynacc/teammate-directory-api/pkg/errors"
)

// cacheRepoStub stores marshalled payloads in memory, round-tripping values
// through JSON the way the redis-backed repository does.
type cacheRepoStub struct {
	values   map[string][]byte
	getErr   error
	setErr   error
	delErr   error
	setCalls int
	deleted  []string
}

func (s *cacheRepoStub) Get(ctx context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	raw, ok := s.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *cacheRepoStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.setCalls++
	if s.setErr != nil {
		return s.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if s.values == nil {
		s.values = map[string][]byte{}
	}
	s.values[key] = raw
	return nil
}

func (s *cacheRepoStub) Delete(ctx context.Context, keys ...string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.deleted = append(s.deleted, keys...)
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &cacheRepoStub{}
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	assert.False(t, svc.Enabled())

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	assert.Zero(t, repo.setCalls)
}

func TestCacheServiceNilReceiver(t *testing.T) {
	var svc *CacheService
	assert.False(t, svc.Enabled())
}

func TestCacheServiceGetMissThenHit(t *testing.T) {
	repo := &cacheRepoStub{}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))

	hit, err = svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "v", out)
}

func TestCacheServiceGetErrorPropagates(t *testing.T) {
	repo := &cacheRepoStub{getErr: errors.New("redis down")}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestCacheServiceInvalidate(t *testing.T) {
	repo := &cacheRepoStub{values: map[string][]byte{"k": []byte(`"v"`)}}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	require.NoError(t, svc.Invalidate(context.Background(), "k"))
	assert.Equal(t, []string{"k"}, repo.deleted)
}
