package repo

import (
	"context"
	"datachat/internal/api/models"
	"datachat/pkg"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTableNotFound = errors.New("no table uploaded for this session")

// TableStore keeps the last uploaded table of every session. Put replaces
// the previous table of the session as a whole.
type TableStore interface {
	Get(ctx context.Context, sessionID string) (*models.Table, error)
	Put(ctx context.Context, sessionID string, table *models.Table) error
	Delete(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	table     *models.Table
	expiresAt time.Time
}

// MemoryTableStore is a process-local TableStore. A zero ttl never expires.
type MemoryTableStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryTableStore(ttl time.Duration) *MemoryTableStore {
	return &MemoryTableStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryTableStore) Get(_ context.Context, sessionID string) (*models.Table, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrTableNotFound
	}

	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		s.mu.Lock()
		// the entry may have been replaced since the read lock was released
		if current, ok := s.entries[sessionID]; ok && current.table == entry.table {
			delete(s.entries, sessionID)
		}
		s.mu.Unlock()
		return nil, ErrTableNotFound
	}
	return entry.table, nil
}

func (s *MemoryTableStore) Put(_ context.Context, sessionID string, table *models.Table) error {
	entry := memoryEntry{table: table}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[sessionID] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryTableStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// RedisTableStore keeps tables as JSON values, one key per session.
type RedisTableStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisTableStore(rdb redis.Cmdable, ttl time.Duration) *RedisTableStore {
	return &RedisTableStore{rdb: rdb, ttl: ttl}
}

func tableKey(sessionID string) string {
	return "datachat:table:" + sessionID
}

func (s *RedisTableStore) Get(ctx context.Context, sessionID string) (*models.Table, error) {
	var table models.Table
	if err := pkg.RedisGet(ctx, s.rdb, tableKey(sessionID), &table); err != nil {
		if pkg.IsRedisNil(err) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (s *RedisTableStore) Put(ctx context.Context, sessionID string, table *models.Table) error {
	return pkg.RedisSet(ctx, s.rdb, tableKey(sessionID), table, s.ttl)
}

func (s *RedisTableStore) Delete(ctx context.Context, sessionID string) error {
	return pkg.RedisDelete(ctx, s.rdb, tableKey(sessionID))
}
