package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swcleaning/ai-responder/pkg/logging"
)

const entriesKey = "kb:entries"

// Repository stores and retrieves editable knowledge documents.
type Repository interface {
	All(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, category string) (Entry, error)
	Put(ctx context.Context, category, content string) (Entry, error)
}

// ErrNotFound is returned when a category has no document.
var ErrNotFound = fmt.Errorf("knowledge: category not found")

// RedisRepository persists entries in a Redis hash keyed by category. A
// fresh store is seeded with the built-in documents on construction.
type RedisRepository struct {
	client *redis.Client
	log    *logging.Logger
	now    func() time.Time
}

// NewRedisRepository creates the repository and seeds the store when empty.
func NewRedisRepository(ctx context.Context, client *redis.Client, log *logging.Logger) (*RedisRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("knowledge: redis client cannot be nil")
	}
	if log == nil {
		log = logging.Default()
	}

	r := &RedisRepository{client: client, log: log, now: time.Now}

	n, err := client.HLen(ctx, entriesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("knowledge: check store: %w", err)
	}
	if n == 0 {
		if err := r.seed(ctx); err != nil {
			return nil, err
		}
		log.Info("knowledge store seeded", "entries", len(builtinEntries()))
	}
	return r, nil
}

func (r *RedisRepository) seed(ctx context.Context) error {
	pipe := r.client.TxPipeline()
	for _, entry := range builtinEntries() {
		raw, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("knowledge: marshal seed entry %s: %w", entry.Category, err)
		}
		pipe.HSet(ctx, entriesKey, entry.Category, raw)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("knowledge: seed store: %w", err)
	}
	return nil
}

// All returns every document keyed by category. On store errors it degrades
// to the static fallback so prompt assembly never goes out empty-handed.
func (r *RedisRepository) All(ctx context.Context) (map[string]string, error) {
	raw, err := r.client.HGetAll(ctx, entriesKey).Result()
	if err != nil {
		r.log.Warn("knowledge store unavailable, using fallback", "error", err)
		return Fallback(), nil
	}
	if len(raw) == 0 {
		return Fallback(), nil
	}

	out := make(map[string]string, len(raw))
	for category, val := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			r.log.Warn("skipping malformed knowledge entry", "category", category, "error", err)
			continue
		}
		out[category] = entry.Content
	}
	return out, nil
}

// Get returns one document.
func (r *RedisRepository) Get(ctx context.Context, category string) (Entry, error) {
	val, err := r.client.HGet(ctx, entriesKey, category).Result()
	if err == redis.Nil {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("knowledge: get %s: %w", category, err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return Entry{}, fmt.Errorf("knowledge: unmarshal %s: %w", category, err)
	}
	return entry, nil
}

// Put creates or replaces a document, bumping its version.
func (r *RedisRepository) Put(ctx context.Context, category, content string) (Entry, error) {
	entry := Entry{
		ID:        "kb_" + category,
		Category:  category,
		Content:   content,
		Timestamp: r.now(),
		Version:   1,
	}
	if existing, err := r.Get(ctx, category); err == nil {
		entry.ID = existing.ID
		entry.Version = existing.Version + 1
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("knowledge: marshal %s: %w", category, err)
	}
	if err := r.client.HSet(ctx, entriesKey, category, raw).Err(); err != nil {
		return Entry{}, fmt.Errorf("knowledge: put %s: %w", category, err)
	}
	return entry, nil
}

// StaticRepository serves the built-in documents without external storage.
// It is the fallback when no Redis address is configured; edits are not
// persisted across restarts.
type StaticRepository struct {
	entries map[string]Entry
	now     func() time.Time
}

// NewStaticRepository loads the built-in documents into memory.
func NewStaticRepository() *StaticRepository {
	entries := make(map[string]Entry)
	for _, entry := range builtinEntries() {
		entries[entry.Category] = entry
	}
	return &StaticRepository{entries: entries, now: time.Now}
}

func (s *StaticRepository) All(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s.entries))
	for category, entry := range s.entries {
		out[category] = entry.Content
	}
	return out, nil
}

func (s *StaticRepository) Get(_ context.Context, category string) (Entry, error) {
	entry, ok := s.entries[category]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

func (s *StaticRepository) Put(_ context.Context, category, content string) (Entry, error) {
	entry := Entry{
		ID:        "kb_" + category,
		Category:  category,
		Content:   content,
		Timestamp: s.now(),
		Version:   1,
	}
	if existing, ok := s.entries[category]; ok {
		entry.ID = existing.ID
		entry.Version = existing.Version + 1
	}
	s.entries[category] = entry
	return entry, nil
}

// Fallback returns a copy of the static minimal knowledge map.
func Fallback() map[string]string {
	out := make(map[string]string, len(fallbackKnowledge))
	for k, v := range fallbackKnowledge {
		out[k] = v
	}
	return out
}
