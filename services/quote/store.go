package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"earec/models"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = fmt.Errorf("quote session not found or expired")

// SessionStore holds in-flight quote sessions. Sessions are ephemeral working
// state, not quote persistence; they expire on their own.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.QuoteSession, error)
	Save(ctx context.Context, session *models.QuoteSession) error
	Delete(ctx context.Context, sessionID string) error
	// NextDistanceSeq atomically mints the next distance-resolution stamp for
	// the session. Stamps are strictly increasing even across concurrent calls.
	NextDistanceSeq(ctx context.Context, sessionID string) (int64, error)
	// DistanceSeq reports the latest minted stamp, 0 when none was minted yet.
	DistanceSeq(ctx context.Context, sessionID string) (int64, error)
}

// RedisSessionStore keeps sessions in Redis under a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "quote:session:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote session: %w", err)
	}
	var session models.QuoteSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse quote session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.QuoteSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal quote session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store quote session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID), s.seqKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete quote session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) seqKey(sessionID string) string {
	return s.key(sessionID) + ":seq"
}

func (s *RedisSessionStore) NextDistanceSeq(ctx context.Context, sessionID string) (int64, error) {
	seq, err := s.Client.Incr(ctx, s.seqKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to bump distance sequence: %w", err)
	}
	if err := s.Client.Expire(ctx, s.seqKey(sessionID), s.TTL).Err(); err != nil {
		return 0, fmt.Errorf("failed to expire distance sequence: %w", err)
	}
	return seq, nil
}

func (s *RedisSessionStore) DistanceSeq(ctx context.Context, sessionID string) (int64, error) {
	seq, err := s.Client.Get(ctx, s.seqKey(sessionID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read distance sequence: %w", err)
	}
	return seq, nil
}

// MemorySessionStore is a map-backed store for tests and single-node use.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.QuoteSession
	seqs     map[string]int64
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]models.QuoteSession),
		seqs:     make(map[string]int64),
	}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.QuoteSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.QuoteSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.seqs, sessionID)
	return nil
}

func (s *MemorySessionStore) NextDistanceSeq(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[sessionID]++
	return s.seqs[sessionID], nil
}

func (s *MemorySessionStore) DistanceSeq(_ context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seqs[sessionID], nil
}
