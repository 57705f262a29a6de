package store

import (
	"context"
	"encoding/json"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/data/redisStore"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
)

type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	rs := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if rs == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  rs,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, session interviewModel.InterviewSession) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", session.Id)
	log.Debug("saving session")
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, session.Id, data, config.RedisSessionStoreTTL)
	if err == nil {
		log.Debug("Saved session to Redis")
	}
	return err
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionId string) (interviewModel.InterviewSession, bool) {
	var session interviewModel.InterviewSession
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("getting session")
	val, err := s.store.Get(ctx, sessionId)
	if s.store.IsNil(err) {
		return session, false
	} else if err != nil {
		log.Error("Failed to read session", "err", err)
		return session, false
	}

	err = json.Unmarshal([]byte(val), &session)
	if err != nil {
		log.Error("Failed to unmarshal session", "err", err)
		return session, false
	}
	return session, true
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionId string) {
	err := s.store.Del(ctx, sessionId)
	if err != nil {
		s.logger.Error(sessionId, "sessionId", ": Error deleting session from Redis")
		return
	}
	s.logger.Debug("Session deleted from Redis", "sessionId:", sessionId)
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
