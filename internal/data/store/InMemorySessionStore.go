package store

import (
	"context"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
)

type InMemorySessionStore struct {
	sessionMutex *sync.RWMutex
	sessionMap   map[string]interviewModel.InterviewSession
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessionMutex: new(sync.RWMutex),
		sessionMap:   make(map[string]interviewModel.InterviewSession),
	}
}

func (store *InMemorySessionStore) SaveSession(ctx context.Context, session interviewModel.InterviewSession) error {
	store.sessionMutex.Lock()
	defer store.sessionMutex.Unlock()
	store.sessionMap[session.Id] = session
	inMemLogger.Info(session.Id, " : Saved session to store")
	return nil
}

func (store *InMemorySessionStore) GetSession(ctx context.Context, sessionId string) (interviewModel.InterviewSession, bool) {
	store.sessionMutex.RLock()
	defer store.sessionMutex.RUnlock()
	result, found := store.sessionMap[sessionId]
	inMemLogger.Info(sessionId, " : Is session found :", found)
	return result, found
}

func (store *InMemorySessionStore) DeleteSession(ctx context.Context, sessionId string) {
	store.sessionMutex.Lock()
	defer store.sessionMutex.Unlock()
	delete(store.sessionMap, sessionId)
}
