package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/data/redisStore"
	"github.com/interviewcoach/CoachAPI/internal/data/store"
	"github.com/interviewcoach/CoachAPI/internal/domain/interviewModel"
	"github.com/redis/go-redis/v9"
)

func sampleSession(id string) interviewModel.InterviewSession {
	return interviewModel.InterviewSession{
		Id:              id,
		Role:            "Backend Developer",
		ExperienceLevel: "mid",
		State:           interviewModel.StateAwaitingAnswer,
		QuestionCounter: 2,
		FollowUpFor:     -1,
		StartedAt:       time.Now().UTC().Truncate(time.Second),
		Responses: []interviewModel.InterviewResponse{
			{
				QuestionText:    "What is a goroutine?",
				UserAnswer:      "A lightweight thread managed by the Go runtime.",
				SimilarityScore: 0.82,
				Feedback:        "Excellent answer!",
			},
		},
	}
}

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.TestSessionStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
	session := sampleSession("session_abc_123")

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := sessionStore.SaveSession(ctx, session); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		retrieved, found := sessionStore.GetSession(ctx, session.Id)
		if !found {
			t.Fatal("Session was saved but not found in Redis")
		}
		if retrieved.Role != session.Role {
			t.Errorf("Role mismatch! Got %s, want %s", retrieved.Role, session.Role)
		}
		if retrieved.QuestionCounter != session.QuestionCounter {
			t.Errorf("QuestionCounter mismatch! Got %d, want %d",
				retrieved.QuestionCounter, session.QuestionCounter)
		}
		if len(retrieved.Responses) != 1 {
			t.Fatalf("Expected 1 response, got %d", len(retrieved.Responses))
		}
		if retrieved.Responses[0].SimilarityScore != session.Responses[0].SimilarityScore {
			t.Errorf("Score mismatch! Got %f, want %f",
				retrieved.Responses[0].SimilarityScore, session.Responses[0].SimilarityScore)
		}
	})

	t.Run("Get Non-Existent Session", func(t *testing.T) {
		_, found := sessionStore.GetSession(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		sessionStore.DeleteSession(ctx, session.Id)
		if mr.Exists(session.Id) {
			t.Error("Session still exists in Redis after DeleteSession call")
		}
	})
}

func TestInMemorySessionStore_Lifecycle(t *testing.T) {
	sessionStore := store.InitInMemorySessionStore()
	ctx := context.Background()
	session := sampleSession("mem-session-1")

	if err := sessionStore.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	retrieved, found := sessionStore.GetSession(ctx, session.Id)
	if !found {
		t.Fatal("Session not found after save")
	}
	if retrieved.Id != session.Id || retrieved.State != session.State {
		t.Errorf("Session mismatch: got %+v", retrieved)
	}

	sessionStore.DeleteSession(ctx, session.Id)
	if _, found := sessionStore.GetSession(ctx, session.Id); found {
		t.Error("Session still present after delete")
	}

	var _ interviewModel.SessionStore = sessionStore
}
