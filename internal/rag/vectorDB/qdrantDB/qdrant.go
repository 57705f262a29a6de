package qdrantDB

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/interviewcoach/CoachAPI/internal/config"
	"github.com/interviewcoach/CoachAPI/internal/rag/vectorDB"
	"github.com/interviewcoach/CoachAPI/pkg/logger_i"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var quadrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)

type ClientHolder struct {
	QObj *qdrant.Client
}

func GetQuadrantClient(ctx context.Context) *ClientHolder {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			quadrantInstance = res
			go closeQdrant(ctx, quadrantInstance)
		}
	})

	if quadrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj: quadrantInstance,
	}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	for _, name := range []string{config.ResumeCollectionName, config.MCQCollectionName} {
		if err := createCollection(context.Background(), client, name); err != nil {
			logger.Error("could not create collection: ", "collectionName", name, "error:", err)
			return nil
		}
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func (db *ClientHolder) EnsureCollection(ctx context.Context, collectionName string) error {
	return createCollection(ctx, db.QObj, collectionName)
}

func (db *ClientHolder) Upsert(ctx context.Context, collectionName string, entries []vectorDB.IndexEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(entries))
	for i, entry := range entries {
		payload := make(map[string]any, len(entry.Metadata))
		for k, v := range entry.Metadata {
			payload[k] = v
		}
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(entry.Id),
			Vectors: qdrant.NewVectors(entry.Vector...),
			Payload: qdrant.NewValueMap(payload),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: qdrant upsert failed: %v", vectorDB.ErrIndexUnavailable, err)
	}
	return len(qdrantPoints), nil
}

func (db *ClientHolder) Query(ctx context.Context, collectionName string, vectorFloat []float32, k int, filter map[string]string) ([]vectorDB.ScoredEntry, error) {
	loggr := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", vectorDB.ErrInvalidArgument, k)
	}

	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(vectorFloat...),
		Limit:          qdrant.PtrOf(uint64(k)),
		Filter:         toQdrantFilter(filter),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, fmt.Errorf("%w: %v", vectorDB.ErrIndexUnavailable, err)
	}

	scored := make([]vectorDB.ScoredEntry, 0, len(result))
	for _, hit := range result {
		metadata := make(map[string]string, len(hit.Payload))
		for key, value := range hit.Payload {
			metadata[key] = value.GetStringValue()
		}
		scored = append(scored, vectorDB.ScoredEntry{
			Entry: vectorDB.IndexEntry{
				Id:       hit.Id.GetUuid(),
				Metadata: metadata,
			},
			//qdrant reports cosine similarity for cosine collections
			Distance: 1 - float64(hit.Score),
		})
	}

	loggr.Debug("Query finished", "hits", len(scored))
	return scored, nil
}

func (db *ClientHolder) DeleteAll(ctx context.Context, collectionName string, filter map[string]string) error {
	selector := qdrant.NewPointsSelectorFilter(toQdrantFilter(filter))
	if filter == nil {
		selector = qdrant.NewPointsSelectorFilter(&qdrant.Filter{})
	}
	_, err := db.QObj.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collectionName,
		Points:         selector,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("%w: qdrant delete failed: %v", vectorDB.ErrIndexUnavailable, err)
	}
	return nil
}

func toQdrantFilter(filter map[string]string) *qdrant.Filter {
	if len(filter) == 0 {
		return nil
	}
	conditions := make([]*qdrant.Condition, 0, len(filter))
	for key, value := range filter {
		conditions = append(conditions, qdrant.NewMatch(key, value))
	}
	return &qdrant.Filter{Must: conditions}
}

func createCollection(ctx context.Context, client *qdrant.Client, collectionName string) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {

		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	return err
}
