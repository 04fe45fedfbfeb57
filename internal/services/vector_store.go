package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"talenthub/matching-service/internal/config"
)

// ChunkRetriever supplies the most query-relevant chunks of a previously
// indexed resume.
type ChunkRetriever interface {
	RelevantChunks(ctx context.Context, candidateID string, query string, limit int) ([]string, error)
}

// ResumeVectorStore indexes resume text chunks in Qdrant and retrieves the
// chunks most relevant to a job description.
type ResumeVectorStore interface {
	ChunkRetriever
	InitCollection() error
	IndexResume(ctx context.Context, candidateID string, resumeText string) error
	DeleteResume(ctx context.Context, candidateID string) error
}

type resumeVectorStore struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	gemini         GeminiService
	chunker        TextChunker
}

const (
	resumeChunkSize    = 1000
	resumeChunkOverlap = 150
)

func NewResumeVectorStore(cfg config.QdrantConfig, gemini GeminiService) (ResumeVectorStore, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &resumeVectorStore{
		client:         client,
		collectionName: cfg.Collection,
		vectorSize:     768, // text-embedding-004 output size
		gemini:         gemini,
		chunker:        NewTextChunker(),
	}, nil
}

// InitCollection implements ResumeVectorStore.
func (s *resumeVectorStore) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Qdrant collection already exists")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// IndexResume implements ResumeVectorStore. Existing chunks for the candidate
// are replaced so re-ingestion stays idempotent.
func (s *resumeVectorStore) IndexResume(ctx context.Context, candidateID string, resumeText string) error {
	if err := s.DeleteResume(ctx, candidateID); err != nil {
		return err
	}

	chunks := s.chunker.ChunkText(resumeText, resumeChunkSize, resumeChunkOverlap)

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := s.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed resume chunk %d: %w", i, err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(uuid.New().ID())),
			Vectors: qdrant.NewVectors(embedding...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"candidate_id": candidateID,
				"chunk_index":  i,
				"text":         chunk,
			}),
		})
	}

	if len(points) == 0 {
		return nil
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resume chunks: %w", err)
	}

	return nil
}

// RelevantChunks implements ChunkRetriever.
func (s *resumeVectorStore) RelevantChunks(ctx context.Context, candidateID string, query string, limit int) ([]string, error) {
	embedding, err := s.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("candidate_id", candidateID),
		},
	}

	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search resume chunks: %w", err)
	}

	var chunks []string
	for _, point := range searchResult {
		if text, ok := point.Payload["text"]; ok {
			if val, ok := text.GetKind().(*qdrant.Value_StringValue); ok {
				chunks = append(chunks, val.StringValue)
			}
		}
	}

	return chunks, nil
}

// DeleteResume implements ResumeVectorStore.
func (s *resumeVectorStore) DeleteResume(ctx context.Context, candidateID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("candidate_id", candidateID),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume chunks: %w", err)
	}

	return nil
}
