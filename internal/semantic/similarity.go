// Package semantic provides embedding-backed text similarity used for role
// filtering and candidate ranking.
package semantic

import (
	"context"
	"fmt"
	"math"
)

// Embedder turns a text string into an embedding vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// ExternalServiceError indicates the embedding backend was unreachable or
// returned an unusable response. It is fatal to the whole search call.
type ExternalServiceError struct {
	Service string
	Message string
	Cause   error
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("external service error (%s): %s: %v", e.Service, e.Message, e.Cause)
	}
	return fmt.Sprintf("external service error (%s): %s", e.Service, e.Message)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// Service computes cosine similarity between texts via an Embedder.
// Embeddings are memoized per Service instance, so repeated comparisons
// against the same query text cost one embedding call. The cache is not
// synchronized; callers run single-threaded by design.
type Service struct {
	embedder Embedder
	cache    map[string][]float32
}

// NewService creates a similarity service around embedder.
func NewService(embedder Embedder) *Service {
	return &Service{
		embedder: embedder,
		cache:    make(map[string][]float32),
	}
}

// Similarity returns the cosine similarity between two texts, in [-1, 1].
func (s *Service) Similarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(va, vb), nil
}

func (s *Service) embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := s.cache[text]; ok {
		return v, nil
	}
	v, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, &ExternalServiceError{Service: "embedding", Message: "failed to embed text", Cause: err}
	}
	if len(v) == 0 {
		return nil, &ExternalServiceError{Service: "embedding", Message: "backend returned an empty vector"}
	}
	s.cache[text] = v
	return v, nil
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
