package index

import (
	"context"
	"math"
	"sort"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"go.uber.org/zap"
)

// Embedder turns text into a fixed-dimension vector. Provider failures are
// per-call and must not corrupt prior state.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index is an immutable in-memory nearest-neighbor structure over chunk
// embeddings. It is built once and read-only afterward, so concurrent
// searches need no coordination.
type Index struct {
	chunks    []entity.Chunk
	vectors   [][]float32 // L2-normalized, vectors[i] belongs to chunks[i]
	dimension int
}

// Build embeds every chunk and assembles an index. A chunk whose embedding
// call fails (or whose vector dimension disagrees with the rest) is logged
// and excluded; the build itself never fails. Zero chunks yield a valid
// empty index.
func Build(ctx context.Context, chunks []entity.Chunk, embedder Embedder, logger *zap.Logger) *Index {
	idx := &Index{}

	for _, chunk := range chunks {
		vec, err := embedder.Embed(ctx, chunk.Text)
		if err != nil {
			logger.Warn("embedding failed, excluding chunk from index",
				zap.String("document_id", chunk.DocumentID),
				zap.Int("ordinal", chunk.Ordinal),
				zap.Error(err),
			)
			continue
		}

		if idx.dimension == 0 {
			idx.dimension = len(vec)
		}
		if len(vec) != idx.dimension {
			logger.Warn("embedding dimension mismatch, excluding chunk from index",
				zap.String("document_id", chunk.DocumentID),
				zap.Int("ordinal", chunk.Ordinal),
				zap.Int("expected", idx.dimension),
				zap.Int("got", len(vec)),
			)
			continue
		}

		idx.chunks = append(idx.chunks, chunk)
		idx.vectors = append(idx.vectors, normalize(vec))
	}

	logger.Info("embedding index built",
		zap.Int("chunks", len(chunks)),
		zap.Int("indexed", idx.Len()),
		zap.Int("dimension", idx.dimension),
	)

	return idx
}

// Len reports how many chunk/vector pairs the index holds.
func (idx *Index) Len() int {
	return len(idx.chunks)
}

// Search returns the k chunks most similar to the query vector, ordered by
// descending cosine similarity. Ties are broken by index insertion order,
// earlier chunk first, so results are deterministic. An empty index or
// k <= 0 yields an empty result.
func (idx *Index) Search(vector []float32, k int) []entity.SearchResult {
	if k <= 0 || idx.Len() == 0 {
		return nil
	}

	query := normalize(vector)
	order := make([]int, idx.Len())
	scores := make([]float64, idx.Len())
	for i := range idx.vectors {
		order[i] = i
		scores[i] = dot(idx.vectors[i], query)
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	results := make([]entity.SearchResult, 0, k)
	for _, i := range order[:k] {
		results = append(results, entity.SearchResult{
			Chunk: idx.chunks[i],
			Score: scores[i],
		})
	}
	return results
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
