package rag

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/rag/index"
	"github.com/seniorworks/chatbot-backend/internal/rag/prompt"
	"go.uber.org/zap"
)

// FallbackResponse is the only failure the end user ever sees. Every
// provider error inside an exchange collapses into this fixed apology.
const FallbackResponse = "죄송합니다. 일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// DefaultTopK is the number of chunks retrieved per query when the
// configuration does not override it.
const DefaultTopK = 3

// Generator invokes the external text-generation provider. One synchronous
// request per call, no streaming.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine is the retrieval-augmented generation core. Its dependencies are
// injected at construction; the only shared state is the immutable index
// behind the holder, so concurrent exchanges need no coordination.
type Engine struct {
	embedder   index.Embedder
	generator  Generator
	holder     *index.Holder
	assembler  *prompt.Assembler
	topK       int
	queryCache *cache.Cache
	logger     *zap.Logger
}

func NewEngine(
	embedder index.Embedder,
	generator Generator,
	holder *index.Holder,
	topK int,
	queryCacheTTL time.Duration,
	logger *zap.Logger,
) *Engine {
	if topK < 0 {
		topK = DefaultTopK
	}
	return &Engine{
		embedder:   embedder,
		generator:  generator,
		holder:     holder,
		assembler:  prompt.NewAssembler(),
		topK:       topK,
		queryCache: cache.New(queryCacheTTL, 2*queryCacheTTL),
		logger:     logger,
	}
}

// Holder exposes the index holder so a rebuild can swap in a fresh index.
func (e *Engine) Holder() *index.Holder {
	return e.holder
}

// Retrieve embeds the query and runs a top-k similarity search against the
// current index. k = 0 is a valid no-retrieval mode; an empty index yields
// an empty result, not an error.
func (e *Engine) Retrieve(ctx context.Context, query string, k int) ([]entity.SearchResult, error) {
	if k <= 0 {
		return nil, nil
	}

	vec, err := e.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	return e.holder.Load().Search(vec, k), nil
}

// Answer runs one full exchange: retrieval, prompt assembly, generation.
// It always returns usable text; any provider failure along the way is
// logged and degrades to the fixed apology.
func (e *Engine) Answer(ctx context.Context, query string, history []*entity.Conversation) string {
	results, err := e.Retrieve(ctx, query, e.topK)
	if err != nil {
		e.logger.Error("query embedding failed", zap.Error(err))
		return FallbackResponse
	}

	p := e.assembler.Assemble(results, history, query)

	answer, err := e.generator.Complete(ctx, p)
	if err != nil {
		e.logger.Error("generation failed", zap.Error(err))
		return FallbackResponse
	}

	return answer
}

// embedQuery caches query embeddings briefly; repeated questions skip a
// provider round trip.
func (e *Engine) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if cached, ok := e.queryCache.Get(query); ok {
		return cached.([]float32), nil
	}

	vec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	e.queryCache.SetDefault(query, vec)
	return vec, nil
}
