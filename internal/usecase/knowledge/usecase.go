package knowledge

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/rag/chunker"
	"github.com/seniorworks/chatbot-backend/internal/rag/index"
	"github.com/seniorworks/chatbot-backend/internal/rag/ingest"
	"go.uber.org/zap"
)

// KnowledgeUsecase rebuilds the embedding index from the source directory.
// A rebuild constructs a complete new index and swaps it in atomically;
// queries in flight keep reading the old one.
type KnowledgeUsecase struct {
	loader   *ingest.Loader
	splitter *chunker.Splitter
	embedder index.Embedder
	holder   *index.Holder
	logger   *zap.Logger
}

func NewUsecase(
	loader *ingest.Loader,
	splitter *chunker.Splitter,
	embedder index.Embedder,
	holder *index.Holder,
	logger *zap.Logger,
) *KnowledgeUsecase {
	return &KnowledgeUsecase{
		loader:   loader,
		splitter: splitter,
		embedder: embedder,
		holder:   holder,
		logger:   logger,
	}
}

// Rebuild re-ingests the corpus wholesale. Ingestion degradation (missing
// directory, bad files) is not an error; only an unreadable directory is.
func (uc *KnowledgeUsecase) Rebuild(ctx context.Context) (*entity.RebuildResult, error) {
	documents, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load knowledge sources: %w", err)
	}

	chunks := uc.splitter.Split(documents)
	idx := index.Build(ctx, chunks, uc.embedder, uc.logger)
	uc.holder.Swap(idx)

	ctxzap.Info(ctx, "knowledge index rebuilt",
		zap.Int("documents", len(documents)),
		zap.Int("chunks", len(chunks)),
		zap.Int("indexed", idx.Len()),
	)

	return &entity.RebuildResult{
		Documents: len(documents),
		Chunks:    len(chunks),
		Indexed:   idx.Len(),
	}, nil
}
