package gemini

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockEmbedder deterministically hashes token positions into a fixed
// dimension so local runs without an API key still build a working index.
type MockEmbedder struct {
	dimension int
	logger    *zap.Logger
}

func NewMockEmbedder(dimension int, logger *zap.Logger) *MockEmbedder {
	if dimension <= 0 {
		dimension = 768
	}
	return &MockEmbedder{
		dimension: dimension,
		logger:    logger,
	}
}

func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	ctxzap.Debug(ctx, "[MOCK] embedding text", zap.Int("text_length", len(text)))

	vec := make([]float32, m.dimension)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%uint32(m.dimension)] += 1
	}
	return vec, nil
}

// MockGenerator returns a canned reply describing the prompt it received.
type MockGenerator struct {
	logger *zap.Logger
}

func NewMockGenerator(logger *zap.Logger) *MockGenerator {
	return &MockGenerator{logger: logger}
}

func (m *MockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating completion", zap.Int("prompt_length", len(prompt)))

	if strings.Contains(prompt, "관련 정보:") {
		return "관련 정보를 바탕으로 답변드릴게요. 자세한 내용은 가까운 노인일자리센터에 문의해주세요. 😊", nil
	}
	return "안녕하세요! 노인 일자리에 대해 궁금하신 점을 말씀해주세요. 😊", nil
}
