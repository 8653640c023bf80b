package rag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/rag/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fixedEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[text]; ok {
		return vec, nil
	}
	return []float32{1, 0, 0}, nil
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func buildTestHolder(t *testing.T, emb index.Embedder) *index.Holder {
	t.Helper()

	chunks := []entity.Chunk{
		{DocumentID: "jobs.csv:0", Ordinal: 0, Text: "학교 급식 배식 및 정리",
			Metadata: entity.ChunkMetadata{JobName: "급식지원", ActivityLevel: "낮음"}},
		{DocumentID: "jobs.csv:1", Ordinal: 0, Text: "도서관 서가 정리",
			Metadata: entity.ChunkMetadata{JobName: "도서관리", ActivityLevel: "낮음"}},
		{DocumentID: "jobs.csv:2", Ordinal: 0, Text: "공원 순찰 및 환경 정비",
			Metadata: entity.ChunkMetadata{JobName: "공원관리", ActivityLevel: "높음"}},
	}
	return index.NewHolder(index.Build(context.Background(), chunks, emb, zap.NewNop()))
}

func TestAnswerAssemblesRetrievedContext(t *testing.T) {
	emb := &fixedEmbedder{vectors: map[string][]float32{
		"학교 급식 배식 및 정리": {1, 0, 0},
		"도서관 서가 정리":     {0.9, 0.1, 0},
		"공원 순찰 및 환경 정비": {0, 0, 1},
	}}
	gen := &fakeGenerator{reply: "급식지원이나 도서관리를 추천드려요."}

	e := NewEngine(emb, gen, buildTestHolder(t, emb), 3, time.Minute, zap.NewNop())
	answer := e.Answer(context.Background(), "다리가 아픈데 어떤 일이 좋을까요?", nil)

	assert.Equal(t, "급식지원이나 도서관리를 추천드려요.", answer)
	require.Len(t, gen.prompts, 1)

	p := gen.prompts[0]
	assert.Contains(t, p, "관련 정보:")
	assert.Contains(t, p, "직업명: 급식지원, 신체활동수준: 낮음")
	assert.Contains(t, p, "직업명: 도서관리, 신체활동수준: 낮음")
	assert.Contains(t, p, "'신체활동수준'이 '낮음'")
	assert.Contains(t, p, "사용자 질문: 다리가 아픈데 어떤 일이 좋을까요?")
}

func TestAnswerFallsBackWhenGeneratorFails(t *testing.T) {
	emb := &fixedEmbedder{}
	gen := &fakeGenerator{err: errors.New("quota exceeded")}

	e := NewEngine(emb, gen, buildTestHolder(t, emb), 3, time.Minute, zap.NewNop())

	// Fail-soft is unconditional: every failing exchange yields the same
	// apology, never an error surfaced to the caller.
	for i := 0; i < 3; i++ {
		answer := e.Answer(context.Background(), "안녕하세요", nil)
		assert.Equal(t, FallbackResponse, answer)
	}
}

func TestAnswerFallsBackWhenEmbeddingFails(t *testing.T) {
	goodEmb := &fixedEmbedder{}
	holder := buildTestHolder(t, goodEmb)

	gen := &fakeGenerator{reply: "도달하면 안 되는 응답"}
	e := NewEngine(&fixedEmbedder{err: errors.New("timeout")}, gen, holder, 3, time.Minute, zap.NewNop())

	answer := e.Answer(context.Background(), "안녕하세요", nil)
	assert.Equal(t, FallbackResponse, answer)
	assert.Empty(t, gen.prompts, "generation must not run when retrieval fails")
}

func TestAnswerWithZeroTopKSkipsRetrieval(t *testing.T) {
	emb := &fixedEmbedder{}
	gen := &fakeGenerator{reply: "네, 안녕하세요!"}

	e := NewEngine(emb, gen, buildTestHolder(t, emb), 0, time.Minute, zap.NewNop())
	embedsAfterBuild := emb.calls

	answer := e.Answer(context.Background(), "안녕하세요", nil)
	assert.Equal(t, "네, 안녕하세요!", answer)
	assert.Equal(t, embedsAfterBuild, emb.calls, "no query embedding in no-retrieval mode")

	require.Len(t, gen.prompts, 1)
	assert.NotContains(t, gen.prompts[0], "관련 정보:")
}

func TestRetrieveCachesQueryEmbeddings(t *testing.T) {
	emb := &fixedEmbedder{}
	e := NewEngine(emb, &fakeGenerator{reply: "응답"}, buildTestHolder(t, emb), 3, time.Minute, zap.NewNop())
	embedsAfterBuild := emb.calls

	_, err := e.Retrieve(context.Background(), "같은 질문", 3)
	require.NoError(t, err)
	_, err = e.Retrieve(context.Background(), "같은 질문", 3)
	require.NoError(t, err)

	assert.Equal(t, embedsAfterBuild+1, emb.calls, "repeated query must hit the cache")
}

func TestRetrieveRespectsK(t *testing.T) {
	emb := &fixedEmbedder{}
	e := NewEngine(emb, &fakeGenerator{}, buildTestHolder(t, emb), 3, time.Minute, zap.NewNop())

	results, err := e.Retrieve(context.Background(), "질문", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = e.Retrieve(context.Background(), "질문", 0)
	require.NoError(t, err)
	assert.Nil(t, results)
}
