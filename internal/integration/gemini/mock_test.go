package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMockEmbedderIsDeterministic(t *testing.T) {
	emb := NewMockEmbedder(64, zap.NewNop())

	a, err := emb.Embed(context.Background(), "급식 지원 업무")
	require.NoError(t, err)
	b, err := emb.Embed(context.Background(), "급식 지원 업무")
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)

	c, err := emb.Embed(context.Background(), "공원 순찰 업무")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestMockEmbedderDefaultsDimension(t *testing.T) {
	emb := NewMockEmbedder(0, zap.NewNop())
	vec, err := emb.Embed(context.Background(), "안녕하세요")
	require.NoError(t, err)
	assert.Len(t, vec, 768)
}

func TestMockGeneratorDistinguishesContext(t *testing.T) {
	gen := NewMockGenerator(zap.NewNop())

	withContext, err := gen.Complete(context.Background(), "관련 정보:\n직업명: 급식지원\n사용자 질문: 추천해주세요")
	require.NoError(t, err)
	withoutContext, err := gen.Complete(context.Background(), "사용자 질문: 안녕하세요")
	require.NoError(t, err)

	assert.NotEqual(t, withContext, withoutContext)
}
