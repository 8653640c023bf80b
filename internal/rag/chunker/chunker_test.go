package chunker

import (
	"strings"
	"testing"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplitterRejectsBadConfig(t *testing.T) {
	_, err := NewSplitter(0, 0)
	assert.Error(t, err)

	_, err = NewSplitter(100, 100)
	assert.Error(t, err)

	_, err = NewSplitter(100, 150)
	assert.Error(t, err)

	_, err = NewSplitter(100, -1)
	assert.Error(t, err)

	_, err = NewSplitter(100, 99)
	assert.NoError(t, err)
}

func TestSplitRespectsChunkSize(t *testing.T) {
	s, err := NewSplitter(50, 10)
	require.NoError(t, err)

	doc := entity.Document{
		ID:      "doc1",
		Content: strings.Repeat("문단 하나의 문장입니다. ", 30) + "\n\n" + strings.Repeat("두번째 문단입니다. ", 30),
	}

	chunks := s.Split([]entity.Document{doc})
	require.NotEmpty(t, chunks)

	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c.Text)), 50, "chunk exceeds configured size: %q", c.Text)
	}
}

func TestSplitOverlapBetweenAdjacentChunks(t *testing.T) {
	const size, overlap = 40, 8
	s, err := NewSplitter(size, overlap)
	require.NoError(t, err)

	doc := entity.Document{
		ID:      "doc1",
		Content: strings.Repeat("가나다라마바사아자차카타파하 ", 20),
	}

	chunks := s.Split([]entity.Document{doc})
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Text)
		want := overlap
		if len(prev) < want {
			want = len(prev)
		}
		tail := string(prev[len(prev)-want:])
		assert.True(t, strings.HasPrefix(chunks[i].Text, tail),
			"chunk %d does not start with the previous chunk's tail", i)
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	s, err := NewSplitter(30, 5)
	require.NoError(t, err)

	docs := []entity.Document{
		{ID: "a", Content: "첫 문장입니다. 두번째 문장입니다. 세번째 문장입니다. 네번째 문장입니다."},
		{ID: "b", Content: strings.Repeat("반복되는 내용 ", 15)},
	}

	first := s.Split(docs)
	second := s.Split(docs)
	assert.Equal(t, first, second)
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	s, err := NewSplitter(30, 0)
	require.NoError(t, err)

	doc := entity.Document{
		ID:      "doc1",
		Content: "짧은 첫 문단입니다.\n\n짧은 두번째 문단입니다.\n\n짧은 세번째 문단입니다.",
	}

	chunks := s.Split([]entity.Document{doc})
	require.NotEmpty(t, chunks)

	// Paragraphs are small enough that every chunk should end at a
	// paragraph boundary rather than mid-sentence.
	for _, c := range chunks {
		assert.True(t, strings.HasSuffix(strings.TrimRight(c.Text, "\n"), "."),
			"chunk cut mid-paragraph: %q", c.Text)
	}
}

func TestSplitInheritsMetadataAndOrdinals(t *testing.T) {
	s, err := NewSplitter(20, 4)
	require.NoError(t, err)

	doc := entity.Document{
		ID:      "doc1",
		Content: strings.Repeat("업무 내용 설명 ", 10),
		Metadata: entity.ChunkMetadata{
			Source:        "jobs.csv",
			JobName:       "급식지원",
			ActivityLevel: "낮음",
		},
	}

	chunks := s.Split([]entity.Document{doc})
	require.Greater(t, len(chunks), 1)

	for i, c := range chunks {
		assert.Equal(t, "doc1", c.DocumentID)
		assert.Equal(t, i, c.Ordinal)
		assert.Equal(t, doc.Metadata, c.Metadata)
	}
}

func TestSplitEmptyAndWhitespaceDocuments(t *testing.T) {
	s, err := NewSplitter(100, 10)
	require.NoError(t, err)

	chunks := s.Split([]entity.Document{
		{ID: "empty", Content: ""},
		{ID: "blank", Content: "   \n\n  "},
	})
	assert.Empty(t, chunks)
}

func TestSplitShortDocumentIsSingleChunk(t *testing.T) {
	s, err := NewSplitter(500, 50)
	require.NoError(t, err)

	doc := entity.Document{ID: "doc1", Content: "한 덩어리로 남아야 하는 짧은 문서입니다."}
	chunks := s.Split([]entity.Document{doc})

	require.Len(t, chunks, 1)
	assert.Equal(t, doc.Content, chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Ordinal)
}
