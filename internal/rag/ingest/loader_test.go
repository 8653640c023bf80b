package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// writeEUCKR encodes UTF-8 test content to EUC-KR, the way the
// production CSV files arrive.
func writeEUCKR(t *testing.T, path, content string) {
	t.Helper()

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, korean.EUCKR.NewEncoder())
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestLoadParsesEUCKRRows(t *testing.T) {
	dir := t.TempDir()
	writeEUCKR(t, filepath.Join(dir, "jobs.csv"),
		"직업명,업무내용,신체활동수준\n"+
			"급식지원,학교 급식 배식 및 정리,낮음\n"+
			"공원관리,공원 순찰 및 환경 정비,보통\n")

	loader := NewLoader(dir, zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	first := docs[0]
	assert.Equal(t, "jobs.csv:0", first.ID)
	assert.Equal(t, "jobs.csv", first.Metadata.Source)
	assert.Equal(t, "급식지원", first.Metadata.JobName)
	assert.Equal(t, "낮음", first.Metadata.ActivityLevel)

	// The job name lives in metadata only; other columns stay in the body.
	assert.NotContains(t, first.Content, "직업명")
	assert.Contains(t, first.Content, "업무내용: 학교 급식 배식 및 정리")
	assert.Contains(t, first.Content, "신체활동수준: 낮음")

	assert.Equal(t, "jobs.csv:1", docs[1].ID)
	assert.Equal(t, "공원관리", docs[1].Metadata.JobName)
}

func TestLoadSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeEUCKR(t, filepath.Join(dir, "good.csv"),
		"직업명,업무내용\n경비원,건물 출입 관리\n")
	// Unterminated quote makes the whole file unparseable.
	writeEUCKR(t, filepath.Join(dir, "broken.csv"),
		"직업명,업무내용\n\"경비원,건물\n")

	loader := NewLoader(dir, zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "good.csv:0", docs[0].ID)
}

func TestLoadSkipsFileWithRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeEUCKR(t, filepath.Join(dir, "ragged.csv"),
		"직업명,업무내용,신체활동수준\n경비원,건물 출입 관리\n")

	loader := NewLoader(dir, zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "knowledge")

	loader := NewLoader(dir, zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.DirExists(t, dir)
}

func TestLoadEmptyDirectory(t *testing.T) {
	loader := NewLoader(t.TempDir(), zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadIgnoresNonCSVFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("메모"), 0o644))
	writeEUCKR(t, filepath.Join(dir, "jobs.csv"),
		"직업명,업무내용\n급식지원,배식 업무\n")

	loader := NewLoader(dir, zap.NewNop())
	docs, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "jobs.csv", docs[0].Metadata.Source)
}
