package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestText_EmbedsAndStores(t *testing.T) {
	t.Parallel()

	repo := &fakeGuidelineRepo{}
	model := &fakeModel{embedding: []float32{0.5, 0.5}}
	svc := NewGuidelineService(repo, model)

	err := svc.IngestText(context.Background(), "guide.pdf", 3, "Score relevance first.")
	require.NoError(t, err)

	require.Len(t, repo.guidelines, 1)
	assert.Equal(t, "guide.pdf", repo.guidelines[0].Source)
	assert.Equal(t, 3, repo.guidelines[0].Page)
	assert.Equal(t, 1, model.embedCalls)
}

func TestIngestText_BlankContentSkipped(t *testing.T) {
	t.Parallel()

	repo := &fakeGuidelineRepo{}
	model := &fakeModel{}
	svc := NewGuidelineService(repo, model)

	require.NoError(t, svc.IngestText(context.Background(), "guide.pdf", 1, "   \n  "))

	assert.Empty(t, repo.guidelines)
	assert.Zero(t, model.embedCalls)
}

func TestIngestText_PageDefaultsToOne(t *testing.T) {
	t.Parallel()

	repo := &fakeGuidelineRepo{}
	svc := NewGuidelineService(repo, &fakeModel{})

	require.NoError(t, svc.IngestText(context.Background(), "guide.pdf", 0, "content"))

	require.Len(t, repo.guidelines, 1)
	assert.Equal(t, 1, repo.guidelines[0].Page)
}

func TestSplitChunks(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitChunks("   ", 100))
	assert.Equal(t, []string{"short"}, splitChunks("short", 100))

	text := strings.Join([]string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
	}, "\n\n")
	chunks := splitChunks(text, 90)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "aaa")
	assert.Contains(t, chunks[0], "bbb")
	assert.Contains(t, chunks[1], "ccc")

	// A single oversized paragraph still becomes its own chunk.
	huge := strings.Repeat("x", 500)
	assert.Equal(t, []string{huge}, splitChunks(huge, 100))
}
