package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextIsSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short resume.", 1000, 150)

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short resume.", chunks[0])
}

func TestChunkText_EmptyTextYieldsNoChunks(t *testing.T) {
	chunker := NewTextChunker()

	assert.Empty(t, chunker.ChunkText("", 1000, 150))
	assert.Empty(t, chunker.ChunkText("\n\n\n\n", 1000, 150))
}

func TestChunkText_ParagraphsKeptTogetherWhenTheyFit(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("First paragraph.\n\nSecond paragraph.", 1000, 0)

	require.Len(t, chunks, 1)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", chunks[0])
}

func TestChunkText_SplitsAtParagraphBoundaries(t *testing.T) {
	chunker := NewTextChunker()

	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)

	chunks := chunker.ChunkText(para1+"\n\n"+para2, 100, 0)

	require.Len(t, chunks, 2)
	assert.Equal(t, para1, chunks[0])
	assert.Equal(t, para2, chunks[1])
}

func TestChunkText_ConsecutiveChunksOverlap(t *testing.T) {
	chunker := NewTextChunker()

	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)

	chunks := chunker.ChunkText(para1+"\n\n"+para2, 100, 20)

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[1], strings.Repeat("a", 20)),
		"second chunk should start with the tail of the first")
	assert.True(t, strings.HasSuffix(chunks[1], para2))
}

func TestChunkText_OverlongParagraphSplitOnSentences(t *testing.T) {
	chunker := NewTextChunker()

	var sentences []string
	for i := 0; i < 10; i++ {
		sentences = append(sentences, strings.Repeat("word ", 10)+"end.")
	}
	text := strings.Join(sentences, " ")

	chunks := chunker.ChunkText(text, 120, 0)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 120)
	}
}
