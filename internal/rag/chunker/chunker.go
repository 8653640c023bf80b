package chunker

import (
	"fmt"
	"strings"

	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// defaultSeparators are tried largest-first: paragraph break, line break,
// sentence-ending punctuation, then whitespace. A raw rune cut is the
// final fallback applied while packing.
var defaultSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", " "}

// Splitter splits documents into bounded, overlapping chunks. Sizes and
// overlap are measured in runes so Korean text is counted per character.
// Splitting is a pure function of the input and configuration.
type Splitter struct {
	chunkSize  int
	overlap    int
	separators []string
}

func NewSplitter(chunkSize, overlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("overlap must be in [0, chunk size), got overlap=%d size=%d", overlap, chunkSize)
	}

	return &Splitter{
		chunkSize:  chunkSize,
		overlap:    overlap,
		separators: defaultSeparators,
	}, nil
}

// Split chunks every document in order. Chunks inherit the originating
// document's metadata unchanged and are numbered by ordinal within it.
func (s *Splitter) Split(documents []entity.Document) []entity.Chunk {
	var chunks []entity.Chunk
	for _, doc := range documents {
		for i, text := range s.splitText(doc.Content) {
			chunks = append(chunks, entity.Chunk{
				DocumentID: doc.ID,
				Text:       text,
				Ordinal:    i,
				Metadata:   doc.Metadata,
			})
		}
	}
	return chunks
}

func (s *Splitter) splitText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.pack(s.fragments(text, 0))
}

// fragments recursively splits text along the largest boundary whose
// pieces stay within the chunk size, falling to the next separator only
// for pieces that are still too large. Separators stay attached to the
// preceding piece so no characters are lost.
func (s *Splitter) fragments(text string, sepIdx int) []string {
	if len([]rune(text)) <= s.chunkSize || sepIdx >= len(s.separators) {
		return []string{text}
	}

	parts := strings.SplitAfter(text, s.separators[sepIdx])
	if len(parts) == 1 {
		return s.fragments(text, sepIdx+1)
	}

	var out []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, s.fragments(p, sepIdx+1)...)
	}
	return out
}

// pack greedily merges fragments into chunks of at most chunkSize runes.
// Each new chunk is seeded with the tail of the previous one so that
// consecutive chunks share an overlap region. Fragments that cannot fit
// even an empty chunk are cut at rune boundaries.
func (s *Splitter) pack(frags []string) []string {
	var out []string
	var cur []rune
	seedLen := 0

	flush := func() {
		out = append(out, string(cur))
		tail := cur
		if len(tail) > s.overlap {
			tail = tail[len(tail)-s.overlap:]
		}
		cur = append([]rune(nil), tail...)
		seedLen = len(cur)
	}

	for _, frag := range frags {
		f := []rune(frag)

		if len(cur)+len(f) > s.chunkSize && len(cur) > seedLen {
			flush()
		}

		// Oversized fragment: fill the current chunk and cut.
		for len(cur)+len(f) > s.chunkSize {
			space := s.chunkSize - len(cur)
			cur = append(cur, f[:space]...)
			f = f[space:]
			flush()
		}

		cur = append(cur, f...)
	}

	if len(cur) > seedLen {
		out = append(out, string(cur))
	}

	return out
}
