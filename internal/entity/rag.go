package entity

// ChunkMetadata carries the fields that matter for ranking and prompting,
// plus an open extension map for anything else found in the source file.
type ChunkMetadata struct {
	Source        string            `json:"source"`
	JobName       string            `json:"job_name,omitempty"`
	ActivityLevel string            `json:"activity_level,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// Document is one normalized knowledge-source record. Immutable after
// ingestion; the chunker is the only consumer.
type Document struct {
	ID       string
	Content  string
	Metadata ChunkMetadata
}

// Chunk is a bounded slice of a document, the unit of indexing and
// retrieval. Ordinal gives the chunk's position within its document.
type Chunk struct {
	DocumentID string
	Text       string
	Ordinal    int
	Metadata   ChunkMetadata
}

// SearchResult is a retrieved chunk with its cosine similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}
