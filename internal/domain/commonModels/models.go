package commonModels

import "time"

type Document struct {
	Id                  string    `json:"source_doc_id"`
	Name                string    `json:"doc_name"`
	LastIngestTimestamp time.Time `json:"ingested_at"`
	ContentType         DocType   `json:"contentType"`
}

// DocChunk is the unit indexed for retrieval. Chunks from one source are
// contiguous in ChunkIndex but their content may overlap by a configured
// number of characters.
type DocChunk struct {
	Doc         Document
	ChunkId     string    `json:"chunk_id"`
	Content     string    `json:"content"`
	ChunkIndex  int       `json:"chunk_index"`
	TotalChunks int       `json:"total_chunks"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResumeMetadata holds the structured fields pulled out of a resume alongside
// the chunk pipeline.
type ResumeMetadata struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
}

type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	Period  string `json:"period,omitempty"`
}

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"
