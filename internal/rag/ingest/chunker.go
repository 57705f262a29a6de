package ingest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/interviewcoach/CoachAPI/internal/adapter/utils"
	"github.com/interviewcoach/CoachAPI/internal/domain/commonModels"
)

var ErrEmptyInput = errors.New("empty input text")

// Separators ordered from "best" to "worst" for semantic meaning. The empty
// string terminates the cascade with a hard character cut.
var separators = []string{"\n\n", "\n", ". ", " ", ""}

// SplitText breaks text into chunks of at most maxSize characters. It splits
// on the most meaningful separator present and only hard-cuts when a single
// unit exceeds maxSize. Each chunk after the first starts with the last
// overlap characters of its predecessor so semantic continuity survives the
// boundary.
func SplitText(text string, maxSize int, overlap int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("max chunk size must be positive, got %d", maxSize)
	}
	if overlap >= maxSize {
		return nil, fmt.Errorf("overlap %d must be smaller than max chunk size %d", overlap, maxSize)
	}
	if overlap < 0 {
		overlap = 0
	}
	return splitWith(text, maxSize, overlap, separators), nil
}

func splitWith(text string, maxSize int, overlap int, seps []string) []string {
	if len(text) <= maxSize {
		return []string{text}
	}

	// Every chunk after the first carries overlap characters of old text,
	// so a unit must fit in what remains. Cutting all units to that budget
	// means the seeded tail never pushes a chunk past maxSize.
	units := splitUnits(text, maxSize-overlap, seps)

	var chunks []string
	var currentChunk strings.Builder

	for _, unit := range units {
		if currentChunk.Len() > 0 && currentChunk.Len()+len(unit) > maxSize {
			prev := currentChunk.String()
			chunks = append(chunks, prev)
			currentChunk.Reset()
			if overlap > 0 {
				currentChunk.WriteString(prev[len(prev)-overlap:])
			}
		}
		currentChunk.WriteString(unit)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}
	return chunks
}

// splitUnits breaks text into pieces of at most budget characters using the
// most meaningful separator present. A unit still too long is split again
// with the next separator down the cascade, hard cut at the bottom.
// Concatenating the units reproduces text exactly.
func splitUnits(text string, budget int, seps []string) []string {
	if len(text) <= budget {
		return []string{text}
	}

	splitChar := ""
	remaining := seps
	for i, s := range seps {
		if s == "" || strings.Contains(text, s) {
			splitChar = s
			remaining = seps[i+1:]
			break
		}
	}

	if splitChar == "" {
		return hardCut(text, budget)
	}

	parts := strings.Split(text, splitChar)
	var units []string
	for i, part := range parts {
		unit := part
		if i < len(parts)-1 {
			unit += splitChar
		}
		if len(unit) > budget {
			units = append(units, splitUnits(unit, budget, remaining)...)
			continue
		}
		units = append(units, unit)
	}
	return units
}

// hardCut slices text into budget sized pieces.
func hardCut(text string, budget int) []string {
	var pieces []string
	for start := 0; start < len(text); start += budget {
		end := start + budget
		if end > len(text) {
			end = len(text)
		}
		pieces = append(pieces, text[start:end])
	}
	return pieces
}

// PrepareChunks wraps split strings into DocChunk records carrying their
// position within the document.
func PrepareChunks(stringChunks []string, doc commonModels.Document) []commonModels.DocChunk {
	total := len(stringChunks)
	allChunks := make([]commonModels.DocChunk, 0, total)
	now := time.Now()

	for i, text := range stringChunks {
		allChunks = append(allChunks, commonModels.DocChunk{
			Doc:         doc,
			ChunkId:     utils.GetNewUUID(),
			Content:     text,
			ChunkIndex:  i,
			TotalChunks: total,
			CreatedAt:   now,
		})
	}
	return allChunks
}
