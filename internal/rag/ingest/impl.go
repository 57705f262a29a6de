package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/interviewcoach/CoachAPI/internal/domain/commonModels"
)

func getDocType(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".txt", ".rtf":
		return commonModels.DOCX
	default:
		return commonModels.ERR
	}
}

func extractText(path string, contentType commonModels.DocType) ([]rawPage, error) {
	switch contentType {
	case commonModels.PDF:
		return extractPDF(path)
	case commonModels.DOCX:
		return extractdocxTxtRtf(path)

	default:
		return nil, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
