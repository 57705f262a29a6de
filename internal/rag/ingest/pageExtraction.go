package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

// pdf parsing can hang on malformed resumes, so every page read is bounded
const pageExtractTimeout = 10 * time.Second

func extractPDF(path string) ([]rawPage, error) {
	logger.Debug("extractPDF", "path", path)
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("Could not open resume pdf", "path", path)
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []rawPage
	numPages := f.NumPage()
	logger.Debug("extractPDF", "pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			logger.Debug("extractPDF", "empty page", i)
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// a bad page should not sink the whole resume
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}

		pages = append(pages, rawPage{
			Number:  i,
			Content: content,
		})
	}
	return pages, nil
}

// extractdocxTxtRtf reads a .odt, .docx, .rtf or plaintext resume and returns
// the whole content as a single page. cat does not expose page boundaries,
// and chunking downstream does not care about them.
func extractdocxTxtRtf(path string) ([]rawPage, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Could not extract resume content", "path", path)
		return nil, fmt.Errorf("failed to extract docx: %w", err)
	}

	return []rawPage{
		{
			Number:  1,
			Content: text,
		},
	}, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(pageExtractTimeout):
		logger.Error("pageExtract", "timeout", true)
		return "", errors.New("timeout")
	}
}
