package docsource

import (
	"bytes"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// pdfPages extracts plain text per page. Pages that fail text extraction
// are kept as empty strings so page numbering stays aligned with the
// source document.
func pdfPages(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "docsource: read %s", path)
	}

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, eris.Wrapf(err, "docsource: open pdf %s", path)
	}

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			zap.L().Warn("docsource: page text extraction failed",
				zap.String("path", path),
				zap.Int("page", i),
				zap.Error(err),
			)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	if numPages == 0 {
		return nil, eris.Errorf("docsource: %s has no pages", path)
	}
	return pages, nil
}
