// Package docsource turns input files into the page-oriented document text
// the analysis pipeline consumes.
package docsource

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/pace-estimating/pace-cli/internal/model"
)

// Load reads a document file and splits it into pages. PDFs are extracted
// per page; plain text files treat form feeds as page breaks, falling back
// to a single page.
func Load(path string, docType model.DocumentType) (model.DocumentText, error) {
	name := filepath.Base(path)

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		pages, err := pdfPages(path)
		if err != nil {
			return model.DocumentText{}, err
		}
		return model.DocumentText{Name: name, Type: docType, Pages: pages}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.DocumentText{}, eris.Wrapf(err, "docsource: read %s", path)
	}

	pages := strings.Split(string(data), "\f")
	if len(pages) == 1 && pages[0] == "" {
		return model.DocumentText{}, eris.Errorf("docsource: %s is empty", path)
	}
	return model.DocumentText{Name: name, Type: docType, Pages: pages}, nil
}
