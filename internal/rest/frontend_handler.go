package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FrontendHandler serves the built single-page frontend. Unknown paths fall
// back to the index file so client-side routing keeps working after a reload.
type FrontendHandler struct {
	staticDir string
	indexFile string
}

func NewFrontendHandler(staticDir string, indexFile string) *FrontendHandler {
	return &FrontendHandler{staticDir: staticDir, indexFile: indexFile}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestPath := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	candidate := filepath.Join(h.staticDir, requestPath)

	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
		return
	}
	http.ServeFile(w, r, candidate)
}
