package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

const livenessBanner = "Wishwall API is up and running"

// BannerHandler responds with a plain-text liveness banner.
func BannerHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(livenessBanner))
}

// SPAHandler serves a pre-built frontend bundle and falls back to its entry
// page for unmatched GET routes. Without a bundle, "/" serves the liveness
// banner and everything else gets a descriptive 404.
type SPAHandler struct {
	staticDir string
	indexFile string
}

// NewSPAHandler creates a handler over the given bundle directory.
func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		indexFile: "index.html",
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusNotFound, "no route matches "+r.Method+" "+r.URL.Path)
		return
	}

	if info, err := os.Stat(h.staticDir); err != nil || !info.IsDir() {
		if r.URL.Path == "/" {
			BannerHandler(w, r)
			return
		}
		respondError(w, http.StatusNotFound, "no route matches "+r.URL.Path)
		return
	}

	requested := filepath.Join(h.staticDir, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, r, requested)
		return
	}

	index := filepath.Join(h.staticDir, h.indexFile)
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, r, index)
		return
	}

	respondError(w, http.StatusNotFound, "no route matches "+r.URL.Path)
}
