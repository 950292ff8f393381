package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

//go:embed static
var staticFS embed.FS

// RegisterRoutes serves the upload page at / and its assets under /static/.
func RegisterRoutes(r *mux.Router) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r.HandleFunc("/", serveIndex).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(cacheHeaders(
		http.StripPrefix("/static/", http.FileServer(http.FS(assets))),
	)).Methods(http.MethodGet)
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func cacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
