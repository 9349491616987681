package server

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/compsmart/bug-fixer/internal/helpers"
)

// New builds the handler serving the static bug-fixer site from dir.
// Requests for "/" are served index.html; everything else maps directly to
// files under dir.
func New(dir string) http.Handler {
	router := chi.NewRouter()
	router.Use(requestLogger)

	fileServer := http.FileServer(http.Dir(dir))
	router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	})

	return router
}

// Start serves the site on the given port until the process is stopped
func Start(port int, dir string) error {
	helpers.PrintInfo("Server running at http://localhost:%d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), New(dir))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		helpers.PrintServer("%s %s %d", r.Method, r.URL.Path, ww.Status())
	})
}
