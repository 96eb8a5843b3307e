package http

import "net/http"

// NewRouter wires the book routes and health endpoints. Middleware is layered
// on top by the caller so tests can exercise the bare routes.
func NewRouter(bookHandler *BookHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/api/books", MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(bookHandler.List),
		http.MethodPost: http.HandlerFunc(bookHandler.Create),
	}))
	mux.Handle("/api/books/", MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(bookHandler.Get),
		http.MethodPut:    http.HandlerFunc(bookHandler.Update),
		http.MethodDelete: http.HandlerFunc(bookHandler.Delete),
	}))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// The catalog is in-process memory: once the server is up it is ready.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return mux
}
