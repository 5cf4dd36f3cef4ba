// @title           GitDash API
// @version         1.0
// @description     Dashboard API over local git clones and their hosting service
// @host            localhost:8080
// @BasePath        /
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gitdash/internal/config"
	"gitdash/internal/gitrepo"
	"gitdash/internal/handlers"
	"gitdash/internal/registry"
	"gitdash/internal/store"

	_ "gitdash/docs"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	reg, err := registry.Load(settings.RegistryFile)
	if err != nil {
		log.Fatalf("failed to load repository registry: %v", err)
	}

	repos := gitrepo.New(settings.LocalReposDir, settings.RemoteName, reg, logger)
	st := store.New(settings.StateFile)
	h := handlers.NewHandler(repos, st, settings)

	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	r.HandleFunc("/local/repos", h.ListLocalRepositories).Methods("GET")
	r.HandleFunc("/local/repos/{name}", h.GetLocalRepository).Methods("GET")
	r.HandleFunc("/local/repos/{name}/sync", h.SyncRepository).Methods("POST")
	r.HandleFunc("/local/repos/{name}/status", h.GetStatus).Methods("GET")
	r.HandleFunc("/local/repos/{name}/checkout", h.CheckoutBranch).Methods("POST")
	r.HandleFunc("/local/repos/{name}/branches", h.ListBranches).Methods("GET")
	r.HandleFunc("/local/repos/{name}/remotes", h.ListRemotes).Methods("GET")
	r.HandleFunc("/local/repos/{name}/log", h.GetLog).Methods("GET")
	r.HandleFunc("/local/repos/{name}/diff", h.GetDiff).Methods("GET")
	r.HandleFunc("/local/repos/{name}/staged", h.GetStaged).Methods("GET")
	r.HandleFunc("/local/repos/{name}/file/{path:.*}", h.ReadFile).Methods("GET")

	r.HandleFunc("/local/repos/{name}/notes", h.ListNotes).Methods("GET")
	r.HandleFunc("/local/repos/{name}/notes", h.CreateNote).Methods("POST")
	r.HandleFunc("/local/repos/{name}/notes/{id}", h.DeleteNote).Methods("DELETE")
	r.HandleFunc("/local/repos/{name}/snippets", h.ListSnippets).Methods("GET")
	r.HandleFunc("/local/repos/{name}/snippets", h.CreateSnippet).Methods("POST")
	r.HandleFunc("/local/repos/{name}/snippets/{id}", h.DeleteSnippet).Methods("DELETE")
	r.HandleFunc("/local/repos/{name}/tasks", h.ListTasks).Methods("GET")
	r.HandleFunc("/local/repos/{name}/tasks", h.CreateTask).Methods("POST")
	r.HandleFunc("/local/repos/{name}/tasks/{id}", h.DeleteTask).Methods("DELETE")
	r.HandleFunc("/local/repos/{name}/tasks/{id}/toggle", h.ToggleTask).Methods("POST")

	r.HandleFunc("/repos", h.ListHostedRepositories).Methods("GET")
	r.HandleFunc("/repos/{name}/branches", h.ListHostedBranches).Methods("GET")
	r.HandleFunc("/repos/{name}/commits", h.ListHostedCommits).Methods("GET")
	r.HandleFunc("/repos/{name}/issues", h.ListHostedIssues).Methods("GET")
	r.HandleFunc("/repos/{name}/pulls", h.ListHostedPullRequests).Methods("GET")
	r.HandleFunc("/repos/{name}/readme", h.GetHostedReadme).Methods("GET")
	r.HandleFunc("/repos/{name}", h.GetHostedRepository).Methods("GET")

	// Swagger UI
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	handler := corsMiddleware(settings.AllowedOrigins, requestLogMiddleware(logger, r))

	addr := settings.Addr()
	log.Printf("Starting server on %s", addr)
	log.Printf("Swagger UI available at http://%s/swagger/index.html", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func corsMiddleware(allowed []string, next http.Handler) http.Handler {
	allowAny := slices.Contains(allowed, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAny || slices.Contains(allowed, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond).String(),
		)
	})
}
