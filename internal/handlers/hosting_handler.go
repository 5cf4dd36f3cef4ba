package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"gitdash/internal/apierror"
	"gitdash/internal/hosting"
	"gitdash/internal/models"
)

// HostingHandler handles requests proxied to the remote hosting service.
// Clients are cached per token so a client's resolved login survives
// across requests.
type HostingHandler struct {
	apiBase   string
	token     string
	newClient func(baseURL, token string) hosting.Client

	mu      sync.Mutex
	clients map[string]hosting.Client
}

// NewHostingHandler creates a new HostingHandler using the configured
// default token. A per-request token query parameter overrides it.
func NewHostingHandler(apiBase, token string) *HostingHandler {
	return &HostingHandler{
		apiBase: apiBase,
		token:   token,
		newClient: func(baseURL, token string) hosting.Client {
			return hosting.NewREST(baseURL, token)
		},
		clients: make(map[string]hosting.Client),
	}
}

// ListHostedRepositories handles GET /repos
// @Summary List repositories from the hosting service
// @Tags hosted
// @Produce json
// @Param token query string false "Access token override"
// @Success 200 {array} models.HostedRepository
// @Router /repos [get]
func (h *HostingHandler) ListHostedRepositories(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	repos, err := client.ListRepositories(r.Context())
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, repos)
}

// GetHostedRepository handles GET /repos/{name}
// @Summary Get hosting-service repository details
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param token query string false "Access token override"
// @Success 200 {object} models.HostedRepositoryDetail
// @Router /repos/{name} [get]
func (h *HostingHandler) GetHostedRepository(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := client.GetRepository(r.Context(), hostedName(r))
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// ListHostedBranches handles GET /repos/{name}/branches
// @Summary List branches from the hosting service
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param token query string false "Access token override"
// @Success 200 {array} models.HostedBranch
// @Router /repos/{name}/branches [get]
func (h *HostingHandler) ListHostedBranches(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	branches, err := client.ListBranches(r.Context(), hostedName(r))
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

// ListHostedCommits handles GET /repos/{name}/commits
// @Summary List recent commits from the hosting service
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param limit query int false "Maximum entries (1-200)" default(50)
// @Param token query string false "Access token override"
// @Success 200 {array} models.CommitMetadata
// @Router /repos/{name}/commits [get]
func (h *HostingHandler) ListHostedCommits(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	limit := clampLimit(r.URL.Query().Get("limit"), 50)
	commits, err := client.ListCommits(r.Context(), hostedName(r), limit)
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, commits)
}

// ListHostedIssues handles GET /repos/{name}/issues
// @Summary List issues from the hosting service
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param state query string false "Issue state" default(open)
// @Param assignee query string false "Filter by assignee login"
// @Param labels query string false "Comma-separated label filter"
// @Param token query string false "Access token override"
// @Success 200 {array} models.HostedIssue
// @Router /repos/{name}/issues [get]
func (h *HostingHandler) ListHostedIssues(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	query := r.URL.Query()
	filter := hosting.IssueFilter{
		State:    query.Get("state"),
		Assignee: query.Get("assignee"),
		Labels:   query.Get("labels"),
	}
	issues, err := client.ListIssues(r.Context(), hostedName(r), filter)
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// ListHostedPullRequests handles GET /repos/{name}/pulls
// @Summary List open pull requests from the hosting service
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param token query string false "Access token override"
// @Success 200 {array} models.HostedPullRequest
// @Router /repos/{name}/pulls [get]
func (h *HostingHandler) ListHostedPullRequests(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	pulls, err := client.ListPullRequests(r.Context(), hostedName(r))
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, pulls)
}

// GetHostedReadme handles GET /repos/{name}/readme
// @Summary Get a repository README from the hosting service
// @Tags hosted
// @Produce json
// @Param name path string true "Repository name"
// @Param token query string false "Access token override"
// @Success 200 {object} models.ReadmeResponse
// @Router /repos/{name}/readme [get]
func (h *HostingHandler) GetHostedReadme(w http.ResponseWriter, r *http.Request) {
	client, err := h.resolveClient(r)
	if err != nil {
		writeError(w, err)
		return
	}
	content, err := client.Readme(r.Context(), hostedName(r))
	if err != nil {
		writeError(w, hostingError(err))
		return
	}
	writeJSON(w, http.StatusOK, models.ReadmeResponse{Content: content})
}

// resolveClient returns the hosting client for the request, preferring a
// token passed in the query string over the configured default.
func (h *HostingHandler) resolveClient(r *http.Request) (hosting.Client, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = h.token
	}
	if token == "" {
		return nil, apierror.MissingToken()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[token]
	if !ok {
		client = h.newClient(h.apiBase, token)
		h.clients[token] = client
	}
	return client, nil
}

// hostedName resolves the hosted repository identifier for a request. A
// remote_url query parameter, when it parses as a known clone-URL shape,
// overrides the path name with its owner/repo pair.
func hostedName(r *http.Request) string {
	if url := r.URL.Query().Get("remote_url"); url != "" {
		if owner, repo, ok := hosting.ParseOwnerRepo(url); ok {
			return owner + "/" + repo
		}
	}
	return mux.Vars(r)["name"]
}

func hostingError(err error) error {
	var statusErr *hosting.StatusError
	if errors.As(err, &statusErr) {
		return apierror.Hosting(statusErr.Status, statusErr.Message)
	}
	return apierror.Hosting(http.StatusBadGateway, err.Error())
}
