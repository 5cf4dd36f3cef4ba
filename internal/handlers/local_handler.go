package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"gitdash/internal/apierror"
	"gitdash/internal/gitrepo"
	"gitdash/internal/models"
)

// LocalHandler handles requests against locally cloned repositories.
type LocalHandler struct {
	Repos *gitrepo.Service
}

// NewLocalHandler creates a new LocalHandler.
func NewLocalHandler(repos *gitrepo.Service) *LocalHandler {
	return &LocalHandler{Repos: repos}
}

// ListLocalRepositories handles GET /local/repos
// @Summary List local repositories
// @Description Repositories discovered under the configured root directory
// @Tags local
// @Produce json
// @Success 200 {array} models.LocalRepository
// @Router /local/repos [get]
func (h *LocalHandler) ListLocalRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := h.Repos.ListRepositories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, repos)
}

// GetLocalRepository handles GET /local/repos/{name}
// @Summary Get local repository details
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {object} models.LocalRepositoryDetail
// @Router /local/repos/{name} [get]
func (h *LocalHandler) GetLocalRepository(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Repos.Detail(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// SyncRepository handles POST /local/repos/{name}/sync
// @Summary Clone or update a repository
// @Description Clones when absent, fetches and fast-forwards when present
// @Tags local
// @Accept json
// @Produce json
// @Param name path string true "Repository name"
// @Param request body models.SyncRequest false "Optional remote URL"
// @Success 200 {object} models.SyncResult
// @Router /local/repos/{name}/sync [post]
func (h *LocalHandler) SyncRepository(w http.ResponseWriter, r *http.Request) {
	var req models.SyncRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apierror.InvalidRequest("invalid request body"))
			return
		}
	}
	result, err := h.Repos.SyncOrClone(r.Context(), mux.Vars(r)["name"], req.RemoteURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetStatus handles GET /local/repos/{name}/status
// @Summary Get structured working-tree status
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {object} models.GitStatus
// @Router /local/repos/{name}/status [get]
func (h *LocalHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Repos.Status(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// CheckoutBranch handles POST /local/repos/{name}/checkout
// @Summary Checkout or create a branch
// @Tags local
// @Accept json
// @Produce json
// @Param name path string true "Repository name"
// @Param request body models.CheckoutRequest true "Branch to activate"
// @Success 200 {object} models.BranchStatus
// @Router /local/repos/{name}/checkout [post]
func (h *LocalHandler) CheckoutBranch(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.InvalidRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Branch) == "" {
		writeError(w, apierror.InvalidRequest("branch is required"))
		return
	}
	branch, err := h.Repos.Checkout(r.Context(), mux.Vars(r)["name"], req.Branch, req.Create)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

// ListBranches handles GET /local/repos/{name}/branches
// @Summary List local branches with tracking and divergence
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.BranchStatus
// @Router /local/repos/{name}/branches [get]
func (h *LocalHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.Repos.ListBranches(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

// ListRemotes handles GET /local/repos/{name}/remotes
// @Summary List configured remotes
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.LocalRemote
// @Router /local/repos/{name}/remotes [get]
func (h *LocalHandler) ListRemotes(w http.ResponseWriter, r *http.Request) {
	remotes, err := h.Repos.ListRemotes(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remotes)
}

// GetLog handles GET /local/repos/{name}/log
// @Summary Get commit log
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Param limit query int false "Maximum entries (1-200)" default(50)
// @Param author query string false "Filter by author identity"
// @Success 200 {object} models.GitLogResponse
// @Router /local/repos/{name}/log [get]
func (h *LocalHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	limit := clampLimit(r.URL.Query().Get("limit"), 50)
	log, err := h.Repos.Log(mux.Vars(r)["name"], limit, r.URL.Query().Get("author"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// GetDiff handles GET /local/repos/{name}/diff
// @Summary Get diff against a target revision
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Param target query string false "Target revision" default(HEAD)
// @Param mode query string false "summary or patch" default(summary)
// @Success 200 {object} models.GitDiffSummary
// @Router /local/repos/{name}/diff [get]
func (h *LocalHandler) GetDiff(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = gitrepo.DiffModeSummary
	}
	if mode != gitrepo.DiffModeSummary && mode != gitrepo.DiffModePatch {
		writeError(w, apierror.InvalidRequest("mode must be %q or %q",
			gitrepo.DiffModeSummary, gitrepo.DiffModePatch))
		return
	}
	diff, err := h.Repos.Diff(mux.Vars(r)["name"], r.URL.Query().Get("target"), mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, diff)
}

// GetStaged handles GET /local/repos/{name}/staged
// @Summary List staged changes
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.GitStatusFile
// @Router /local/repos/{name}/staged [get]
func (h *LocalHandler) GetStaged(w http.ResponseWriter, r *http.Request) {
	files, err := h.Repos.Staged(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// ReadFile handles GET /local/repos/{name}/file/{path}
// @Summary Read file content at a ref
// @Tags local
// @Produce json
// @Param name path string true "Repository name"
// @Param path path string true "File path inside the repository"
// @Param ref query string false "Revision" default(HEAD)
// @Success 200 {object} models.GitFileResponse
// @Router /local/repos/{name}/file/{path} [get]
func (h *LocalHandler) ReadFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	file, err := h.Repos.ReadFile(vars["name"], vars["path"], r.URL.Query().Get("ref"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, file)
}

// clampLimit parses raw as a positive integer bounded to 1-200, falling
// back to def when absent or unparsable.
func clampLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if limit > 200 {
		return 200
	}
	return limit
}
