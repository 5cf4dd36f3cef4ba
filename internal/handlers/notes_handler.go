package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitdash/internal/apierror"
	"gitdash/internal/models"
	"gitdash/internal/store"
)

const (
	keyNotes    = "notes"
	keySnippets = "snippets"
	keyTasks    = "recurring_tasks"
)

// NotesHandler handles the per-repository collections: notes, snippets,
// and recurring tasks.
type NotesHandler struct {
	Store *store.Store
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(st *store.Store) *NotesHandler {
	return &NotesHandler{Store: st}
}

// ListNotes handles GET /local/repos/{name}/notes
// @Summary List notes for a repository
// @Tags notes
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.Note
// @Router /local/repos/{name}/notes [get]
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, keyNotes)
}

// CreateNote handles POST /local/repos/{name}/notes
// @Summary Add a note to a repository
// @Tags notes
// @Accept json
// @Produce json
// @Param name path string true "Repository name"
// @Param request body models.NoteCreateRequest true "Note content"
// @Success 201 {object} models.Note
// @Router /local/repos/{name}/notes [post]
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.NoteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.InvalidRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, apierror.InvalidRequest("content is required"))
		return
	}
	note := models.Note{
		ID:        uuid.NewString(),
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	h.create(w, r, keyNotes, store.Item{
		"id":         note.ID,
		"content":    note.Content,
		"created_at": note.CreatedAt.Format(time.RFC3339),
	}, note)
}

// DeleteNote handles DELETE /local/repos/{name}/notes/{id}
// @Summary Delete a note
// @Tags notes
// @Param name path string true "Repository name"
// @Param id path string true "Note ID"
// @Success 204 "No Content"
// @Router /local/repos/{name}/notes/{id} [delete]
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, keyNotes, "note")
}

// ListSnippets handles GET /local/repos/{name}/snippets
// @Summary List snippets for a repository
// @Tags snippets
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.Snippet
// @Router /local/repos/{name}/snippets [get]
func (h *NotesHandler) ListSnippets(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, keySnippets)
}

// CreateSnippet handles POST /local/repos/{name}/snippets
// @Summary Add a snippet to a repository
// @Tags snippets
// @Accept json
// @Produce json
// @Param name path string true "Repository name"
// @Param request body models.SnippetCreateRequest true "Snippet"
// @Success 201 {object} models.Snippet
// @Router /local/repos/{name}/snippets [post]
func (h *NotesHandler) CreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req models.SnippetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.InvalidRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Code) == "" {
		writeError(w, apierror.InvalidRequest("title and code are required"))
		return
	}
	snippet := models.Snippet{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Language:  req.Language,
		Code:      req.Code,
		CreatedAt: time.Now().UTC(),
	}
	h.create(w, r, keySnippets, store.Item{
		"id":         snippet.ID,
		"title":      snippet.Title,
		"language":   snippet.Language,
		"code":       snippet.Code,
		"created_at": snippet.CreatedAt.Format(time.RFC3339),
	}, snippet)
}

// DeleteSnippet handles DELETE /local/repos/{name}/snippets/{id}
// @Summary Delete a snippet
// @Tags snippets
// @Param name path string true "Repository name"
// @Param id path string true "Snippet ID"
// @Success 204 "No Content"
// @Router /local/repos/{name}/snippets/{id} [delete]
func (h *NotesHandler) DeleteSnippet(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, keySnippets, "snippet")
}

// ListTasks handles GET /local/repos/{name}/tasks
// @Summary List recurring tasks for a repository
// @Tags tasks
// @Produce json
// @Param name path string true "Repository name"
// @Success 200 {array} models.RecurringTask
// @Router /local/repos/{name}/tasks [get]
func (h *NotesHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, keyTasks)
}

// CreateTask handles POST /local/repos/{name}/tasks
// @Summary Add a recurring task to a repository
// @Tags tasks
// @Accept json
// @Produce json
// @Param name path string true "Repository name"
// @Param request body models.TaskCreateRequest true "Task"
// @Success 201 {object} models.RecurringTask
// @Router /local/repos/{name}/tasks [post]
func (h *NotesHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.TaskCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apierror.InvalidRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, apierror.InvalidRequest("title is required"))
		return
	}
	task := models.RecurringTask{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Cadence:   req.Cadence,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
	h.create(w, r, keyTasks, store.Item{
		"id":         task.ID,
		"title":      task.Title,
		"cadence":    task.Cadence,
		"enabled":    task.Enabled,
		"created_at": task.CreatedAt.Format(time.RFC3339),
	}, task)
}

// ToggleTask handles POST /local/repos/{name}/tasks/{id}/toggle
// @Summary Toggle a recurring task's enabled state
// @Tags tasks
// @Produce json
// @Param name path string true "Repository name"
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskToggleResponse
// @Router /local/repos/{name}/tasks/{id}/toggle [post]
func (h *NotesHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, found, err := h.Store.Update(vars["name"], keyTasks, vars["id"], func(item store.Item) {
		enabled := true
		if v, ok := item["enabled"].(bool); ok {
			enabled = v
		}
		item["enabled"] = !enabled
	})
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		writeError(w, apierror.ItemNotFound("task", vars["id"]))
		return
	}
	enabled, _ := item["enabled"].(bool)
	writeJSON(w, http.StatusOK, models.TaskToggleResponse{ID: vars["id"], Enabled: enabled})
}

// DeleteTask handles DELETE /local/repos/{name}/tasks/{id}
// @Summary Delete a recurring task
// @Tags tasks
// @Param name path string true "Repository name"
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Router /local/repos/{name}/tasks/{id} [delete]
func (h *NotesHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, keyTasks, "task")
}

func (h *NotesHandler) list(w http.ResponseWriter, r *http.Request, key string) {
	items, err := h.Store.Get(mux.Vars(r)["name"], key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *NotesHandler) create(w http.ResponseWriter, r *http.Request, key string, item store.Item, payload any) {
	if err := h.Store.Append(mux.Vars(r)["name"], key, item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payload)
}

func (h *NotesHandler) remove(w http.ResponseWriter, r *http.Request, key, kind string) {
	vars := mux.Vars(r)
	removed, err := h.Store.Remove(vars["name"], key, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeError(w, apierror.ItemNotFound(kind, vars["id"]))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
