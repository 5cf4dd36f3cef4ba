package models

import "time"

// LocalRepository identifies a repository cloned under the configured root.
type LocalRepository struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// CommitMetadata is a single commit as read from history.
type CommitMetadata struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date,omitempty"`
}

// LocalRepositoryDetail extends LocalRepository with working-tree state.
type LocalRepositoryDetail struct {
	Name         string          `json:"name"`
	Path         string          `json:"path"`
	ActiveBranch string          `json:"active_branch,omitempty"`
	IsDirty      bool            `json:"is_dirty"`
	LastCommit   *CommitMetadata `json:"last_commit,omitempty"`
}

// LocalRemote is a configured remote binding and its fetch URLs.
type LocalRemote struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

// BranchStatus describes a local branch and its tracking relationship.
// Ahead and Behind are computed on demand and only meaningful when
// Tracking is set.
type BranchStatus struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Tracking string `json:"tracking,omitempty"`
	Ahead    int    `json:"ahead"`
	Behind   int    `json:"behind"`
}

// SyncRequest is the request body for the clone-or-update operation.
type SyncRequest struct {
	RemoteURL string `json:"remote_url,omitempty"`
}

// SyncResult reports the outcome of a clone-or-update call. At most one
// of Created and Updated is true; both false means the call was a no-op
// or was skipped by a safety guard.
type SyncResult struct {
	Path          string `json:"path"`
	Created       bool   `json:"created"`
	Updated       bool   `json:"updated"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Message       string `json:"message,omitempty"`
}

// CheckoutRequest is the request body for branch checkout/creation.
type CheckoutRequest struct {
	Branch string `json:"branch"`
	Create bool   `json:"create"`
}

// GitStatusFile is one entry of a structured status report.
type GitStatusFile struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// GitStatus is the structured working-tree status. Branch is empty when
// HEAD is detached.
type GitStatus struct {
	Branch string          `json:"branch,omitempty"`
	Files  []GitStatusFile `json:"files"`
}

// GitLogEntry is one commit in a log listing.
type GitLogEntry struct {
	SHA     string    `json:"sha"`
	Author  string    `json:"author,omitempty"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// GitLogResponse is a bounded, most-recent-first log listing.
type GitLogResponse struct {
	Entries []GitLogEntry `json:"entries"`
}

// GitDiffFile is a per-file diff summary entry.
type GitDiffFile struct {
	Path      string `json:"path"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// GitDiffStats aggregates additions and deletions across a diff.
type GitDiffStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// GitDiffSummary is the result of a diff request. Patch is only set in
// patch mode; Files and Stats are only populated in summary mode.
type GitDiffSummary struct {
	Files []GitDiffFile `json:"files"`
	Stats GitDiffStats  `json:"stats"`
	Mode  string        `json:"mode"`
	Patch string        `json:"patch,omitempty"`
}

// GitFileResponse is the content of a path at a given ref.
type GitFileResponse struct {
	Path    string `json:"path"`
	Ref     string `json:"ref"`
	Content string `json:"content"`
}

// Note is a free-form note attached to a repository.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteCreateRequest is the request body for adding a note.
type NoteCreateRequest struct {
	Content string `json:"content"`
}

// Snippet is a saved code snippet attached to a repository.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language,omitempty"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// SnippetCreateRequest is the request body for adding a snippet.
type SnippetCreateRequest struct {
	Title    string `json:"title"`
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// RecurringTask is a recurring chore attached to a repository. New tasks
// start enabled.
type RecurringTask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Cadence   string    `json:"cadence"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskCreateRequest is the request body for adding a recurring task.
type TaskCreateRequest struct {
	Title   string `json:"title"`
	Cadence string `json:"cadence"`
}

// TaskToggleResponse reports a task's enabled state after a toggle.
type TaskToggleResponse struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// HostedRepository is a repository as reported by the hosting service.
type HostedRepository struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Visibility    string `json:"visibility"`
	DefaultBranch string `json:"default_branch"`
}

// HostedRepositoryDetail extends HostedRepository with branch and
// contributor listings.
type HostedRepositoryDetail struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Visibility    string          `json:"visibility"`
	DefaultBranch string          `json:"default_branch"`
	Branches      []string        `json:"branches"`
	LastCommit    *CommitMetadata `json:"last_commit,omitempty"`
	Contributors  []string        `json:"contributors"`
	HTMLURL       string          `json:"html_url"`
}

// HostedBranch is a branch as reported by the hosting service.
type HostedBranch struct {
	Name      string `json:"name"`
	Default   bool   `json:"default"`
	Protected bool   `json:"protected"`
}

// HostedIssue is an issue as reported by the hosting service. Pull
// request pseudo-issues are excluded.
type HostedIssue struct {
	ID       int64    `json:"id"`
	Number   int      `json:"number"`
	Title    string   `json:"title"`
	State    string   `json:"state"`
	Labels   []string `json:"labels"`
	Assignee string   `json:"assignee,omitempty"`
	URL      string   `json:"url"`
}

// HostedPullRequest is a pull request as reported by the hosting service.
type HostedPullRequest struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Head   string `json:"head"`
	Base   string `json:"base"`
	URL    string `json:"url"`
}

// ReadmeResponse carries a repository README's raw content.
type ReadmeResponse struct {
	Content string `json:"content"`
}
