// Package apierror defines the machine-readable error taxonomy shared by
// all handlers. Every failure surfaced to a caller carries an HTTP status,
// a stable code, and a human-readable message.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with a machine-readable code. It serializes as
// {"error": {"code", "message", "details"}}.
type Error struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetail attaches a key/value pair to the error's details map and
// returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// Write encodes the error to w with its HTTP status.
func Write(w http.ResponseWriter, err error) {
	apiErr := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(struct {
		Error *Error `json:"error"`
	}{apiErr})
}

// From returns err as an *Error, wrapping unknown errors as an internal
// failure so no error leaves a handler without a code.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: err.Error(),
	}
}

func newError(status int, code, format string, args ...any) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidName rejects unsafe repository names before any I/O.
func InvalidName(name string) *Error {
	return newError(http.StatusBadRequest, "invalid_repo_name",
		"Repository name contains illegal characters.").WithDetail("name", name)
}

// InvalidRequest reports a malformed or incomplete request body.
func InvalidRequest(format string, args ...any) *Error {
	return newError(http.StatusBadRequest, "invalid_request", format, args...)
}

// RepoNotFound reports that a path is absent or not a repository.
func RepoNotFound(name, path string) *Error {
	return newError(http.StatusNotFound, "repo_not_found",
		"Repository %q is not cloned locally.", name).WithDetail("path", path)
}

// RepoOpenFailed reports repository metadata that exists but is unreadable.
func RepoOpenFailed(path string, err error) *Error {
	return newError(http.StatusInternalServerError, "repo_open_failed",
		"%v", err).WithDetail("path", path)
}

// RemoteRequired reports a clone request with no remote URL.
func RemoteRequired(name string) *Error {
	return newError(http.StatusBadRequest, "remote_required",
		"Remote URL is required for an initial clone.").WithDetail("name", name)
}

// RemoteMissing reports a sync request against a repository with no
// remote binding and no URL supplied.
func RemoteMissing(name string) *Error {
	return newError(http.StatusBadRequest, "remote_missing",
		"Local repository has no remote configured; provide a remote URL to continue.").
		WithDetail("name", name)
}

// RemoteMismatch reports a conflict between the stored binding and the
// caller-supplied URL. The binding is left untouched.
func RemoteMismatch(requested string, existing []string) *Error {
	e := newError(http.StatusConflict, "remote_mismatch",
		"Local repository remote does not match the requested remote URL.")
	e.WithDetail("requested", requested)
	e.WithDetail("existing", existing)
	return e
}

// CloneFailed reports a failed initial clone.
func CloneFailed(remoteURL string, err error) *Error {
	return newError(http.StatusBadRequest, "clone_failed",
		"%v", err).WithDetail("remote_url", remoteURL)
}

// FetchFailed reports a transport failure during fetch. Retryable.
func FetchFailed(remote string, err error) *Error {
	return newError(http.StatusBadRequest, "fetch_failed",
		"%v", err).WithDetail("remote", remote)
}

// FastForwardFailed reports diverged local and remote histories. The
// local branch is left untouched; manual resolution is required.
func FastForwardFailed(target string) *Error {
	return newError(http.StatusConflict, "fast_forward_failed",
		"Local and remote histories have diverged; fast-forward is not possible.").
		WithDetail("target", target)
}

// BranchAlreadyExists reports a create request for an existing branch.
func BranchAlreadyExists(branch string) *Error {
	return newError(http.StatusBadRequest, "branch_already_exists",
		"Branch %q already exists.", branch).WithDetail("branch", branch)
}

// BranchNotFound reports a branch with no local or remote match. Known
// well-known branch names, when configured, are included as a hint.
func BranchNotFound(branch string, known []string) *Error {
	e := newError(http.StatusNotFound, "branch_not_found",
		"Branch %q not found locally or on the remote.", branch)
	e.WithDetail("branch", branch)
	if len(known) > 0 {
		e.WithDetail("known_branches", known)
	}
	return e
}

// TrackingConflict reports a local branch that tracks a different remote
// reference than the one requested.
func TrackingConflict(branch, requested, existing string) *Error {
	e := newError(http.StatusConflict, "tracking_conflict",
		"Local branch %q tracks a different remote reference.", branch)
	e.WithDetail("requested", requested)
	if existing != "" {
		e.WithDetail("existing", existing)
	}
	return e
}

// CheckoutFailed reports a checkout the working tree rejected, typically
// because local changes would be overwritten.
func CheckoutFailed(branch string, err error) *Error {
	return newError(http.StatusConflict, "checkout_failed",
		"%v", err).WithDetail("branch", branch)
}

// FileNotFound reports a path absent at the requested ref.
func FileNotFound(path, ref string) *Error {
	e := newError(http.StatusNotFound, "file_not_found",
		"Path %q does not exist at %q.", path, ref)
	e.WithDetail("path", path)
	e.WithDetail("ref", ref)
	return e
}

// ItemNotFound reports a missing stored collection item.
func ItemNotFound(kind, id string) *Error {
	return newError(http.StatusNotFound, "item_not_found",
		"%s %q not found.", kind, id).WithDetail("id", id)
}

// Busy reports lock contention on a repository. Retryable.
func Busy(name string) *Error {
	return newError(http.StatusConflict, "repo_busy",
		"Repository %q is busy with another operation; retry shortly.", name).
		WithDetail("name", name)
}

// DiffFailed reports an unresolvable diff target.
func DiffFailed(target, mode string, err error) *Error {
	e := newError(http.StatusBadRequest, "diff_failed", "%v", err)
	e.WithDetail("target", target)
	e.WithDetail("mode", mode)
	return e
}

// Hosting reports an upstream hosting-service failure with the upstream
// status when known.
func Hosting(status int, message string) *Error {
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	return newError(status, "hosting_error", "%s", message).
		WithDetail("status", status)
}

// MissingToken reports a hosting call with no resolvable access token.
func MissingToken() *Error {
	return newError(http.StatusBadRequest, "missing_token",
		"Hosting access token required for this endpoint.")
}
