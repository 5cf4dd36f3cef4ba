// Package hosting is the remote hosting-service collaborator: given an
// access token, it returns repository, branch, and commit metadata for a
// named repository. The rest of the system consumes the Client interface
// only.
package hosting

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"gitdash/internal/models"
)

// Client is the capability consumed by the dashboard: repository listings
// and metadata for the authenticated user.
type Client interface {
	ListRepositories(ctx context.Context) ([]models.HostedRepository, error)
	GetRepository(ctx context.Context, name string) (models.HostedRepositoryDetail, error)
	ListBranches(ctx context.Context, name string) ([]models.HostedBranch, error)
	ListCommits(ctx context.Context, name string, limit int) ([]models.CommitMetadata, error)
	ListIssues(ctx context.Context, name string, filter IssueFilter) ([]models.HostedIssue, error)
	ListPullRequests(ctx context.Context, name string) ([]models.HostedPullRequest, error)
	Readme(ctx context.Context, name string) (string, error)
}

// IssueFilter narrows an issue listing. Zero values mean no filter;
// State defaults to "open".
type IssueFilter struct {
	State    string
	Assignee string
	Labels   string
}

// StatusError is a hosting-service failure carrying the upstream status.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hosting service returned %d: %s", e.Status, e.Message)
}

// RESTClient implements Client against the GitHub REST API. It is safe
// for concurrent use.
type RESTClient struct {
	baseURL    string
	token      string
	httpClient *http.Client

	loginMu sync.Mutex
	login   string
}

// NewREST returns a client for the API at baseURL authenticated with
// token.
func NewREST(baseURL, token string) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *RESTClient) ListRepositories(ctx context.Context) ([]models.HostedRepository, error) {
	var raw []struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		Private       bool   `json:"private"`
		DefaultBranch string `json:"default_branch"`
	}
	if err := c.getJSON(ctx, "/user/repos?per_page=100", &raw); err != nil {
		return nil, err
	}
	repos := make([]models.HostedRepository, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, models.HostedRepository{
			Name:          r.Name,
			Description:   r.Description,
			Visibility:    visibility(r.Private),
			DefaultBranch: r.DefaultBranch,
		})
	}
	return repos, nil
}

func (c *RESTClient) GetRepository(ctx context.Context, name string) (models.HostedRepositoryDetail, error) {
	var detail models.HostedRepositoryDetail
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return detail, err
	}
	var raw struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		Private       bool   `json:"private"`
		DefaultBranch string `json:"default_branch"`
		HTMLURL       string `json:"html_url"`
	}
	if err := c.getJSON(ctx, base, &raw); err != nil {
		return detail, err
	}
	detail = models.HostedRepositoryDetail{
		Name:          raw.Name,
		Description:   raw.Description,
		Visibility:    visibility(raw.Private),
		DefaultBranch: raw.DefaultBranch,
		HTMLURL:       raw.HTMLURL,
		Branches:      []string{},
		Contributors:  []string{},
	}

	branches, err := c.ListBranches(ctx, name)
	if err != nil {
		return detail, err
	}
	for _, branch := range branches {
		detail.Branches = append(detail.Branches, branch.Name)
	}

	if commits, err := c.ListCommits(ctx, name, 1); err == nil && len(commits) > 0 {
		detail.LastCommit = &commits[0]
	}

	var contributors []struct {
		Login string `json:"login"`
	}
	if err := c.getJSON(ctx, base+"/contributors?per_page=100", &contributors); err == nil {
		for _, contributor := range contributors {
			detail.Contributors = append(detail.Contributors, contributor.Login)
		}
	}
	return detail, nil
}

func (c *RESTClient) ListBranches(ctx context.Context, name string) ([]models.HostedBranch, error) {
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return nil, err
	}
	var repo struct {
		DefaultBranch string `json:"default_branch"`
	}
	if err := c.getJSON(ctx, base, &repo); err != nil {
		return nil, err
	}
	var raw []struct {
		Name      string `json:"name"`
		Protected bool   `json:"protected"`
	}
	if err := c.getJSON(ctx, base+"/branches?per_page=100", &raw); err != nil {
		return nil, err
	}
	branches := make([]models.HostedBranch, 0, len(raw))
	for _, b := range raw {
		branches = append(branches, models.HostedBranch{
			Name:      b.Name,
			Default:   b.Name == repo.DefaultBranch,
			Protected: b.Protected,
		})
	}
	return branches, nil
}

func (c *RESTClient) ListCommits(ctx context.Context, name string, limit int) ([]models.CommitMetadata, error) {
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	var raw []struct {
		SHA    string `json:"sha"`
		Commit struct {
			Message string `json:"message"`
			Author  struct {
				Name string `json:"name"`
				Date string `json:"date"`
			} `json:"author"`
		} `json:"commit"`
	}
	path := fmt.Sprintf("%s/commits?per_page=%d", base, limit)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}
	commits := make([]models.CommitMetadata, 0, len(raw))
	for _, item := range raw {
		commits = append(commits, models.CommitMetadata{
			SHA:     item.SHA,
			Message: item.Commit.Message,
			Author:  item.Commit.Author.Name,
			Date:    item.Commit.Author.Date,
		})
	}
	return commits, nil
}

func (c *RESTClient) ListIssues(ctx context.Context, name string, filter IssueFilter) ([]models.HostedIssue, error) {
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	query.Set("per_page", "100")
	if filter.State == "" {
		filter.State = "open"
	}
	query.Set("state", filter.State)
	if filter.Assignee != "" {
		query.Set("assignee", filter.Assignee)
	}
	if filter.Labels != "" {
		query.Set("labels", filter.Labels)
	}
	var raw []struct {
		ID     int64  `json:"id"`
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
		Assignee *struct {
			Login string `json:"login"`
		} `json:"assignee"`
		HTMLURL     string          `json:"html_url"`
		PullRequest json.RawMessage `json:"pull_request"`
	}
	if err := c.getJSON(ctx, base+"/issues?"+query.Encode(), &raw); err != nil {
		return nil, err
	}
	issues := make([]models.HostedIssue, 0, len(raw))
	for _, item := range raw {
		// The issues endpoint also reports pull requests; skip them.
		if item.PullRequest != nil {
			continue
		}
		issue := models.HostedIssue{
			ID:     item.ID,
			Number: item.Number,
			Title:  item.Title,
			State:  item.State,
			Labels: []string{},
			URL:    item.HTMLURL,
		}
		for _, label := range item.Labels {
			issue.Labels = append(issue.Labels, label.Name)
		}
		if item.Assignee != nil {
			issue.Assignee = item.Assignee.Login
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

func (c *RESTClient) ListPullRequests(ctx context.Context, name string) ([]models.HostedPullRequest, error) {
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return nil, err
	}
	var raw []struct {
		ID     int64  `json:"id"`
		Number int    `json:"number"`
		Title  string `json:"title"`
		State  string `json:"state"`
		Head   struct {
			Ref string `json:"ref"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
		HTMLURL string `json:"html_url"`
	}
	if err := c.getJSON(ctx, base+"/pulls?state=open&per_page=100", &raw); err != nil {
		return nil, err
	}
	pulls := make([]models.HostedPullRequest, 0, len(raw))
	for _, item := range raw {
		pulls = append(pulls, models.HostedPullRequest{
			ID:     item.ID,
			Number: item.Number,
			Title:  item.Title,
			State:  item.State,
			Head:   item.Head.Ref,
			Base:   item.Base.Ref,
			URL:    item.HTMLURL,
		})
	}
	return pulls, nil
}

func (c *RESTClient) Readme(ctx context.Context, name string) (string, error) {
	base, err := c.repoPath(ctx, name)
	if err != nil {
		return "", err
	}
	data, err := c.get(ctx, base+"/readme", "application/vnd.github.raw")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// repoPath resolves name to a "/repos/{owner}/{name}" path. Bare names
// are qualified with the authenticated user's login.
func (c *RESTClient) repoPath(ctx context.Context, name string) (string, error) {
	if strings.Contains(name, "/") {
		return "/repos/" + name, nil
	}
	c.loginMu.Lock()
	defer c.loginMu.Unlock()
	if c.login == "" {
		var user struct {
			Login string `json:"login"`
		}
		if err := c.getJSON(ctx, "/user", &user); err != nil {
			return "", err
		}
		c.login = user.Login
	}
	return "/repos/" + c.login + "/" + name, nil
}

func (c *RESTClient) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.get(ctx, path, "application/vnd.github+json")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *RESTClient) get(ctx context.Context, path, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		message := resp.Status
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil && body.Message != "" {
			message = body.Message
		}
		return nil, &StatusError{Status: resp.StatusCode, Message: message}
	}
	return data, nil
}

func visibility(private bool) string {
	if private {
		return "private"
	}
	return "public"
}
