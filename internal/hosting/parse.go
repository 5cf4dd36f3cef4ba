package hosting

import (
	"regexp"
	"strings"
)

var ownerRepoPatterns = []*regexp.Regexp{
	// https://host/owner/repo(.git)
	regexp.MustCompile(`^https?://[^/]+/([^/]+)/([^/]+?)(?:\.git)?/?$`),
	// ssh://git@host/owner/repo(.git)
	regexp.MustCompile(`^ssh://[^/]+/([^/]+)/([^/]+?)(?:\.git)?/?$`),
	// git@host:owner/repo(.git)
	regexp.MustCompile(`^[^@/]+@[^:/]+:([^/]+)/([^/]+?)(?:\.git)?$`),
}

// ParseOwnerRepo extracts the owner/name pair from a hosting-service
// remote URL. Best-effort auto-detection: a URL that matches no known
// shape reports ok=false, never an error.
func ParseOwnerRepo(url string) (owner, repo string, ok bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", "", false
	}
	for _, pattern := range ownerRepoPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}
