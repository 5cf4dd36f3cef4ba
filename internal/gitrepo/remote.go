package gitrepo

import "strings"

// NormalizeRemoteURL canonicalizes a remote URL for comparison: surrounding
// whitespace is trimmed, and web-transfer URLs gain the conventional ".git"
// suffix when missing. SSH-style URLs pass through unchanged. This is a
// best-effort heuristic; it does not resolve DNS, credentials, or mirror
// aliases, so URLs it cannot confidently equate compare as different.
func NormalizeRemoteURL(url string) string {
	candidate := strings.TrimSpace(url)
	if strings.HasPrefix(candidate, "http") && !strings.HasSuffix(candidate, ".git") {
		candidate = strings.TrimRight(candidate, "/") + ".git"
	}
	return candidate
}

// remoteURLsMatch reports whether the normalized candidate matches any of
// the binding's configured URLs.
func remoteURLsMatch(candidate string, urls []string) bool {
	for _, url := range urls {
		if NormalizeRemoteURL(url) == candidate {
			return true
		}
	}
	return false
}
