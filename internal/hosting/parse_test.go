package hosting

import "testing"

func TestParseOwnerRepo(t *testing.T) {
	tests := []struct {
		url   string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/alice/widgets.git", "alice", "widgets", true},
		{"https://github.com/alice/widgets", "alice", "widgets", true},
		{"https://github.com/alice/widgets/", "alice", "widgets", true},
		{"http://git.internal/team/service.git", "team", "service", true},
		{"git@github.com:alice/widgets.git", "alice", "widgets", true},
		{"git@github.com:alice/widgets", "alice", "widgets", true},
		{"ssh://git@github.com/alice/widgets.git", "alice", "widgets", true},
		{"", "", "", false},
		{"not a url", "", "", false},
		{"https://github.com/alice", "", "", false},
		{"/var/repos/demo", "", "", false},
	}
	for _, tt := range tests {
		owner, repo, ok := ParseOwnerRepo(tt.url)
		if ok != tt.ok || owner != tt.owner || repo != tt.repo {
			t.Errorf("ParseOwnerRepo(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.url, owner, repo, ok, tt.owner, tt.repo, tt.ok)
		}
	}
}
