package git

import (
	"fmt"
	"strings"

	"github.com/gitsight/go-vcsurl"
)

// webRepositoryURL turns an origin remote such as
// "git@github.com:org/app.git" into "https://github.com/org/app".
// Remotes on hosts go-vcsurl does not know are returned trimmed of ".git".
func webRepositoryURL(remote string) string {
	remote = strings.TrimSuffix(strings.TrimSpace(remote), ".git")
	if remote == "" {
		return ""
	}

	info, err := vcsurl.Parse(remote)
	if err != nil || info.Username == "" || info.Name == "" {
		return remote
	}
	return fmt.Sprintf("https://%s/%s/%s", info.Host, info.Username, info.Name)
}
