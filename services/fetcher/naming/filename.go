package naming

import (
	"fmt"
	"strings"
	"time"
)

// preservedPrefixLength is the number of leading characters of a repository name left untouched
const preservedPrefixLength = 16

const snapshotExtension = ".json"

// UnderlineRepoName keeps the first 16 characters of the repository name and replaces every hyphen found after
// them with an underscore
func UnderlineRepoName(repositoryName string) string {
	runes := []rune(repositoryName)
	if len(runes) <= preservedPrefixLength {
		return repositoryName
	}

	head := string(runes[:preservedPrefixLength])
	tail := strings.ReplaceAll(string(runes[preservedPrefixLength:]), "-", "_")

	return head + tail
}

// FormatTimestamp renders the time as month-day-year-hour-minute-second without zero padding
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d-%d-%d-%d", int(t.Month()), t.Day(), t.Year(), t.Hour(), t.Minute(), t.Second())
}

// BuildFilename assembles the snapshot filename:
// {prefix}-{underlinedRepoName}-{month}-{day}-{year}-{hour}-{minute}-{second}-{version}.json
func BuildFilename(prefix string, repositoryName string, repositoryVersion string, t time.Time) string {
	return prefix + "-" + UnderlineRepoName(repositoryName) + "-" + FormatTimestamp(t) + "-" + repositoryVersion + snapshotExtension
}
