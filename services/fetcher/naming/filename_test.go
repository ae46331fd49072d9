package naming

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnderlineRepoName(t *testing.T) {
	t.Parallel()

	t.Run("short name is returned unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "shortrepo", UnderlineRepoName("shortrepo"))
		assert.Equal(t, "a-b-c", UnderlineRepoName("a-b-c"))
	})
	t.Run("name of exactly 16 characters is returned unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "fga-eps-mds-2023", UnderlineRepoName("fga-eps-mds-2023"))
	})
	t.Run("hyphens inside the first 16 characters are preserved", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "fga-eps-mds_2023_1_CAPJu_Front", UnderlineRepoName("fga-eps-mds_2023-1-CAPJu-Front"))
		assert.Equal(t, "org-some-repository", UnderlineRepoName("org-some-repository"))
	})
	t.Run("hyphen exactly at index 16 is replaced", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "fga-eps-mds-2023_front_end", UnderlineRepoName("fga-eps-mds-2023-front-end"))
	})
	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ção-ção-ção-ção-_x", UnderlineRepoName("ção-ção-ção-ção--x"))
	})
	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", UnderlineRepoName(""))
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 7, 9, 5, 2, 0, time.Local)
	assert.Equal(t, "3-7-2024-9-5-2", FormatTimestamp(ts))

	ts = time.Date(2023, time.December, 31, 23, 59, 59, 999, time.Local)
	assert.Equal(t, "12-31-2023-23-59-59", FormatTimestamp(ts))
}

func TestBuildFilename(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.March, 7, 9, 5, 2, 0, time.Local)

	t.Run("long repository name", func(t *testing.T) {
		t.Parallel()

		filename := BuildFilename("fga-eps-mds", "fga-eps-mds_2023-1-CAPJu-Front", "v1.2.3", ts)
		assert.Equal(t, "fga-eps-mds-fga-eps-mds_2023_1_CAPJu_Front-3-7-2024-9-5-2-v1.2.3.json", filename)
	})
	t.Run("hyphens before index 16 stay in place", func(t *testing.T) {
		t.Parallel()

		filename := BuildFilename("fga-eps-mds", "org-some-repository", "v1.2.3", ts)
		assert.Equal(t, "fga-eps-mds-org-some-repository-3-7-2024-9-5-2-v1.2.3.json", filename)
	})
	t.Run("short repository name", func(t *testing.T) {
		t.Parallel()

		filename := BuildFilename("fga-eps-mds", "shortrepo", "1.0", ts)
		assert.Equal(t, "fga-eps-mds-shortrepo-3-7-2024-9-5-2-1.0.json", filename)
	})
	t.Run("version is embedded verbatim", func(t *testing.T) {
		t.Parallel()

		filename := BuildFilename("fga-eps-mds", "repo", "release candidate-2", ts)
		assert.Equal(t, "fga-eps-mds-repo-3-7-2024-9-5-2-release candidate-2.json", filename)
	})
}
