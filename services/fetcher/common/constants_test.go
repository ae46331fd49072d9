package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricKeys(t *testing.T) {
	t.Parallel()

	expected := []string{
		"files", "functions", "complexity", "comment_lines_density", "duplicated_lines_density", "coverage",
		"ncloc", "tests", "test_errors", "test_failures", "test_execution_time", "security_rating",
	}
	assert.Equal(t, expected, MetricKeys())

	t.Run("returned slice is a copy", func(t *testing.T) {
		keys := MetricKeys()
		keys[0] = "mutated"

		assert.Equal(t, "files", MetricKeys()[0])
	})
}
