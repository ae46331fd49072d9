package common

// OrganizationPrefix is prepended to every snapshot filename
const OrganizationPrefix = "fga-eps-mds"

// ComponentTreeURL is the SonarCloud measures endpoint, the component name is appended right after it
const ComponentTreeURL = "https://sonarcloud.io/api/measures/component_tree?component="

// MetricKeysParam separates the component from the requested metric keys
const MetricKeysParam = "&metricKeys="

var metricKeys = [...]string{
	"files",
	"functions",
	"complexity",
	"comment_lines_density",
	"duplicated_lines_density",
	"coverage",
	"ncloc",
	"tests",
	"test_errors",
	"test_failures",
	"test_execution_time",
	"security_rating",
}

// MetricKeys returns a copy of the metric keys requested for every repository, in request order
func MetricKeys() []string {
	keys := make([]string, len(metricKeys))
	copy(keys, metricKeys[:])

	return keys
}
