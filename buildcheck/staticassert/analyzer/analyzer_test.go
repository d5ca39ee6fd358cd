//go:build unit

package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/staticassert/analyzer"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), analyzer.Analyzer, "a")
}

func TestAnalyzerMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "staticassert", analyzer.Analyzer.Name)
	assert.NotEmpty(t, analyzer.Analyzer.Doc)
	assert.NotEmpty(t, analyzer.Analyzer.Requires)
}
