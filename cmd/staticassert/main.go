// Command staticassert checks buildcheck static assertions as a standalone
// vet tool.
//
// Usage:
//
//	staticassert ./...
//	go vet -vettool=$(which staticassert) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/staticassert/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
