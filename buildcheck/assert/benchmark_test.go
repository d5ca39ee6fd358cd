//go:build unit

package assert

import (
	"context"
	"testing"
)

// Benchmarks verify assertions are lightweight enough for always-on usage.
// Target: < 100ns for hot path (condition is true), zero allocations.

func BenchmarkThat_True(b *testing.B) {
	checker := New(nil, "", "")
	for i := 0; i < b.N; i++ {
		checker.That(context.Background(), true, "benchmark test")
	}
}

func BenchmarkThat_TrueWithContext(b *testing.B) {
	checker := New(nil, "", "")
	for i := 0; i < b.N; i++ {
		checker.That(
			context.Background(),
			true,
			"benchmark test",
			"key1",
			"value1",
			"key2",
			42,
		)
	}
}

func BenchmarkThatUnreachable_False(b *testing.B) {
	checker := New(nil, "", "")
	for i := 0; i < b.N; i++ {
		checker.ThatUnreachable(context.Background(), false, "benchmark test")
	}
}

func BenchmarkPackageThat_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		That(context.Background(), true, "benchmark test")
	}
}
