//go:build unit

package assert_test

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-buildcheck/buildcheck/assert"
	"github.com/LerianStudio/lib-buildcheck/buildcheck/log"
)

func ExampleChecker_That() {
	checker := assert.New(log.NewNop(), "wire", "decode")

	frame := []byte{0x01, 0x02, 0x03}
	checker.That(context.Background(), len(frame) > 0, "decode called with empty frame")

	fmt.Println("frame accepted")
	// Output: frame accepted
}

func ExampleNever() {
	status := "committed"

	switch status {
	case "committed", "aborted":
		fmt.Println("handled:", status)
	default:
		assert.Never(context.Background(), "unhandled status", "status", status)
	}
	// Output: handled: committed
}
