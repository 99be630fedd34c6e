// Command fluentgen generates property path constants for struct types so that
// explicit identifiers and PathRef values can refer to fields without string
// literals.
//
// Usage:
//
//	fluentgen generate --dir ./models --type User,Order
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
