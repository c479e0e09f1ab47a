// Package main parses an ISO 8601 date time in order to test WASM compilation.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/theory/isodate/iso8601"
)

func main() {
	// Parse a date time with a leap second.
	d, _ := iso8601.ParseDateTime("2019-12-12T23:59:60Z")

	// Show the result.
	//nolint:errchkjson
	out, _ := json.Marshal(d)

	//nolint:forbidigo
	fmt.Printf("%s\n", out)
}
