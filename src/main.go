//go:build js && wasm

// package main provides the Wasm playground.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"syscall/js"

	"github.com/theory/isodate/iso8601"
	"github.com/theory/isodate/iso8601/types"
	"github.com/theory/isodate/rfc3339"
)

const (
	optDate int = 1 << iota
	optTime
	optDateTime
	optRFC3339
	optOverflow
	optSignedZero
	optStrict
	optIndent
)

func parse(_ js.Value, args []js.Value) any {
	input := args[0].String()
	leap := args[1].String()
	yearDigits := args[2].Int()
	opts := args[3].Int()

	return execute(input, leap, yearDigits, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("parse", js.FuncOf(parse))
	js.Global().Set("optDate", js.ValueOf(optDate))
	js.Global().Set("optTime", js.ValueOf(optTime))
	js.Global().Set("optDateTime", js.ValueOf(optDateTime))
	js.Global().Set("optRFC3339", js.ValueOf(optRFC3339))
	js.Global().Set("optOverflow", js.ValueOf(optOverflow))
	js.Global().Set("optSignedZero", js.ValueOf(optSignedZero))
	js.Global().Set("optStrict", js.ValueOf(optStrict))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

func execute(input, leap string, yearDigits, opts int) string {
	// Assemble the options.
	options, msg := assembleOptions(leap, yearDigits, opts)
	if msg != "" {
		return msg
	}

	// Parse the input.
	var (
		res any
		err error
	)
	switch {
	case opts&optDate == optDate:
		res, err = iso8601.ParseDate(input, options...)
	case opts&optTime == optTime:
		res, err = iso8601.ParseTime(input, options...)
	case opts&optRFC3339 == optRFC3339:
		res, err = rfc3339.Parse(input, options...)
	default:
		res, err = iso8601.ParseDateTime(input, options...)
	}
	if err != nil {
		return html.EscapeString(fmt.Sprintf("Error %v", err))
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Sprintf("Error serializing results: %v", err)
	}

	return html.EscapeString(buf.String())
}

func assembleOptions(leap string, yearDigits, opts int) ([]iso8601.Option, string) {
	options := []iso8601.Option{iso8601.WithYearDigits(yearDigits)}

	if leap != "" {
		policy, err := types.ParseLeapPolicy(leap)
		if err != nil {
			return nil, fmt.Sprintf("Error %v", err)
		}
		options = append(options, iso8601.WithLeapPolicy(policy))
	}

	if opts&optOverflow == optOverflow {
		options = append(options, iso8601.WithOverflow())
	}

	if opts&optSignedZero == optSignedZero {
		options = append(options, iso8601.WithSignedZeroOffset())
	}

	if opts&optStrict == optStrict {
		options = append(options, iso8601.WithStrictNotation())
	}

	return options, ""
}
