// Package dataset reads, writes and summarizes line-oriented numeric
// records.
//
// Each record keeps its raw input line verbatim alongside the number
// scanned from the start of that line, so filtered output reproduces the
// input text exactly.
package dataset

import (
	"errors"
	"regexp"
	"strconv"
)

// Record is one input line and its leading numeric value.
type Record struct {
	Value float64
	Line  string
}

var leadingFloat = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ScanLeadingFloat parses the decimal number at the start of s, after
// optional whitespace. Trailing text is ignored. It reports false when s
// does not begin with a number.
func ScanLeadingFloat(s string) (float64, bool) {
	m := leadingFloat.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		// Out-of-range literals still carry a signed infinity.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// ParseRecord builds a record from a line. Lines without a leading
// number get value 0.
func ParseRecord(line string) Record {
	v, _ := ScanLeadingFloat(line)
	return Record{Value: v, Line: line}
}

// Values returns the numeric values of records in order.
func Values(records []Record) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	return values
}
