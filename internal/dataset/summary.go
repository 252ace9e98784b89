package dataset

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a record set.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize returns the count, mean and sample standard deviation of the
// record values. Fewer than two records report a zero deviation.
func Summarize(records []Record) Summary {
	switch len(records) {
	case 0:
		return Summary{}
	case 1:
		return Summary{Count: 1, Mean: records[0].Value}
	}

	mean, std := stat.MeanStdDev(Values(records), nil)
	return Summary{
		Count:  len(records),
		Mean:   mean,
		StdDev: std,
	}
}
