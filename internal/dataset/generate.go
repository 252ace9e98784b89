package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/GriffinCanCode/zstat/internal/random"
)

// Generate writes count synthetic records with values uniform in
// [0, maxValue). Each line reads "<value> String <index>".
func Generate(w io.Writer, count int, maxValue float64, src random.Source) error {
	bw := bufio.NewWriter(w)
	for i := range count {
		if _, err := fmt.Fprintf(bw, "%f String %d\n", maxValue*src.Float64(), i); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return bw.Flush()
}
