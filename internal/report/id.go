package report

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// newReportID builds the externally visible report identifier:
// RPT-YYYYMMDD-NNNN, where NNNN is a zero-padded random sequence number.
func newReportID(now time.Time) string {
	return fmt.Sprintf("RPT-%s-%04d", now.Format("20060102"), rand.IntN(10000))
}
