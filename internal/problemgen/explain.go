package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// derivation accumulates the newline-delimited explanation steps.
type derivation struct {
	steps []string
}

func (d *derivation) add(format string, args ...any) {
	d.steps = append(d.steps, fmt.Sprintf(format, args...))
}

func (d *derivation) String() string {
	return strings.Join(d.steps, "\n")
}

// fnum formats a numeric value without trailing zeros ("30", "2.1",
// "0.25"). Pool filtering guarantees the values are exact, so the
// shortest representation is the true one.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tensionWord names the sense of a tension-positive member force in the
// explanation text.
func tensionWord(n float64) string {
	if n > 0 {
		return "tension"
	}
	if n < 0 {
		return "compression"
	}
	return "zero force"
}
