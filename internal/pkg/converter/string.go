package converter

import (
	"strconv"
)

// FloatToStr renders a number the way a default C++ ostream does:
// shortest form with at most 6 significant digits (10, 17.5, 1e+06).
func FloatToStr(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
