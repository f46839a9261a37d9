package dbf

import(
	"math"
	"strconv"
	"strings"
)

// ToFixed formats f with exactly d digits after the decimal point (and no point at all when d
// is zero), the way the JavaScript Number.prototype.toFixed does it: the exact binary value is
// rounded, with halfway cases going away from zero. strconv rounds those to even, so 2.5 would
// come out as "2" rather than "3". Negative values keep their sign even if they round to zero.
func ToFixed(f float64, d int) string {
	switch {
	case math.IsNaN(f):   return "NaN"
	case math.IsInf(f,1): return "Infinity"
	case math.IsInf(f,-1):return "-Infinity"
	}
	if d < 0 { d = 0 }

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	if f >= 1e21 {
		return sign + strconv.FormatFloat(f, 'g', -1, 64)
	}

	// A float64 has at most 1074 significant fractional digits, so this is exact.
	exact := strconv.FormatFloat(f, 'f', 1074, 64)
	dot := strings.IndexByte(exact, '.')
	intPart, frac := exact[:dot], exact[dot+1:]

	digits := []byte(intPart + frac[:d])
	if frac[d] >= '5' {
		digits = incrementDecimal(digits)
	}

	n := len(digits) - d
	str := string(digits[:n])
	if d > 0 {
		str += "." + string(digits[n:])
	}

	return sign + str
}

// incrementDecimal adds one to a string of decimal digits, growing it if it carries out.
func incrementDecimal(digits []byte) []byte {
	for i:=len(digits)-1; i>=0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
