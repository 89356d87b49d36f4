package utils

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Decimal rounds value half away from zero to places decimal places.
// NaN and infinities are returned unchanged.
func Decimal(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	v, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return v
}

// FormatFloat renders value with thousand separators and exactly digits
// decimal places, e.g. FormatFloat(90720, 1) == "90,720.0".
func FormatFloat(value float64, digits int32) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	s := decimal.NewFromFloat(value).StringFixed(digits)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	n, ok := new(big.Int).SetString(strings.TrimPrefix(intPart, "-"), 10)
	if !ok {
		return strconv.FormatFloat(value, 'f', int(digits), 64)
	}

	out := humanize.BigComma(n)
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}

// IBytes formats a size given in MB as a binary byte size, e.g. "88 GiB".
func IBytes(mb float64) string {
	if mb <= 0 || math.IsNaN(mb) || math.IsInf(mb, 0) {
		return humanize.IBytes(0)
	}
	b := mb * humanize.MiByte
	if b >= math.MaxUint64 {
		n, _ := big.NewFloat(b).Int(nil)
		return humanize.BigIBytes(n)
	}
	return humanize.IBytes(uint64(b))
}
