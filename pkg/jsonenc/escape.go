package jsonenc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

var commonEscapes = map[rune]string{
	'\\': `\\`,
	'"':  `\"`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

// Escape rewrites s per the JSON string escaping rules. Control characters
// always escape; characters above 0x7F escape only when ensureASCII is set;
// characters outside the basic multilingual plane escape as UTF-16 surrogate
// pairs whenever they escape at all.
func Escape(s string, ensureASCII bool) string {
	var sb strings.Builder
	for _, r := range s {
		if esc, ok := commonEscapes[r]; ok {
			sb.WriteString(esc)
			continue
		}
		switch {
		case r > 0xFFFF && ensureASCII:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, hi, lo)
		case r < 0x20 || (r > 0x7F && ensureASCII):
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// formatNumber renders the numeric kinds ToRenderable admits. Floats follow
// the shortest-representation rule, switching to exponent notation outside
// the range where plain decimals stay readable.
func formatNumber(value any) string {
	switch n := value.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float32:
		return formatFloat(float64(n), 32)
	case float64:
		return formatFloat(n, 64)
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bits int) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	out := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// trim the leading zero of a single-digit exponent: e+09 -> e+9
		if n := len(out); n >= 4 && out[n-4] == 'e' && out[n-2] == '0' {
			out[n-2] = out[n-1]
			out = out[:n-1]
		}
	}
	return string(out)
}
