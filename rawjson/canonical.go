package rawjson

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Canonical encodes v following RFC 8785 (JCS): object members sorted by
// UTF-16 code units, compact output, ECMAScript number formatting. Two
// Equal values always have the same canonical bytes, which makes the
// output suitable for golden files, diffs and hashing.
func Canonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindString:
		writeCanonicalString(buf, v.s)
	case KindNumber:
		s, err := canonicalNumber(v.s)
		if err != nil {
			return err
		}
		buf.WriteString(s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		type member struct {
			key   string
			units []uint16
		}
		members := make([]member, 0, v.obj.Len())
		for k := range v.obj.Keys() {
			members = append(members, member{key: k, units: utf16.Encode([]rune(k))})
		}
		slices.SortFunc(members, func(a, b member) int {
			return slices.Compare(a.units, b.units)
		})

		buf.WriteByte('{')
		for i, m := range members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonicalString(buf, m.key)
			buf.WriteByte(':')
			val, _ := v.obj.Get(m.key)
			if err := writeCanonical(buf, val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return errors.New("rawjson: unsupported kind")
	}
	return nil
}

func writeCanonicalString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\b':
			buf.WriteString(`\b`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\f':
			buf.WriteString(`\f`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r <= 0x1F:
			buf.WriteString(`\u00`)
			buf.WriteString(hex.EncodeToString([]byte{byte(r)}))
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

// canonicalNumber formats text the way ECMAScript prints a double.
// Numbers a double cannot hold, such as 1e400 or 1e-400, keep their
// exact value in the same exponent notation.
func canonicalNumber(text string) (string, error) {
	f, err := strconv.ParseFloat(text, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return wideNumber(text)
	case err != nil:
		return "", err
	case math.IsNaN(f) || math.IsInf(f, 0):
		return "", errors.New("rawjson: number out of range")
	}
	if f == 0 {
		if z, ok := new(big.Float).SetString(text); ok && z.Sign() != 0 {
			return wideNumber(text)
		}
		return "0", nil
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64)), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func wideNumber(text string) (string, error) {
	z, ok := new(big.Float).SetString(text)
	if !ok {
		return "", errors.New("rawjson: invalid number " + text)
	}
	return trimExponent(z.Text('e', -1)), nil
}

// trimExponent turns Go's "1e-07" into ECMAScript's "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}
