package parser

import (
	"math"
	"strconv"
	"testing"
)

var parseIntTests = map[string]int32{
	"":             0,
	"    ":         0,
	"-":            0,
	"0":            0,
	"7":            7,
	"42":           42,
	"1000":         1000,
	"12345":        12345,
	"-64":          -64,
	"  192":        192,
	"  -3500":      -3500,
	"3500:0:0:0:0": 3500,
	"128,0":        128,
	"12a34":        12,
	"1234x5678":    1234,
	"x12":          0,
	"\t12":         0,
	"- 5":          0,
	"--5":          0,
	"2147483647":   math.MaxInt32,
	"-2147483647":  -math.MaxInt32,
	"0000000123":   123,
}

func TestParseInt(t *testing.T) {
	for in, expected := range parseIntTests {
		if out := ParseInt([]byte(in)); out != expected {
			t.Errorf("ParseInt(%q) = %v, want %v", in, out, expected)
		}
	}
}

func TestParseIntRoundTrip(t *testing.T) {
	values := []int32{math.MaxInt32, -math.MaxInt32, 1, -1, 9999, 10000, -10001, 123456789}
	for v := int32(-100000); v <= 100000; v += 37 {
		values = append(values, v)
	}
	for _, v := range values {
		for _, terminator := range []string{"", ",", ":", " ", "x"} {
			in := strconv.FormatInt(int64(v), 10) + terminator
			if out := ParseInt([]byte(in)); out != v {
				t.Errorf("ParseInt(%q) = %v, want %v", in, out, v)
			}
		}
	}
}

func TestParseIntDoesNotReadPastSlice(t *testing.T) {
	backing := []byte("12345678")
	if out := ParseInt(backing[:3]); out != 123 {
		t.Errorf("ParseInt(%q) = %v, want 123", backing[:3], out)
	}
	if out := ParseInt(backing[:5]); out != 12345 {
		t.Errorf("ParseInt(%q) = %v, want 12345", backing[:5], out)
	}
}
