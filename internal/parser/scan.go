package parser

// ParseInt reads a base 10 integer from the front of b. Leading spaces and a
// single '-' are accepted, scanning stops at the first non-digit and anything
// after it is ignored. It never fails: no digits gives 0, and values that do
// not fit in 32 bits wrap.
func ParseInt(b []byte) int32 {
	i, n := 0, len(b)
	for i < n && b[i] == ' ' {
		i++
	}

	negative := false
	if i < n && b[i] == '-' {
		negative = true
		i++
	}

	// Four digits per step while there are four digits to take.
	// Bytes below '0' wrap around to large values, so > 9 rejects both sides.
	var acc int32
	for i+4 <= n {
		d0, d1, d2, d3 := b[i]-'0', b[i+1]-'0', b[i+2]-'0', b[i+3]-'0'
		if d0 > 9 || d1 > 9 || d2 > 9 || d3 > 9 {
			break
		}
		acc = acc*10000 + int32(d0)*1000 + int32(d1)*100 + int32(d2)*10 + int32(d3)
		i += 4
	}
	for ; i < n; i++ {
		d := b[i] - '0'
		if d > 9 {
			break
		}
		acc = acc*10 + int32(d)
	}

	if negative {
		return -acc
	}
	return acc
}
