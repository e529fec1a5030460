package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	digits := strconv.FormatUint(value, 2)

	if len(digits) < bits {
		digits = strings.Repeat("0", bits-len(digits)) + digits
	}

	return digits
}

// Formats an uint value into a fixed width hex string of n digits, 0x prefixed
func FormatUintHex(value uint64, digits int) string {
	return fmt.Sprintf("0x%0*x", digits, value)
}
