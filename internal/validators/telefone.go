package validators

import "strings"

// FormatTelefone aplica (DD) DDDD-DDDD para números de até 10 dígitos
// e (DD) DDDDD-DDDD para 11. Reaplicável sobre valor já formatado.
func FormatTelefone(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	if len(digits) <= 2 {
		return digits
	}

	prefixLen := 4
	if len(digits) > 10 {
		prefixLen = 5
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(digits[:2])
	b.WriteString(") ")

	rest := digits[2:]
	if len(rest) <= prefixLen {
		b.WriteString(rest)
		return b.String()
	}

	b.WriteString(rest[:prefixLen])
	b.WriteByte('-')
	b.WriteString(rest[prefixLen:])
	return b.String()
}
