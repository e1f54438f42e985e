package validators

import "strings"

// FormatCPF aplica a máscara DDD.DDD.DDD-DD progressivamente,
// conforme os dígitos vão sendo digitados.
func FormatCPF(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// ValidateCPF confere os dois dígitos verificadores (módulo 11).
func ValidateCPF(value string) bool {
	cpf := onlyDigits(value)

	if len(cpf) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo, mas são inválidos
	if strings.Count(cpf, string(cpf[0])) == 11 {
		return false
	}

	if checkDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	if checkDigit(cpf, 10) != int(cpf[10]-'0') {
		return false
	}

	return true
}

// checkDigit calcula o dígito verificador sobre os primeiros n dígitos,
// com pesos decrescentes a partir de n+1.
func checkDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
