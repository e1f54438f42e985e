package validators

import "regexp"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail é uma checagem de formato ("local@dominio.tld"),
// não de entregabilidade.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
