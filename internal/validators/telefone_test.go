package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTelefone(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"1":           "1",
		"11":          "11",
		"119":         "(11) 9",
		"1191234":     "(11) 9123-4",
		"1112345678":  "(11) 1234-5678",
		"11912345678": "(11) 91234-5678",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatTelefone(in), "entrada: %q", in)
	}
}

func TestFormatTelefone_Idempotente(t *testing.T) {
	formatted := FormatTelefone("11912345678")
	assert.Equal(t, "(11) 91234-5678", formatted)
	assert.Equal(t, formatted, FormatTelefone(formatted))
}
