package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Taza Cerámica", "taza-ceramica"},
		{"Señalador de cuero", "senalador-de-cuero"},
		{"  Remera   Premium  ", "remera-premium"},
		{"Kit Día del Niño 2025", "kit-dia-del-nino-2025"},
		{"¡Oferta!", "oferta"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Make(c.in), "entrada: %q", c.in)
	}
}
