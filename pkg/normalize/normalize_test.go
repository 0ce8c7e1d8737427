package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magicshop/admin-api/pkg/normalize"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Varita Mágica", "varita magica"},
		{"Póción de Curación", "pocion de curacion"},
		{"Grimório", "grimorio"},
		{"ESCUDO", "escudo"},
		{"sin acentos", "sin acentos"},
		{"", ""},
		{"Ñoño", "nono"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalize.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

// La búsqueda debe casar independientemente de los acentos en ambos lados.
func TestFold_BusquedaInsensibleAAcentos(t *testing.T) {
	stored := normalize.Fold("Varita Mágica de Saúco")
	assert.Contains(t, stored, normalize.Fold("MÁGICA"))
	assert.Contains(t, stored, normalize.Fold("sauco"))
}
