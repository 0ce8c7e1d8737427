package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Los intervalos sin productos se devuelven con conteo cero y los límites
// cubren [min, max] sin huecos.
func TestHistogramBuckets_RellenaIntervalosVacios(t *testing.T) {
	counts := map[int]int{1: 3, 4: 1}

	out := histogramBuckets(dec("0"), dec("100"), 4, counts)

	require.Len(t, out, 4)
	assert.Equal(t, []int{3, 0, 0, 1}, []int{out[0].Count, out[1].Count, out[2].Count, out[3].Count})
	assert.True(t, out[0].Low.Equal(dec("0")))
	assert.True(t, out[0].High.Equal(dec("25")))
	assert.True(t, out[3].Low.Equal(dec("75")))
	assert.True(t, out[3].High.Equal(dec("100")))
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].Low.Equal(out[i-1].High), "intervalo %d no es contiguo", i)
	}
}

// width_bucket devuelve buckets+1 cuando price == max; ese conteo debe
// acumularse en el último intervalo, no perderse.
func TestHistogramBuckets_PrecioIgualAlMaximoCaeEnElUltimo(t *testing.T) {
	counts := map[int]int{4: 2, 5: 1}

	out := histogramBuckets(dec("0"), dec("100"), 4, counts)

	require.Len(t, out, 4)
	assert.Equal(t, 3, out[3].Count)
}

// Límites no enteros: el ancho se reparte con aritmética decimal exacta.
func TestHistogramBuckets_AnchoDecimal(t *testing.T) {
	out := histogramBuckets(dec("10.50"), dec("20.50"), 4, nil)

	require.Len(t, out, 4)
	assert.True(t, out[0].High.Equal(dec("13")))
	assert.True(t, out[1].High.Equal(dec("15.50")))
	assert.True(t, out[3].High.Equal(dec("20.50")))
	for _, b := range out {
		assert.Equal(t, 0, b.Count)
	}
}
