package budgeting

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "apenas dígitos", input: "150000", want: 150000},
		{name: "prefixo Rp com separador de milhar", input: "Rp 1.500.000", want: 1500000},
		{name: "prefixo Rp minúsculo sem espaço", input: "rp150.000", want: 150000},
		{name: "prefixo Rp. com espaço", input: "Rp. 150.000", want: 150000},
		{name: "prefixo Rp. sem espaço", input: "Rp.150.000", want: 150000},
		{name: "prefixo Rp. com sufixo", input: "Rp.1,5jt", want: 1500000},
		{name: "espaços internos", input: " 150 000 ", want: 150000},
		{name: "sufixo k", input: "200k", want: 200000},
		{name: "sufixo rb", input: "200rb", want: 200000},
		{name: "sufixo rb maiúsculo", input: "200RB", want: 200000},
		{name: "sufixo jt", input: "2jt", want: 2000000},
		{name: "sufixo m", input: "3m", want: 3000000},
		{name: "decimal com jt", input: "1.5jt", want: 1500000},
		{name: "decimal com vírgula e jt", input: "1,25jt", want: 1250000},
		{name: "decimal com m", input: "1.15m", want: 1150000},
		{name: "decimal com k arredonda", input: "2.5555k", want: 2556},
		{name: "decimal com rb", input: "150.5rb", want: 150500},
		{name: "número decimal simples arredonda", input: "1500.6", want: 1501},
		{name: "notação científica", input: "1e5", want: 100000},
		{name: "zero é aceito pelo parser", input: "0", want: 0},
		{name: "negativo é aceito pelo parser", input: "-5000", want: -5000},
		{name: "vazio", input: "", wantErr: true},
		{name: "só espaços", input: "   ", wantErr: true},
		{name: "só prefixo", input: "Rp", wantErr: true},
		{name: "só prefixo com ponto", input: "Rp.", wantErr: true},
		{name: "texto", input: "abc", wantErr: true},
		{name: "sufixo desconhecido", input: "200x", wantErr: true},
		{name: "infinito", input: "inf", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "estouro de inteiro", input: "99999999999999999999", wantErr: true},
		{name: "estouro com sufixo", input: "9999999999999999jt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_PlainDigitsMatchParseInt(t *testing.T) {
	for _, n := range []int64{1, 7, 42, 999, 1000, 123456, 150000, 987654321} {
		s := strconv.FormatInt(n, 10)
		got, err := ParseAmount(s)
		require.NoError(t, err)
		assert.Equal(t, n, got, s)
	}
}

func TestParseAmount_ThousandMarkersAreEquivalent(t *testing.T) {
	k, err := ParseAmount("200k")
	require.NoError(t, err)

	rb, err := ParseAmount("200rb")
	require.NoError(t, err)

	assert.Equal(t, int64(200000), k)
	assert.Equal(t, k, rb)
}
