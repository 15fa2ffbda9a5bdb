package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/toolbox-api/internal/application/dto"
)

// Los bigint del ODS viajan como string en JSON para no perder precisión
// en consumidores JavaScript.
func TestBigInt_SerializaComoString(t *testing.T) {
	out, err := json.Marshal(dto.BigInt(484685))
	require.NoError(t, err)
	assert.Equal(t, `"484685"`, string(out))
}

func TestBigInt_ValorFueraDeRangoFloat64(t *testing.T) {
	// 2^53+1 no es representable como float64; como string sobrevive intacto.
	out, err := json.Marshal(dto.BigInt(9007199254740993))
	require.NoError(t, err)
	assert.Equal(t, `"9007199254740993"`, string(out))
}

func TestBigInt_DeserializaStringYNumero(t *testing.T) {
	var a, b dto.BigInt
	require.NoError(t, json.Unmarshal([]byte(`"123"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`123`), &b))
	assert.Equal(t, int64(123), a.Int64())
	assert.Equal(t, int64(123), b.Int64())
}

func TestBigInt_NullEsCero(t *testing.T) {
	var v dto.BigInt = 7
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.Equal(t, int64(0), v.Int64())
}
