package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP: {error, details?}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// BigInt entero de 64 bits proveniente de columnas bigint del ODS.
//
// Se serializa como string en JSON para no perder precisión en consumidores
// JavaScript (Number solo es exacto hasta 2^53). Aplica a order_no, quote_no,
// customer_no y vnd_no. Acepta número o string al deserializar.
type BigInt int64

// Int64 retorna el valor nativo.
func (b BigInt) Int64() int64 { return int64(b) }

// MarshalJSON serializa el valor como string decimal.
func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(b), 10))
}

// UnmarshalJSON acepta tanto "484685" como 484685.
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*b = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*b = BigInt(n)
	return nil
}
