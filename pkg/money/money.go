// Package money normaliza valores monetarios provenientes del ODS del ERP.
//
// Las columnas de montos de las tablas ods_hds_* llegan en representaciones
// mixtas según el origen: NUMERIC, texto con formato de moneda ("$1,234.56"),
// NULL o basura. Toda la aplicación converge en una única regla de coerción:
// Parse. Nunca retorna error; la entrada inválida degrada a cero.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var cleaner = strings.NewReplacer("$", "", ",", "")

// Parse convierte cualquier valor de monto a decimal.
//
// Reglas:
//   - numéricos pasan sin alterarse (NaN/Inf degradan a cero)
//   - nil o cadena vacía → cero
//   - cadenas: se eliminan '$' y ',' y se parsea como decimal
//   - no parseable → cero
//
// Es idempotente y sin efectos secundarios: Parse(Parse(v)) == Parse(v).
func Parse(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case string:
		return parseString(x)
	case []byte:
		return parseString(string(x))
	case float64:
		return parseFloat(x)
	case float32:
		return parseFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case uint32:
		return decimal.NewFromInt(int64(x))
	case uint64:
		// Montos del ODS nunca alcanzan el rango donde esto desborda
		return decimal.NewFromInt(int64(x))
	default:
		return decimal.Zero
	}
}

func parseString(s string) decimal.Decimal {
	s = strings.TrimSpace(cleaner.Replace(s))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
