package repository

import (
	"context"
	"time"

	"github.com/jhoicas/toolbox-api/internal/domain/entity"
)

// OrderRepository consultas de solo lectura sobre cabeceras y líneas de orden.
type OrderRepository interface {
	// GetHeader busca una cabecera por order_no con cliente y vendedor
	// resueltos. Retorna (nil, nil) si no existe.
	GetHeader(ctx context.Context, orderNo int64) (*entity.OrderHeader, error)

	// ListLines retorna todas las líneas de un order_index con el nombre del
	// proveedor resuelto, ordenadas por número de línea.
	ListLines(ctx context.Context, orderIndex int64) ([]entity.OrderLine, error)

	// ListLinesByOrderIndexes trae en una sola consulta las líneas de varios
	// order_index y las agrupa por índice. Índices sin líneas no aparecen en
	// el mapa.
	ListLinesByOrderIndexes(ctx context.Context, orderIndexes []int64) (map[int64][]entity.OrderLine, error)

	// ListActiveQuotes retorna las cabeceras con order_type = 'Q' del vendedor
	// indicado cuyo date_entered sea posterior a since, ordenadas por
	// date_entered descendente.
	ListActiveQuotes(ctx context.Context, salespersonID string, since time.Time) ([]entity.OrderHeader, error)
}
