package dogs

import "context"

// Repository es el almacenamiento durable de perros.
// Create debe ser atómico: o persiste el registro completo o devuelve error.
type Repository interface {
	Create(ctx context.Context, d Dog) error
	All(ctx context.Context) ([]Dog, error)
	First(ctx context.Context) (Dog, error)
	Count(ctx context.Context) (int, error)
}
