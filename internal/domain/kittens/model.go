package kittens

import "time"

// Kitty es un gatito del catálogo. Age se expresa en meses cumplidos.
// DeletedAt != nil marca soft delete: la fila queda pero sale de todas las
// lecturas salvo el lookup del propio borrado. No hay undelete.
type Kitty struct {
	ID          int64
	Name        string
	Color       string
	Age         int
	Description *string
	BreedID     int64

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
