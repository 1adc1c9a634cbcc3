package breeds

// Breed es una raza de gato. Sin timestamps ni soft delete:
// las razas son datos de catálogo, no registros con ciclo de vida.
type Breed struct {
	ID          int64
	Name        string
	Description *string
}
