package entity

// Area representa un área o zona física de almacén (i_areas).
type Area struct {
	ID          int64
	Code        string
	Name        string
	Description string
}
