package store

import "github.com/iesanmartin/portal-core/internal/models"

// defaultCatalog returns the seeded library inventory. The list mirrors the
// printed catalog kept at the library desk.
func defaultCatalog() []*models.LibraryBook {
	return []*models.LibraryBook{
		{Code: "LIB-001", Title: "Tradiciones peruanas", Author: "Ricardo Palma", Category: "Literatura", Available: true},
		{Code: "LIB-002", Title: "Los ríos profundos", Author: "José María Arguedas", Category: "Literatura", Available: true},
		{Code: "LIB-003", Title: "La palabra del mudo", Author: "Julio Ramón Ribeyro", Category: "Literatura", Available: true},
		{Code: "LIB-004", Title: "El mundo es ancho y ajeno", Author: "Ciro Alegría", Category: "Literatura", Available: true},
		{Code: "LIB-005", Title: "Paco Yunque", Author: "César Vallejo", Category: "Literatura", Available: true},
		{Code: "LIB-006", Title: "Matemática 4° de secundaria", Author: "Ministerio de Educación", Category: "Textos escolares", Available: true},
		{Code: "LIB-007", Title: "Comunicación 3° de secundaria", Author: "Ministerio de Educación", Category: "Textos escolares", Available: true},
		{Code: "LIB-008", Title: "Historia del Perú", Author: "Jorge Basadre", Category: "Historia", Available: true},
		{Code: "LIB-009", Title: "Atlas geográfico del Perú", Author: "Instituto Geográfico Nacional", Category: "Consulta", Available: true},
		{Code: "LIB-010", Title: "Cuentos andinos", Author: "Enrique López Albújar", Category: "Literatura", Available: true},
	}
}
