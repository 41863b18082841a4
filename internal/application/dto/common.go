package dto

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Table tabla plana lista para exportar: el núcleo entrega a los
// exportadores datos tabulares simples (título de sección, encabezados en
// Title Case y filas ya formateadas como texto).
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}
