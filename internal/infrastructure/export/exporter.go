// Package export escribe tablas planas a archivos Excel o PDF. Los
// exportadores no conocen el dominio: reciben secciones tabulares ya
// formateadas como texto.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matex-app/matex-api/internal/application/dto"
)

// Formatos de exportación soportados.
const (
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// ErrUnsupportedFormat formato de exportación desconocido.
var ErrUnsupportedFormat = errors.New("formato de exportación no soportado")

// ExportError envuelve cualquier falla de exportación (E/S, generación del
// documento) sin perder la causa.
type ExportError struct {
	Cause error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exportación fallida: %v", e.Cause)
}

func (e *ExportError) Unwrap() error { return e.Cause }

// WriteFile exporta las secciones al path indicado en el formato pedido,
// creando los directorios intermedios si hace falta.
func WriteFile(format, path string, tables []dto.Table) error {
	var data []byte
	var err error
	switch format {
	case FormatExcel:
		data, err = WriteExcel(tables)
	case FormatPDF:
		data, err = WritePDF(tables)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &ExportError{Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &ExportError{Cause: err}
	}
	return nil
}
