package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/matex-app/matex-api/internal/application/dto"
	"github.com/matex-app/matex-api/internal/infrastructure/export"
)

func sampleTables() []dto.Table {
	return []dto.Table{
		{
			Title:   "Resumen",
			Columns: []string{"Ventas Netas", "Num Ventas", "Ticket Promedio"},
			Rows:    [][]string{{"1000", "4", "250"}},
		},
		{
			Title:   "Top Cantidad",
			Columns: []string{"Producto", "Cantidad"},
			Rows:    [][]string{{"Widget", "7"}, {"Gadget", "3"}},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Excel
// ──────────────────────────────────────────────────────────────────────────────

// El libro lleva una hoja por sección, con los encabezados en la fila 1 y
// los datos debajo.
func TestWriteExcel_UnaHojaPorSeccion(t *testing.T) {
	data, err := export.WriteExcel(sampleTables())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumen", "Top Cantidad"}, f.GetSheetList())

	cell, err := f.GetCellValue("Resumen", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Ventas Netas", cell)

	cell, err = f.GetCellValue("Resumen", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1000", cell)

	cell, err = f.GetCellValue("Top Cantidad", "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", cell)
}

func TestWriteExcel_TruncaNombresDeHoja(t *testing.T) {
	long := "Sección con un título larguísimo que excede el límite de Excel"
	data, err := export.WriteExcel([]dto.Table{{Title: long, Columns: []string{"A"}}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.LessOrEqual(t, len(sheets[0]), 31)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestWritePDF_GeneraDocumento(t *testing.T) {
	data, err := export.WritePDF(sampleTables())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el archivo empieza con la firma PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// WriteFile
// ──────────────────────────────────────────────────────────────────────────────

func TestWriteFile_FormatoNoSoportado(t *testing.T) {
	err := export.WriteFile("csv", filepath.Join(t.TempDir(), "salida.csv"), sampleTables())
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

// WriteFile crea los directorios intermedios que falten.
func TestWriteFile_CreaDirectorios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "reporte.xlsx")
	require.NoError(t, export.WriteFile(export.FormatExcel, path, sampleTables()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportError_ConservaLaCausa(t *testing.T) {
	cause := os.ErrPermission
	err := &export.ExportError{Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "exportación fallida")
}
