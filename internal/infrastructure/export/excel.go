package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/matex-app/matex-api/internal/application/dto"
)

// maxSheetName límite de Excel para nombres de hoja.
const maxSheetName = 31

// WriteExcel genera un libro con una hoja por sección: encabezados en
// negrita en la fila 1, una fila por registro debajo.
func WriteExcel(tables []dto.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, &ExportError{Cause: err}
	}

	for i, t := range tables {
		name := sheetName(t.Title)
		if i == 0 {
			// La primera sección reutiliza la hoja por defecto.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, &ExportError{Cause: err}
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, &ExportError{Cause: err}
			}
		}

		headers := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			headers[j] = c
		}
		if err := f.SetSheetRow(name, "A1", &headers); err != nil {
			return nil, &ExportError{Cause: err}
		}
		endCol, err := excelize.ColumnNumberToName(len(t.Columns))
		if err != nil {
			return nil, &ExportError{Cause: err}
		}
		if err := f.SetCellStyle(name, "A1", endCol+"1", headerStyle); err != nil {
			return nil, &ExportError{Cause: err}
		}

		for r, rowData := range t.Rows {
			cells := make([]interface{}, len(rowData))
			for j, v := range rowData {
				cells[j] = v
			}
			addr, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, &ExportError{Cause: err}
			}
			if err := f.SetSheetRow(name, addr, &cells); err != nil {
				return nil, &ExportError{Cause: err}
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &ExportError{Cause: err}
	}
	return buf.Bytes(), nil
}

func sheetName(title string) string {
	if len(title) > maxSheetName {
		return title[:maxSheetName]
	}
	return title
}
