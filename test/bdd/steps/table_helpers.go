package steps

import (
	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]

	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// tableToFieldMap converts a "field | value" table into a map keyed by field
func tableToFieldMap(table *godog.Table) map[string]string {
	values := make(map[string]string)
	if len(table.Rows) == 0 {
		return values
	}
	for _, row := range table.Rows[1:] {
		values[getCellValueFromTable(table, row, "field")] = getCellValueFromTable(table, row, "value")
	}
	return values
}
