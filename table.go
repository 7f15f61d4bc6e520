package sqlconnect

import (
	"fmt"

	"github.com/samber/lo"
)

// Column describes one column of a reflected table or view, as reported by
// the backend's information_schema.
type Column struct {
	Name       string
	DataType   string
	IsNullable bool
	IsPrimary  bool
	Default    string
	OrdinalPos int
}

// Table is the structured representation of one reflected table or view.
// It is metadata only; query execution stays with the underlying driver.
type Table struct {
	Name    string
	Schema  string
	IsView  bool
	Columns []Column
}

// QualifiedName returns the schema-qualified object name.
func (t *Table) QualifiedName() string {
	return t.Schema + "." + t.Name
}

// ColumnNames returns the column names in ordinal order.
func (t *Table) ColumnNames() []string {
	return lo.Map(t.Columns, func(c Column, _ int) string {
		return c.Name
	})
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, bool) {
	return lo.Find(t.Columns, func(c Column) bool {
		return c.Name == name
	})
}

func (t *Table) String() string {
	kind := "table"
	if t.IsView {
		kind = "view"
	}
	return fmt.Sprintf("%s %s (%d columns)", kind, t.QualifiedName(), len(t.Columns))
}
