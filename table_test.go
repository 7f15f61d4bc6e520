package sqlconnect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable__Helpers(t *testing.T) {
	tbl := &Table{
		Name:   "Orders",
		Schema: "dbo",
		Columns: []Column{
			{Name: "id", DataType: "integer", IsPrimary: true, OrdinalPos: 1},
			{Name: "placed_at", DataType: "timestamp", OrdinalPos: 2},
			{Name: "amount", DataType: "numeric", IsNullable: true, OrdinalPos: 3},
		},
	}

	require.Equal(t, "dbo.Orders", tbl.QualifiedName())
	require.EqualValues(t, []string{"id", "placed_at", "amount"}, tbl.ColumnNames())

	col, ok := tbl.Column("amount")
	require.True(t, ok)
	require.True(t, col.IsNullable)
	_, ok = tbl.Column("discount")
	require.False(t, ok)

	require.Equal(t, "table dbo.Orders (3 columns)", tbl.String())

	vw := &Table{Name: "MonthlyTotals", Schema: "reporting", IsView: true}
	require.Equal(t, "view reporting.MonthlyTotals (0 columns)", vw.String())
}
