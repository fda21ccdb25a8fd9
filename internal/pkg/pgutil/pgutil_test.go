package pgutil

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStringToPgText(t *testing.T) {
	require.False(t, StringToPgText(nil).Valid)

	s := "hello"
	pg := StringToPgText(&s)
	require.True(t, pg.Valid)
	require.Equal(t, "hello", pg.String)

	empty := ""
	pg = StringToPgText(&empty)
	require.True(t, pg.Valid)
	require.Equal(t, "", pg.String)
}

func TestPgTextToString(t *testing.T) {
	require.Nil(t, PgTextToString(pgtype.Text{}))

	got := PgTextToString(pgtype.Text{String: "hello", Valid: true})
	require.NotNil(t, got)
	require.Equal(t, "hello", *got)
}

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "25", "5.5", "-3.75", "0.001"} {
		d := decimal.RequireFromString(s)
		got := PgNumericToDecimal(DecimalToPgNumeric(d))
		require.True(t, d.Equal(got), "round trip of %s gave %s", s, got)
	}
}

func TestPgNumericToDecimalInvalid(t *testing.T) {
	require.True(t, PgNumericToDecimal(pgtype.Numeric{}).IsZero())
	require.True(t, PgNumericToDecimal(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
}
