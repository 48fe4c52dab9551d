package repository

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// NumericToFloat64 converts a NUMERIC column value to float64.
func NumericToFloat64(n pgtype.Numeric) (float64, error) {
	val, err := n.Value()
	if err != nil {
		return 0, err
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unexpected numeric type: %T", v)
	}
}

// Float64ToNumeric converts a float64 price to its NUMERIC representation.
func Float64ToNumeric(f float64) (pgtype.Numeric, error) {
	s := strconv.FormatFloat(f, 'g', -1, 64)

	n := pgtype.Numeric{}
	err := n.Scan(s)
	if err != nil {
		return pgtype.Numeric{}, fmt.Errorf("scan error: %w", err)
	}
	return n, nil
}
