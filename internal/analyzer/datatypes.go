package analyzer

import (
	"strconv"
	"strings"

	"github.com/msto63/argspect/internal/argument"
)

// DataType labels the inferred scalar type of a token
type DataType string

const (
	TypeInteger DataType = "integer"
	TypeDecimal DataType = "decimal"
	TypeBoolean DataType = "boolean"
	TypeString  DataType = "string"
	TypeNone    DataType = "" // token was skipped (flag-like)
)

// DataTypes counts the inferred scalar type of each non-flag token. All four
// counts are always present; suppressing zero counts is a display concern.
type DataTypes struct {
	Integers int
	Decimals int
	Booleans int
	Strings  int
}

// detectTypes classifies every token that does not start with the short
// prefix marker. The check is literally a "-" prefix test, so long flags and
// options are skipped as well.
func detectTypes(args []string) DataTypes {
	var dt DataTypes

	for _, arg := range args {
		switch typeOf(arg) {
		case TypeInteger:
			dt.Integers++
		case TypeDecimal:
			dt.Decimals++
		case TypeBoolean:
			dt.Booleans++
		case TypeString:
			dt.Strings++
		}
	}

	return dt
}

// typeOf infers the scalar type of a single token, or TypeNone for skipped
// flag-like tokens. The fallback order is fixed: integer, decimal, boolean,
// string. Every non-skipped token lands in exactly one type.
func typeOf(arg string) DataType {
	if strings.HasPrefix(arg, argument.ShortPrefix) {
		return TypeNone
	}

	switch {
	case isInteger(arg):
		return TypeInteger
	case isDecimal(arg):
		return TypeDecimal
	case isBoolean(arg):
		return TypeBoolean
	default:
		return TypeString
	}
}

// isInteger checks for a signed base-10 integer within the 32-bit range
func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 32)
	return err == nil
}

// isDecimal checks for any token parseable as a floating-point value
func isDecimal(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolean(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}
