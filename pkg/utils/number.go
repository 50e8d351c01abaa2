package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseDecimal aceita ponto ou vírgula como separador decimal.
// Com os dois presentes, o último é o decimal e o outro separa milhares (1.234,56 e 1,234.56).
// Um separador único que aparece uma vez é decimal (12,5 e 1,234); repetido, separa milhares (1.234.567).
func ParseDecimal(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Zero, fmt.Errorf("empty number")
	}

	sign := ""
	if v[0] == '-' || v[0] == '+' {
		sign, v = v[:1], v[1:]
	}

	lastComma := strings.LastIndexByte(v, ',')
	lastDot := strings.LastIndexByte(v, '.')

	var decimalSep, groupSep byte
	switch {
	case lastComma >= 0 && lastDot >= 0:
		decimalSep, groupSep = ',', '.'
		if lastDot > lastComma {
			decimalSep, groupSep = '.', ','
		}
	case lastComma >= 0:
		decimalSep, groupSep = ',', ','
		if strings.Count(v, ",") > 1 {
			decimalSep = 0
		}
	case lastDot >= 0:
		decimalSep, groupSep = '.', '.'
		if strings.Count(v, ".") > 1 {
			decimalSep = 0
		}
	}

	intPart, fracPart := v, ""
	if decimalSep != 0 {
		i := strings.LastIndexByte(v, decimalSep)
		intPart, fracPart = v[:i], v[i+1:]
		if fracPart == "" {
			return decimal.Zero, fmt.Errorf("malformed number %q", value)
		}
	}

	digits, err := ungroup(intPart, groupSep)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed number %q: %w", value, err)
	}

	normalized := sign + digits
	if fracPart != "" {
		normalized += "." + fracPart
	}

	return decimal.NewFromString(normalized)
}

// ungroup remove o separador de milhares, exigindo grupos de três dígitos após o primeiro
func ungroup(intPart string, groupSep byte) (string, error) {
	if strings.ContainsAny(intPart, ",.") && (groupSep == 0 || strings.ContainsRune(intPart, rune(otherSep(groupSep)))) {
		return "", fmt.Errorf("mixed separators")
	}
	if groupSep == 0 || !strings.ContainsRune(intPart, rune(groupSep)) {
		return intPart, nil
	}

	groups := strings.Split(intPart, string(groupSep))
	if len(groups[0]) < 1 || len(groups[0]) > 3 {
		return "", fmt.Errorf("invalid thousands group %q", groups[0])
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", fmt.Errorf("invalid thousands group %q", g)
		}
	}
	return strings.Join(groups, ""), nil
}

func otherSep(sep byte) byte {
	if sep == ',' {
		return '.'
	}
	return ','
}
