package postgres

import "strconv"

// Money columns are numeric(10,2) scanned as text. Conversion happens at the
// repository boundary so the domain only ever sees float64.

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseMoney(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}
