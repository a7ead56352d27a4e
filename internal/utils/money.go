package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRiyal renders amount with SAR prefix and thousand separators.
func FormatRiyal(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%sSAR %s.%02d", sign, formatThousand(whole), cents)
}

// ConvertFromRiyal mengubah nominal SAR ke mata uang lokal memakai kurs
// riyal-rates organisasi. Kurs <= 0 dianggap 1:1.
func ConvertFromRiyal(amount, rate float64) float64 {
	if rate <= 0 {
		return amount
	}
	return amount * rate
}

// ParseAmount parses "1.000,50", "1,000.50" or plain "1000.5" into float.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
