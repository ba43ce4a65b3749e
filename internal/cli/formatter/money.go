package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLakhsFromRupees renders a rupee amount in lakhs, switching to
// crores at 100 lakhs: 2_500_000 → "₹ 25 Lakhs", 10_000_000 → "₹ 1.00 Cr".
func FormatLakhsFromRupees(rupees int) string {
	lakhs := float64(rupees) / 100_000
	return FormatLakhs(lakhs)
}

// FormatLakhs renders an amount already expressed in lakhs.
func FormatLakhs(lakhs float64) string {
	if lakhs >= 100 {
		return fmt.Sprintf("₹ %.2f Cr", lakhs/100)
	}
	return fmt.Sprintf("₹ %s Lakhs", trimZeros(lakhs))
}

// FormatGap renders a funding shortfall, or a fits-budget marker when the
// gap is zero.
func FormatGap(lakhs float64) string {
	if lakhs <= 0 {
		return StyleGreen.Render("fits budget")
	}
	return StyleRed.Render(fmt.Sprintf("short %s", FormatLakhs(lakhs)))
}

func trimZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
