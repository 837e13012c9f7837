package securefin

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount as rupees with Indian digit grouping: the
// last three digits form one group, every group above that has two
// (₹12,34,567). Whole amounts drop the paise; fractional amounts keep two
// places. Negative amounts render as -₹X.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Round to paise first so the whole/fraction split cannot disagree
	amount = math.Round(amount*100) / 100

	whole := math.Trunc(amount)
	fraction := amount - whole

	text := groupIndian(strconv.FormatFloat(whole, 'f', 0, 64))
	if fraction >= 0.005 {
		text += fmt.Sprintf("%.2f", fraction)[1:]
	}

	if negative {
		return "-₹" + text
	}
	return "₹" + text
}

// groupIndian inserts en-IN style separators into a bare digit string.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
