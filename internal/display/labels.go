package display

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cotisation-service/internal/domain"
)

// StatusLabel humanizes a contribution status for badge text,
// e.g. CONFIRMED -> "Confirmed".
func StatusLabel(s domain.ContributionStatus) string {
	return cases.Title(language.English).String(strings.ToLower(string(s)))
}

// DJF renders an amount with the displayed currency unit.
func DJF(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d DJF", int64(amount))
	}
	return fmt.Sprintf("%.2f DJF", amount)
}
