package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tatianab/budget-survival/internal/models"
)

// DescribeChoice renders the result screen text for a choice that has
// already been applied to p.
func DescribeChoice(c models.Choice, p *models.PlayerState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DECYZJA: %s\n\n", c.Label)

	switch {
	case c.Cost > 0:
		fmt.Fprintf(&b, "- Koszt: %s PLN\n", formatAmount(c.Cost))
	case c.Cost < 0:
		fmt.Fprintf(&b, "+ Zysk: %s PLN\n", formatAmount(math.Abs(c.Cost)))
	}
	writeStatChange(&b, "Szczęście", c.HappinessDelta)
	writeStatChange(&b, "Komfort", c.ComfortDelta)

	if c.FlagToAdd != "" && p.Inventory.Has(c.FlagToAdd) {
		fmt.Fprintf(&b, "\nOTRZYMANO: %s", c.FlagToAdd)
	}
	if c.FlagToRemove != "" && !p.Inventory.Has(c.FlagToRemove) {
		fmt.Fprintf(&b, "\nUTRACONO: %s", c.FlagToRemove)
	}
	if p.Budget < 0 {
		b.WriteString("\nUWAGA: Debet!")
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeStatChange(b *strings.Builder, name string, delta int) {
	switch {
	case delta > 0:
		fmt.Fprintf(b, "+ %d %s\n", delta, name)
	case delta < 0:
		fmt.Fprintf(b, "- %d %s\n", -delta, name)
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
