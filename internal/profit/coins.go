package profit

import (
	"strconv"
	"strings"
)

// FormatCoins renders a copper amount as gold, silver and copper, omitting
// zero denominations: 10101 -> "1g1s1c", -101 -> "-1s1c", 0 -> "0c".
func FormatCoins(amount int) string {
	if amount == 0 {
		return "0" + SuffixCopper
	}

	var b strings.Builder
	// Work in uint64 so math.MinInt still negates
	magnitude := uint64(amount)
	if amount < 0 {
		b.WriteByte('-')
		magnitude = -magnitude
	}

	gold := magnitude / CopperPerGold
	silver := magnitude % CopperPerGold / CopperPerSilver
	copper := magnitude % CopperPerSilver

	for _, part := range []struct {
		value  uint64
		suffix string
	}{{gold, SuffixGold}, {silver, SuffixSilver}, {copper, SuffixCopper}} {
		if part.value == 0 {
			continue
		}
		b.WriteString(strconv.FormatUint(part.value, 10))
		b.WriteString(part.suffix)
	}
	return b.String()
}

// FormatCost renders a recipe cost, spelling out the infeasible sentinel
func FormatCost(cost int) string {
	if cost == InfeasibleCost {
		return TextInfeasible
	}
	return FormatCoins(cost)
}
