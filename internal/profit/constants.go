package profit

import "math"

// DefaultFeePercent is the trading post's cut of every sale
const DefaultFeePercent = 15

// InfeasibleCost marks a recipe with at least one ingredient that cannot be bought
const InfeasibleCost = math.MaxInt

// Coin denominations in copper
const (
	CopperPerGold   = 10000
	CopperPerSilver = 100
)

// Coin suffixes
const (
	SuffixGold   = "g"
	SuffixSilver = "s"
	SuffixCopper = "c"
)

// Report text
const (
	TextInfeasible = "infeasible"
	TextNoListing  = "no listing"
)

// Log messages
const (
	LogMsgReportBuilt = "Profitability report built"
)
