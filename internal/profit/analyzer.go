package profit

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/logger"
)

// Source is the cache-aside surface the analyzer reads from
type Source interface {
	ListingSource
	Item(ctx context.Context, id int) (*domain.Item, error)
	CraftedItemsUsing(ctx context.Context, itemID int) ([]domain.Item, error)
	Listing(ctx context.Context, itemID int) (*domain.Listing, error)
}

// Entry is one crafted item priced against its ingredients
type Entry struct {
	Item          domain.Item `json:"item"`
	BaseAmount    int         `json:"base_amount"`
	HighestBuy    int         `json:"highest_buy"`
	SellAfterFees int         `json:"sell_after_fees"`
	Cost          int         `json:"cost"`
	Feasible      bool        `json:"feasible"`
	Profit        int         `json:"profit"`
	ValuePerBase  float64     `json:"value_per_base"`
}

// Report ranks the crafted items that consume a base item
type Report struct {
	Base        domain.Item     `json:"base"`
	BaseListing *domain.Listing `json:"base_listing,omitempty"`
	Entries     []Entry         `json:"entries"`
	// Unlisted counts crafted items skipped for lack of an order book
	Unlisted int `json:"unlisted"`
}

// Profitable returns the entries whose after-fee value per base unit beats
// selling the base item outright
func (r Report) Profitable() []Entry {
	threshold := 0
	if r.BaseListing != nil {
		threshold = r.BaseListing.HighestBuyOrder
	}

	out := []Entry{}
	for _, e := range r.Entries {
		if e.ValuePerBase > float64(threshold) {
			out = append(out, e)
		}
	}
	return out
}

// WriteText renders the profitable entries for a terminal
func (r Report) WriteText(w io.Writer) error {
	return r.writeText(w, r.Profitable())
}

// WriteAllText renders every priced entry, profitable or not
func (r Report) WriteAllText(w io.Writer) error {
	return r.writeText(w, r.Entries)
}

func (r Report) writeText(w io.Writer, entries []Entry) error {
	if r.BaseListing == nil {
		if _, err := fmt.Fprintf(w, "%s (%d): %s\n", r.Base.Name, r.Base.ID, TextNoListing); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s (%d) buy %s / sell %s\n", r.Base.Name, r.Base.ID,
			FormatCoins(r.BaseListing.HighestBuyOrder), FormatCoins(r.BaseListing.LowestSellOrder)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d crafted items priced, %d without listings\n\n", len(r.Entries), r.Unlisted); err != nil {
		return err
	}

	for _, e := range entries {
		profit := TextInfeasible
		if e.Feasible {
			profit = FormatCoins(e.Profit)
		}
		_, err := fmt.Fprintf(w, "%s sells for %s per base item after fees (%d needed, %s total, cost %s, profit %s)\n",
			e.Item.Name, FormatCoins(int(e.ValuePerBase)), e.BaseAmount,
			FormatCoins(e.SellAfterFees), FormatCost(e.Cost), profit)
		if err != nil {
			return err
		}
	}
	return nil
}

// Analyzer builds profitability reports
type Analyzer struct {
	source Source
	calc   *Calculator
}

// NewAnalyzer creates an analyzer reading through source
func NewAnalyzer(source Source, calc *Calculator) *Analyzer {
	return &Analyzer{source: source, calc: calc}
}

// Analyze prices every crafted item that consumes baseItemID. Returns
// ErrItemNotFound when the base item is unknown.
func (a *Analyzer) Analyze(ctx context.Context, baseItemID int) (*Report, error) {
	log := logger.FromContext(ctx)

	base, err := a.source.Item(ctx, baseItemID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, baseItemID)
	}

	crafted, err := a.source.CraftedItemsUsing(ctx, baseItemID)
	if err != nil {
		return nil, err
	}

	baseListing, err := a.source.Listing(ctx, baseItemID)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(crafted))
	for _, c := range crafted {
		ids = append(ids, c.ID)
	}
	listings, err := a.source.Listings(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.Listing, len(listings))
	for _, l := range listings {
		byID[l.ItemID] = l
	}

	report := &Report{Base: *base, BaseListing: baseListing, Entries: []Entry{}}
	for _, c := range crafted {
		listing, ok := byID[c.ID]
		if !ok || c.Recipe == nil {
			report.Unlisted++
			continue
		}

		entry, err := a.price(ctx, c, listing, baseItemID)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, entry)
	}

	slices.SortStableFunc(report.Entries, func(x, y Entry) int {
		return cmp.Compare(y.ValuePerBase, x.ValuePerBase)
	})

	log.Info(LogMsgReportBuilt, "base_item_id", baseItemID,
		"crafted", len(crafted), "priced", len(report.Entries), "unlisted", report.Unlisted)
	return report, nil
}

func (a *Analyzer) price(ctx context.Context, item domain.Item, listing domain.Listing, baseItemID int) (Entry, error) {
	cost, err := a.calc.IngredientCost(ctx, *item.Recipe)
	if err != nil {
		return Entry{}, err
	}

	afterFees := a.calc.WithFees(listing).HighestBuyOrder
	entry := Entry{
		Item:          item,
		BaseAmount:    item.Recipe.AmountOf(baseItemID),
		HighestBuy:    listing.HighestBuyOrder,
		SellAfterFees: afterFees,
		Cost:          cost,
		Feasible:      cost != InfeasibleCost,
	}
	if entry.Feasible {
		entry.Profit = afterFees - cost
	}
	if entry.BaseAmount > 0 {
		entry.ValuePerBase = float64(afterFees) / float64(entry.BaseAmount)
	}
	return entry, nil
}
