package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TradingPost_Go/internal/domain"
	"github.com/osse101/TradingPost_Go/internal/logger"
	"github.com/osse101/TradingPost_Go/internal/profit"
)

// MarketService is the cache-aside surface exposed over HTTP
type MarketService interface {
	Item(ctx context.Context, id int) (*domain.Item, error)
	Listing(ctx context.Context, itemID int) (*domain.Listing, error)
	Listings(ctx context.Context, ids []int) ([]domain.Listing, error)
	CraftedItemsUsing(ctx context.Context, itemID int) ([]domain.Item, error)
	ReconcilePlaceholders(ctx context.Context) (int, error)
}

// ProfitAnalyzer builds profitability reports for a base item
type ProfitAnalyzer interface {
	Analyze(ctx context.Context, baseItemID int) (*profit.Report, error)
}

// ProfitabilityResponse is a report plus the entries worth crafting
type ProfitabilityResponse struct {
	*profit.Report
	Profitable []profit.Entry `json:"profitable"`
}

// ReconcileResponse reports how many placeholders were resolved
type ReconcileResponse struct {
	Resolved int `json:"resolved"`
}

// listingsQuery is the validated form of GET /listings?ids=
type listingsQuery struct {
	IDs []int `validate:"required,min=1,max=200,dive,min=1"`
}

// MarketHandler serves item, listing and profitability lookups
type MarketHandler struct {
	market   MarketService
	analyzer ProfitAnalyzer
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(market MarketService, analyzer ProfitAnalyzer) *MarketHandler {
	return &MarketHandler{market: market, analyzer: analyzer}
}

// parseItemID reads the {id} URL parameter. On failure the 400 response has
// already been written and ok is false.
func parseItemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, URLParamID))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return 0, false
	}
	return id, true
}

// parseIDList parses a comma separated list of item ids
func parseIDList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInput, p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (h *MarketHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapMarketError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgMarketRequestFail, "op", op, "error", err)
	} else {
		log.Warn(LogMsgMarketRequestFail, "op", op, "error", err)
	}
	respondError(w, status, msg)
}

// HandleGetItem handles GET /api/v1/items/{id}
func (h *MarketHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.market.Item(r.Context(), id)
	if err != nil {
		h.fail(w, r, "item", err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleGetListing handles GET /api/v1/items/{id}/listing
func (h *MarketHandler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	listing, err := h.market.Listing(r.Context(), id)
	if err != nil {
		h.fail(w, r, "listing", err)
		return
	}
	if listing == nil {
		respondError(w, http.StatusNotFound, ErrMsgListingNotFound)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// HandleGetCrafted handles GET /api/v1/items/{id}/crafted
func (h *MarketHandler) HandleGetCrafted(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	items, err := h.market.CraftedItemsUsing(r.Context(), id)
	if err != nil {
		h.fail(w, r, "crafted", err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleGetProfitability handles GET /api/v1/items/{id}/profitability
func (h *MarketHandler) HandleGetProfitability(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), id)
	if err != nil {
		h.fail(w, r, "profitability", err)
		return
	}
	respondJSON(w, http.StatusOK, ProfitabilityResponse{
		Report:     report,
		Profitable: report.Profitable(),
	})
}

// HandleGetListings handles GET /api/v1/listings?ids=1,2,3
func (h *MarketHandler) HandleGetListings(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(QueryParamIDs)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, QueryParamIDs))
		return
	}

	ids, err := parseIDList(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIDList)
		return
	}

	query := listingsQuery{IDs: ids}
	if err := GetValidator().ValidateStruct(query); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidIDList,
			Fields: FormatValidationError(err),
		})
		return
	}

	listings, err := h.market.Listings(r.Context(), query.IDs)
	if err != nil {
		h.fail(w, r, "listings", err)
		return
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	respondJSON(w, http.StatusOK, listings)
}

// HandleReconcile handles POST /api/v1/admin/reconcile
func (h *MarketHandler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.market.ReconcilePlaceholders(r.Context())
	if err != nil {
		h.fail(w, r, "reconcile", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgReconciled, "resolved", resolved)
	respondJSON(w, http.StatusOK, ReconcileResponse{Resolved: resolved})
}
