package util

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a decimal price cell. ok is false when the cell is
// empty or does not parse; the caller treats both as an absent price.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseStock parses a stock-count cell. Empty or malformed cells count
// as zero; negative counts are kept (callers clamp them as needed).
func ParseStock(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ClampQty smooths a stock count into an order quantity: negative
// counts are a data-quality artefact and clamp to zero.
func ClampQty(stock int) int {
	if stock < 0 {
		return 0
	}
	return stock
}

// StockFlag clamps a stock count into the importer's 0/1 in-stock flag.
func StockFlag(stock int) int {
	if stock > 0 {
		return 1
	}
	return 0
}
