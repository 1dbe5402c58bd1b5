// Package view computes the displayable inventory view: a deterministic
// filter/sort pipeline over a snapshot of inventory records, plus
// deduplication and pagination of product lookup candidates. Everything
// here is pure; malformed data degrades to exclusion and is reported
// through Stats instead of errors.
package view

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scan-track/fridge-service/internal/dates"
	"github.com/scan-track/fridge-service/internal/models"
)

// FilterOption selects items relative to the current local day.
type FilterOption string

const (
	FilterAll       FilterOption = "all"
	FilterExpired   FilterOption = "expired"
	FilterUnexpired FilterOption = "unexpired"
)

// ParseFilterOption maps a query parameter to a FilterOption, defaulting
// to FilterAll for empty input.
func ParseFilterOption(s string) (FilterOption, bool) {
	switch FilterOption(s) {
	case FilterAll, FilterExpired, FilterUnexpired:
		return FilterOption(s), true
	case "":
		return FilterAll, true
	}
	return FilterAll, false
}

// SortOption orders the resulting view.
type SortOption string

const (
	SortExpiryAscending  SortOption = "expiry_ascending"
	SortCreatedDesc      SortOption = "created_descending"
	SortCreatedAscending SortOption = "created_ascending"
	SortNameAscending    SortOption = "name_ascending"
)

// ParseSortOption maps a query parameter to a SortOption, defaulting to
// SortExpiryAscending for empty input.
func ParseSortOption(s string) (SortOption, bool) {
	switch SortOption(s) {
	case SortExpiryAscending, SortCreatedDesc, SortCreatedAscending, SortNameAscending:
		return SortOption(s), true
	case "":
		return SortExpiryAscending, true
	}
	return SortExpiryAscending, false
}

// Params are the user-selected view parameters for one recomputation.
// RangeStart/RangeEnd are inclusive YYYY-MM-DD bounds; either may be empty.
type Params struct {
	Search     string
	RangeStart string
	RangeEnd   string
	Filter     FilterOption
	Sort       SortOption
}

// DefaultParams returns the view parameters used when the caller supplies none.
func DefaultParams() Params {
	return Params{Filter: FilterAll, Sort: SortExpiryAscending}
}

// Stats carries diagnostics out of a computation so the caller can log and
// count data-quality problems without the pipeline doing I/O.
type Stats struct {
	// DegradedDates counts records excluded from a date-dependent stage
	// because their expiry date did not parse.
	DegradedDates int
	// RangeSkipped is set when both range bounds parsed but start > end,
	// in which case the range stage is a deliberate no-op.
	RangeSkipped bool
	// InvalidBounds counts range bounds that were ignored because they
	// did not parse.
	InvalidBounds int
}

// ComputeView runs the fixed pipeline over a snapshot of records:
// status gate, text search, date range, expired/unexpired filter, stable
// sort. The stage order is semantically significant; later stages assume
// the exclusions of earlier ones. The input slice is not modified.
func ComputeView(records []models.InventoryItem, p Params, now time.Time) ([]models.InventoryItem, Stats) {
	var stats Stats

	out := make([]models.InventoryItem, 0, len(records))
	for _, rec := range records {
		if rec.Status == models.StatusActive {
			out = append(out, rec)
		}
	}

	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		filtered := out[:0]
		for _, rec := range out {
			if strings.Contains(strings.ToLower(rec.Name), needle) {
				filtered = append(filtered, rec)
			}
		}
		out = filtered
	}

	out = applyDateRange(out, p, &stats)
	out = applyExpiryFilter(out, p.Filter, now, &stats)
	sortItems(out, p.Sort)

	return out, stats
}

// applyDateRange keeps records whose expiry date falls inside the inclusive
// [start, end] day range. An unparseable bound is ignored. When both bounds
// parse and start > end the whole stage is skipped: an inverted selection
// in the UI is treated as "no range chosen", never silently swapped.
func applyDateRange(items []models.InventoryItem, p Params, stats *Stats) []models.InventoryItem {
	if p.RangeStart == "" && p.RangeEnd == "" {
		return items
	}

	var start, end time.Time
	hasStart, hasEnd := false, false

	if p.RangeStart != "" {
		if t, err := dates.ParseLocal(p.RangeStart); err == nil {
			start = t
			hasStart = true
		} else {
			stats.InvalidBounds++
		}
	}
	if p.RangeEnd != "" {
		if t, err := dates.ParseLocal(p.RangeEnd); err == nil {
			end = dates.EndOfDay(t)
			hasEnd = true
		} else {
			stats.InvalidBounds++
		}
	}

	if !hasStart && !hasEnd {
		return items
	}

	if hasStart && hasEnd && start.After(end) {
		stats.RangeSkipped = true
		return items
	}

	filtered := items[:0]
	for _, rec := range items {
		expiry, err := dates.ParseLocal(rec.ExpiryDate)
		if err != nil {
			stats.DegradedDates++
			continue
		}
		if hasStart && expiry.Before(start) {
			continue
		}
		if hasEnd && expiry.After(end) {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered
}

// applyExpiryFilter keeps records expired (strictly before today's local
// midnight) or unexpired (today or later). Records whose expiry date does
// not parse are excluded from both: an unknown date never matches a
// date-dependent filter.
func applyExpiryFilter(items []models.InventoryItem, filter FilterOption, now time.Time, stats *Stats) []models.InventoryItem {
	if filter == FilterAll || filter == "" {
		return items
	}

	today := dates.StartOfDay(now)
	filtered := items[:0]
	for _, rec := range items {
		expiry, err := dates.ParseLocal(rec.ExpiryDate)
		if err != nil {
			stats.DegradedDates++
			continue
		}

		expired := expiry.Before(today)
		if (filter == FilterExpired && expired) || (filter == FilterUnexpired && !expired) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// sortItems orders items in place with a stable sort. Records whose date or
// timestamp fails to parse sort after all valid ones and keep their input
// order among themselves.
func sortItems(items []models.InventoryItem, opt SortOption) {
	switch opt {
	case SortExpiryAscending, "":
		keys := parseKeys(items, func(it models.InventoryItem) (time.Time, error) {
			return dates.ParseLocal(it.ExpiryDate)
		})
		sort.SliceStable(items, func(i, j int) bool {
			return lessByTime(keys[i], keys[j], false)
		})

	case SortCreatedAscending, SortCreatedDesc:
		keys := parseKeys(items, func(it models.InventoryItem) (time.Time, error) {
			return dates.ParseTimestamp(it.CreatedAt)
		})
		desc := opt == SortCreatedDesc
		sort.SliceStable(items, func(i, j int) bool {
			return lessByTime(keys[i], keys[j], desc)
		})

	case SortNameAscending:
		// Names in this product are Japanese; collate accordingly rather
		// than by code point.
		c := collate.New(language.Japanese)
		sort.SliceStable(items, func(i, j int) bool {
			return c.CompareString(items[i].Name, items[j].Name) < 0
		})
	}
}

type timeKey struct {
	t     time.Time
	valid bool
}

func parseKeys(items []models.InventoryItem, parse func(models.InventoryItem) (time.Time, error)) []timeKey {
	keys := make([]timeKey, len(items))
	for i, it := range items {
		if t, err := parse(it); err == nil {
			keys[i] = timeKey{t: t, valid: true}
		}
	}
	return keys
}

// lessByTime orders valid keys by time (direction chosen by desc) and pushes
// invalid keys to the end regardless of direction. Two invalid keys compare
// equal so the stable sort preserves their input order.
func lessByTime(a, b timeKey, desc bool) bool {
	if a.valid != b.valid {
		return a.valid
	}
	if !a.valid {
		return false
	}
	if desc {
		return b.t.Before(a.t)
	}
	return a.t.Before(b.t)
}
