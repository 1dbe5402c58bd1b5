package view

import (
	"github.com/scan-track/fridge-service/internal/models"
)

// CandidatePageSize is the fixed page size for product lookup results.
const CandidatePageSize = 10

// DedupeCandidates collapses lookup results into a unique list, preserving
// first-seen order. Candidates with a non-empty code are unique by code;
// candidates without one are unique by name. The two identity spaces are
// independent: a code-less candidate is never deduplicated against a
// code-bearing one even when names coincide, matching the source lookup's
// behavior.
func DedupeCandidates(results []models.ProductCandidate) []models.ProductCandidate {
	seenCodes := make(map[string]struct{})
	seenNames := make(map[string]struct{})

	out := make([]models.ProductCandidate, 0, len(results))
	for _, cand := range results {
		if cand.Code != "" {
			if _, dup := seenCodes[cand.Code]; dup {
				continue
			}
			seenCodes[cand.Code] = struct{}{}
		} else {
			if _, dup := seenNames[cand.Name]; dup {
				continue
			}
			seenNames[cand.Name] = struct{}{}
		}
		out = append(out, cand)
	}

	return out
}

// Page is one display page of deduplicated candidates.
type Page struct {
	Results    []models.ProductCandidate
	Number     int
	TotalPages int
	Total      int
}

// Paginate slices candidates into the fixed-size page addressed by the
// 1-based page number, clamping it into [1, totalPages]. An empty list
// yields a single empty page.
func Paginate(candidates []models.ProductCandidate, page int) Page {
	total := len(candidates)
	totalPages := (total + CandidatePageSize - 1) / CandidatePageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * CandidatePageSize
	end := start + CandidatePageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Results:    candidates[start:end],
		Number:     page,
		TotalPages: totalPages,
		Total:      total,
	}
}
