// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/models"
)

const unknownStrainType = "Unknown"

// insightsService implements [InsightsService] on top of the entry and
// purchase services. It holds no state of its own.
type insightsService struct {
	entries   EntryService
	purchases PurchaseService
	logger    *logger.Logger
}

func newInsightsService(entries EntryService, purchases PurchaseService, logger *logger.Logger) *insightsService {
	return &insightsService{
		entries:   entries,
		purchases: purchases,
		logger:    logger,
	}
}

// Summarize folds entries into totals and groups. Archive entries are
// skipped. Groups keep the order their key first appears in; TopStrains
// is ranked by grams with ties in that same order. A topN of zero or less
// ranks every strain.
func (s *insightsService) Summarize(entries []models.Entry, topN int) models.Summary {
	summary := models.Summary{
		ByMethod:   []models.GroupTotal{},
		ByType:     []models.GroupTotal{},
		ByStrain:   []models.GroupTotal{},
		TopStrains: []models.GroupTotal{},
	}

	byMethod := newGroups(&summary.ByMethod)
	byType := newGroups(&summary.ByType)
	byStrain := newGroups(&summary.ByStrain)

	for _, e := range entries {
		if e.IsArchive() {
			continue
		}

		var grams float64
		if e.WeightGrams != nil {
			grams = *e.WeightGrams
		}

		summary.Sessions++
		summary.TotalGrams += grams
		if e.EdibleMg != nil {
			summary.TotalEdibleMg += *e.EdibleMg
		}

		byMethod.add(string(e.Method), string(e.Method), grams)

		strainType := unknownStrainType
		if e.StrainType != nil && *e.StrainType != "" {
			strainType = string(*e.StrainType)
		}
		byType.add(strainType, strainType, grams)

		if e.StrainName != nil {
			if display, key := models.NormalizeName(*e.StrainName); key != "" {
				byStrain.add(key, display, grams)
			}
		}
	}

	summary.TopStrains = append(summary.TopStrains, summary.ByStrain...)
	sort.SliceStable(summary.TopStrains, func(i, j int) bool {
		return summary.TopStrains[i].Grams > summary.TopStrains[j].Grams
	})
	if topN > 0 && topN < len(summary.TopStrains) {
		summary.TopStrains = summary.TopStrains[:topN]
	}

	return summary
}

// groups accumulates totals into an ordered slice keyed by an index map.
type groups struct {
	out   *[]models.GroupTotal
	index map[string]int
}

func newGroups(out *[]models.GroupTotal) *groups {
	return &groups{out: out, index: make(map[string]int)}
}

// add counts one session under key. The first label seen for a key is kept.
func (g *groups) add(key, label string, grams float64) {
	i, ok := g.index[key]
	if !ok {
		i = len(*g.out)
		g.index[key] = i
		*g.out = append(*g.out, models.GroupTotal{Key: label})
	}
	(*g.out)[i].Sessions++
	(*g.out)[i].Grams += grams
}

func (s *insightsService) Summary(ctx context.Context, userID string, from, to int64, topN int) (models.Summary, error) {
	entries, err := s.entries.ListForRange(ctx, userID, from, to)
	if err != nil {
		return models.Summary{}, fmt.Errorf("error listing entries for summary: %w", err)
	}
	return s.Summarize(entries, topN), nil
}

// MonthlyPurchases totals the archived purchases finished within the
// calendar month in loc. A nil loc means UTC.
func (s *insightsService) MonthlyPurchases(ctx context.Context, userID string, year int, month time.Month, loc *time.Location) (models.MonthlyPurchases, error) {
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	archived, err := s.purchases.ListArchived(ctx, userID)
	if err != nil {
		return models.MonthlyPurchases{}, fmt.Errorf("error listing archived purchases: %w", err)
	}

	result := models.MonthlyPurchases{
		Month:     start.Format("2006-01"),
		TotalCost: decimal.Zero,
		Purchases: []models.ArchivedPurchase{},
	}

	from, to := start.UnixMilli(), end.UnixMilli()
	for _, a := range archived {
		if a.FinishedAt < from || a.FinishedAt >= to {
			continue
		}

		result.Count++
		if a.PurchaseTotalGrams != nil {
			result.TotalGrams += *a.PurchaseTotalGrams
		}
		if a.CostCents != nil {
			result.TotalCost = result.TotalCost.Add(decimal.New(*a.CostCents, -2))
		}
		if a.WasteGrams != nil {
			result.WasteGrams += *a.WasteGrams
		}
		result.Purchases = append(result.Purchases, a)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*insightsService.MonthlyPurchases").
		Str("month", result.Month).
		Int("count", result.Count).
		Msg("monthly purchases aggregated")

	return result, nil
}
