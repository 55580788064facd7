// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// GroupTotal is the session count and gram total of one group key.
type GroupTotal struct {
	Key      string  `json:"key"`
	Sessions int     `json:"sessions"`
	Grams    float64 `json:"grams"`
}

// Summary aggregates a set of sessions.
// Groups are listed in the order their key first appears in the input.
type Summary struct {
	Sessions      int     `json:"sessions"`
	TotalGrams    float64 `json:"totalGrams"`
	TotalEdibleMg float64 `json:"totalEdibleMg"`

	ByMethod []GroupTotal `json:"byMethod"`
	ByType   []GroupTotal `json:"byType"`
	ByStrain []GroupTotal `json:"byStrain"`

	TopStrains []GroupTotal `json:"topStrains"`
}

// MonthlyPurchases totals the purchases finished within one calendar month.
type MonthlyPurchases struct {
	Month      string          `json:"month"`
	Count      int             `json:"count"`
	TotalGrams float64         `json:"totalGrams"`
	TotalCost  decimal.Decimal `json:"totalCost"`
	WasteGrams float64         `json:"wasteGrams"`

	Purchases []ArchivedPurchase `json:"purchases"`
}
