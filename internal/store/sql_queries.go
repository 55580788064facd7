// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stash-journal/models"
)

const (
	usersTable     = "users"
	strainsTable   = "strains"
	entriesTable   = "entries"
	purchasesTable = "purchases"
)

var userColumns = []string{"id", "login", "password_hash", "name", "created_at"}

var strainColumns = []string{
	"id", "user_id", "name", "name_lower", "name_lc", "type", "brand", "lineage",
	"thc", "thca", "cbd", "effects", "flavors", "aroma", "notes", "rating",
	"created_at", "updated_at",
}

var entryColumns = []string{
	"id", "user_id", "time", "method",
	"edible_name", "edible_type", "edible_mg",
	"strain_id", "strain_name", "strain_name_lower", "strain_type", "brand", "lineage",
	"thc", "thca", "cbd", "weight_grams",
	"effects", "flavors", "aroma", "rating", "notes",
	"purchase_id", "journal_type", "hidden_from_daily",
	"finished_at_ms", "finished_date", "finished_date_legacy",
	"purchase_total_grams", "purchase_remaining_grams", "cost_cents", "purchase_date",
	"product_kind", "waste_grams", "waste_percent",
	"created_at", "updated_at",
}

var purchaseColumns = []string{
	"id", "user_id", "strain_name", "strain_name_lower", "strain_type", "lineage", "brand",
	"thc", "thca", "cbd", "total_grams", "remaining_grams", "total_cost_cents", "purchase_date",
	"status", "product_kind", "concentrate_category", "concentrate_form",
	"waste_grams", "waste_percent",
	"created_at", "updated_at",
}

// columnSet collects column/value pairs in insertion order so generated
// statements and their argument lists are deterministic.
type columnSet struct {
	cols []string
	vals []any
}

func (c *columnSet) add(column string, value any) {
	c.cols = append(c.cols, column)
	c.vals = append(c.vals, value)
}

func (c *columnSet) len() int {
	return len(c.cols)
}

func (c *columnSet) set(b sq.UpdateBuilder) sq.UpdateBuilder {
	for i := range c.cols {
		b = b.Set(c.cols[i], c.vals[i])
	}
	return b
}

func addIfSet[T any](c *columnSet, column string, value *T) {
	if value != nil {
		c.add(column, *value)
	}
}

func addStringIfSet[T ~string](c *columnSet, column string, value *T) {
	if value != nil {
		c.add(column, string(*value))
	}
}

func addListIfSet(c *columnSet, column string, value models.StringList) {
	if value != nil {
		c.add(column, value)
	}
}

// stringPtr converts a pointer to a string-kinded enum for driver binding.
func stringPtr[T ~string](value *T) *string {
	if value == nil {
		return nil
	}
	s := string(*value)
	return &s
}

func lowerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func buildQueryErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(d Dialect, user models.User) (string, []any, error) {
	return d.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.Name, user.CreatedAt).
		ToSql()
}

func buildFindUserByLoginQuery(d Dialect, login string) (string, []any, error) {
	return d.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// ── shared ────────────────────────────────────────────────────────────────────

func buildDeleteQuery(d Dialect, table, userID, id string) (string, []any, error) {
	return d.builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

// ── strains ───────────────────────────────────────────────────────────────────

func buildCreateStrainQuery(d Dialect, s models.Strain) (string, []any, error) {
	return d.builder().
		Insert(strainsTable).
		Columns(
			"id", "user_id", "name", "name_lower", "type", "brand", "lineage",
			"thc", "thca", "cbd", "effects", "flavors", "aroma", "notes", "rating",
			"created_at", "updated_at",
		).
		Values(
			s.ID, s.UserID, s.Name, s.NameLower, stringPtr(s.Type), s.Brand, s.Lineage,
			s.THC, s.THCA, s.CBD, s.Effects, s.Flavors, s.Aroma, s.Notes, s.Rating,
			s.CreatedAt, s.UpdatedAt,
		).
		ToSql()
}

func buildGetStrainQuery(d Dialect, userID, id string) (string, []any, error) {
	return d.builder().
		Select(strainColumns...).
		From(strainsTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

// buildFindStrainByKeyQuery matches key against column, either the
// canonical "name_lower" or the legacy "name_lc". The oldest match wins.
func buildFindStrainByKeyQuery(d Dialect, userID, column, key string) (string, []any, error) {
	return d.builder().
		Select(strainColumns...).
		From(strainsTable).
		Where(sq.Eq{"user_id": userID, column: key}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
}

func buildListStrainsQuery(d Dialect, userID string) (string, []any, error) {
	return d.builder().
		Select(strainColumns...).
		From(strainsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name_lower ASC", "id ASC").
		ToSql()
}

func buildSaveStrainQuery(d Dialect, s models.Strain) (string, []any, error) {
	return d.builder().
		Update(strainsTable).
		Set("name", s.Name).
		Set("name_lower", s.NameLower).
		Set("type", stringPtr(s.Type)).
		Set("brand", s.Brand).
		Set("lineage", s.Lineage).
		Set("thc", s.THC).
		Set("thca", s.THCA).
		Set("cbd", s.CBD).
		Set("effects", s.Effects).
		Set("flavors", s.Flavors).
		Set("aroma", s.Aroma).
		Set("notes", s.Notes).
		Set("rating", s.Rating).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"user_id": s.UserID, "id": s.ID}).
		ToSql()
}

// ── entries ───────────────────────────────────────────────────────────────────

// entryInsertColumns returns the always-present columns plus every optional
// column whose value is set.
func entryInsertColumns(e models.Entry) *columnSet {
	c := &columnSet{}
	c.add("id", e.ID)
	c.add("user_id", e.UserID)
	c.add("time", e.Time)
	c.add("method", string(e.Method))

	addIfSet(c, "edible_name", e.EdibleName)
	addIfSet(c, "edible_type", e.EdibleType)
	addIfSet(c, "edible_mg", e.EdibleMg)

	addIfSet(c, "strain_id", e.StrainID)
	addIfSet(c, "strain_name", e.StrainName)
	if e.StrainName != nil {
		c.add("strain_name_lower", lowerKey(*e.StrainName))
	}
	addStringIfSet(c, "strain_type", e.StrainType)
	addIfSet(c, "brand", e.Brand)
	addIfSet(c, "lineage", e.Lineage)
	addIfSet(c, "thc", e.THC)
	addIfSet(c, "thca", e.THCA)
	addIfSet(c, "cbd", e.CBD)
	addIfSet(c, "weight_grams", e.WeightGrams)

	addListIfSet(c, "effects", e.Effects)
	addListIfSet(c, "flavors", e.Flavors)
	addListIfSet(c, "aroma", e.Aroma)
	addIfSet(c, "rating", e.Rating)
	addIfSet(c, "notes", e.Notes)

	addIfSet(c, "purchase_id", e.PurchaseID)
	addIfSet(c, "journal_type", e.JournalType)
	c.add("hidden_from_daily", e.HiddenFromDaily)
	addIfSet(c, "finished_at_ms", e.FinishedAtMs)
	addIfSet(c, "finished_date", e.FinishedDate)
	addIfSet(c, "finished_date_legacy", e.LegacyFinishedAt)

	addIfSet(c, "purchase_total_grams", e.PurchaseTotalGrams)
	addIfSet(c, "purchase_remaining_grams", e.PurchaseRemainingGrams)
	addIfSet(c, "cost_cents", e.CostCents)
	addIfSet(c, "purchase_date", e.PurchaseDate)
	addStringIfSet(c, "product_kind", e.ProductKind)
	addIfSet(c, "waste_grams", e.WasteGrams)
	addIfSet(c, "waste_percent", e.WastePercent)

	c.add("created_at", e.CreatedAt)
	c.add("updated_at", e.UpdatedAt)
	return c
}

func buildCreateEntryQuery(d Dialect, e models.Entry) (string, []any, error) {
	c := entryInsertColumns(e)
	return d.builder().
		Insert(entriesTable).
		Columns(c.cols...).
		Values(c.vals...).
		ToSql()
}

func buildGetEntryQuery(d Dialect, userID, id string) (string, []any, error) {
	return d.builder().
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

// entryPatchColumns returns the columns changed by patch. The lowercase
// strain key follows the strain name.
func entryPatchColumns(p models.EntryPatch) *columnSet {
	c := &columnSet{}
	addIfSet(c, "time", p.Time)
	addStringIfSet(c, "method", p.Method)

	addIfSet(c, "edible_name", p.EdibleName)
	addIfSet(c, "edible_type", p.EdibleType)
	addIfSet(c, "edible_mg", p.EdibleMg)

	addIfSet(c, "strain_id", p.StrainID)
	if p.StrainName != nil {
		if key := lowerKey(*p.StrainName); key != "" {
			c.add("strain_name", *p.StrainName)
			c.add("strain_name_lower", key)
		} else {
			// a blank name clears the strain snapshot and its link
			c.add("strain_name", nil)
			c.add("strain_name_lower", nil)
			if p.StrainID == nil {
				c.add("strain_id", nil)
			}
		}
	}
	addStringIfSet(c, "strain_type", p.StrainType)
	addIfSet(c, "brand", p.Brand)
	addIfSet(c, "thc", p.THC)
	addIfSet(c, "thca", p.THCA)
	addIfSet(c, "cbd", p.CBD)
	if p.Weight != nil {
		c.add("weight_grams", p.Weight.Float64())
	}

	addListIfSet(c, "effects", p.Effects)
	addListIfSet(c, "flavors", p.Flavors)
	addListIfSet(c, "aroma", p.Aroma)
	addIfSet(c, "rating", p.Rating)
	addIfSet(c, "notes", p.Notes)
	return c
}

func buildUpdateEntryQuery(d Dialect, userID, id string, p models.EntryPatch, updatedAt int64) (string, []any, error) {
	c := entryPatchColumns(p)
	c.add("updated_at", updatedAt)

	return c.set(d.builder().Update(entriesTable)).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

// entryFilterWhere converts filter to a WHERE conjunction.
func entryFilterWhere(f models.EntryFilter) sq.And {
	where := sq.And{sq.Eq{"user_id": f.UserID}}

	if f.From != nil {
		where = append(where, sq.GtOrEq{"time": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.Lt{"time": *f.To})
	}
	if f.ExcludeArchived {
		where = append(where,
			sq.Eq{"hidden_from_daily": false},
			sq.Or{
				sq.Eq{"journal_type": nil},
				sq.NotEq{"journal_type": models.JournalTypePurchaseArchive},
			},
		)
	}
	if f.JournalType != nil {
		where = append(where, sq.Eq{"journal_type": *f.JournalType})
	}
	if f.HiddenFromDaily != nil {
		where = append(where, sq.Eq{"hidden_from_daily": *f.HiddenFromDaily})
	}
	if len(f.Methods) > 0 {
		methods := make([]string, 0, len(f.Methods))
		for _, m := range f.Methods {
			methods = append(methods, string(m))
		}
		where = append(where, sq.Eq{"method": methods})
	}
	if f.PurchaseID != nil {
		where = append(where, sq.Eq{"purchase_id": *f.PurchaseID})
	}

	return where
}

func buildListEntriesQuery(d Dialect, f models.EntryFilter) (string, []any, error) {
	return d.builder().
		Select(entryColumns...).
		From(entriesTable).
		Where(entryFilterWhere(f)).
		OrderBy("time DESC", "id DESC").
		ToSql()
}

// ── purchases ─────────────────────────────────────────────────────────────────

func buildCreatePurchaseQuery(d Dialect, p models.Purchase) (string, []any, error) {
	return d.builder().
		Insert(purchasesTable).
		Columns(purchaseColumns...).
		Values(
			p.ID, p.UserID, p.StrainName, p.StrainNameLower, stringPtr(p.StrainType), p.Lineage, p.Brand,
			p.THC, p.THCA, p.CBD, p.TotalGrams, p.RemainingGrams, p.TotalCostCents, p.PurchaseDate,
			string(p.Status), stringPtr(p.ProductKind), p.ConcentrateCategory, p.ConcentrateForm,
			p.WasteGrams, p.WastePercent,
			p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
}

func buildGetPurchaseQuery(d Dialect, userID, id string, lock bool) (string, []any, error) {
	b := d.builder().
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.Eq{"user_id": userID, "id": id})
	if lock {
		b = d.forUpdate(b)
	}
	return b.ToSql()
}

// activeStatus matches purchases whose status is active or unset.
func activeStatus() sq.Or {
	return sq.Or{
		sq.Eq{"status": []string{string(models.PurchaseActive), ""}},
		sq.Eq{"status": nil},
	}
}

func buildListPurchasesQuery(d Dialect, userID string, status *models.PurchaseStatus) (string, []any, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if status != nil {
		if *status == models.PurchaseActive {
			where = append(where, activeStatus())
		} else {
			where = append(where, sq.Eq{"status": string(*status)})
		}
	}

	return d.builder().
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(where).
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
}

func purchasePatchColumns(p models.PurchasePatch) *columnSet {
	c := &columnSet{}
	addIfSet(c, "strain_name", p.StrainName)
	if p.StrainName != nil {
		c.add("strain_name_lower", lowerKey(*p.StrainName))
	}
	addStringIfSet(c, "strain_type", p.StrainType)
	addIfSet(c, "lineage", p.Lineage)
	addIfSet(c, "brand", p.Brand)
	addIfSet(c, "thc", p.THC)
	addIfSet(c, "thca", p.THCA)
	addIfSet(c, "cbd", p.CBD)
	if p.TotalGrams != nil {
		c.add("total_grams", p.TotalGrams.Float64())
	}
	if p.RemainingGrams != nil {
		c.add("remaining_grams", p.RemainingGrams.Float64())
	}
	addIfSet(c, "total_cost_cents", p.TotalCostCents)
	addIfSet(c, "purchase_date", p.PurchaseDate)
	addStringIfSet(c, "status", p.Status)
	addStringIfSet(c, "product_kind", p.ProductKind)
	addIfSet(c, "concentrate_category", p.ConcentrateCategory)
	addIfSet(c, "concentrate_form", p.ConcentrateForm)
	return c
}

func buildUpdatePurchaseQuery(d Dialect, userID, id string, p models.PurchasePatch, updatedAt int64) (string, []any, error) {
	c := purchasePatchColumns(p)
	c.add("updated_at", updatedAt)

	return c.set(d.builder().Update(purchasesTable)).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func buildDeductionCandidateQuery(d Dialect, userID, strainKey string) (string, []any, error) {
	b := d.builder().
		Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.And{
			sq.Eq{"user_id": userID, "strain_name_lower": strainKey},
			activeStatus(),
			sq.Gt{"remaining_grams": 0},
		}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1)

	return d.forUpdate(b).ToSql()
}

func buildSetRemainingQuery(d Dialect, userID, id string, remaining float64, status models.PurchaseStatus, updatedAt int64) (string, []any, error) {
	return d.builder().
		Update(purchasesTable).
		Set("remaining_grams", remaining).
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

// buildSetFinishedQuery empties and depletes a purchase and records its waste.
// Nil waste values clear the columns.
func buildSetFinishedQuery(d Dialect, userID, id string, wasteGrams, wastePercent *float64, updatedAt int64) (string, []any, error) {
	return d.builder().
		Update(purchasesTable).
		Set("remaining_grams", 0).
		Set("status", string(models.PurchaseDepleted)).
		Set("waste_grams", wasteGrams).
		Set("waste_percent", wastePercent).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}
