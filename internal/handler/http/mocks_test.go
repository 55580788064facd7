// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/models"
)

const (
	testUserID = "user-1"
	testToken  = "valid-token"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testUserID}, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockStrainService struct {
	service.StrainService

	upsertFn func(ctx context.Context, userID string, in models.StrainInput) (string, error)
	getFn    func(ctx context.Context, userID, strainID string) (models.Strain, error)
	listFn   func(ctx context.Context, userID string) ([]models.Strain, error)
	updateFn func(ctx context.Context, userID, strainID string, patch models.StrainPatch) (models.Strain, error)
	deleteFn func(ctx context.Context, userID, strainID string) error
}

func (m *mockStrainService) Upsert(ctx context.Context, userID string, in models.StrainInput) (string, error) {
	return m.upsertFn(ctx, userID, in)
}

func (m *mockStrainService) Get(ctx context.Context, userID, strainID string) (models.Strain, error) {
	return m.getFn(ctx, userID, strainID)
}

func (m *mockStrainService) List(ctx context.Context, userID string) ([]models.Strain, error) {
	return m.listFn(ctx, userID)
}

func (m *mockStrainService) Update(ctx context.Context, userID, strainID string, patch models.StrainPatch) (models.Strain, error) {
	return m.updateFn(ctx, userID, strainID, patch)
}

func (m *mockStrainService) Delete(ctx context.Context, userID, strainID string) error {
	return m.deleteFn(ctx, userID, strainID)
}

type mockEntryService struct {
	service.EntryService

	createFn       func(ctx context.Context, userID string, in models.EntryInput) (models.Entry, error)
	getFn          func(ctx context.Context, userID, entryID string) (models.Entry, error)
	updateFn       func(ctx context.Context, userID, entryID string, patch models.EntryPatch) (models.Entry, error)
	deleteFn       func(ctx context.Context, userID, entryID string) error
	listForDayFn   func(ctx context.Context, userID string, day time.Time) ([]models.Entry, error)
	listForRangeFn func(ctx context.Context, userID string, from, to int64) ([]models.Entry, error)
	listAllFn      func(ctx context.Context, userID string) ([]models.Entry, error)
}

func (m *mockEntryService) Create(ctx context.Context, userID string, in models.EntryInput) (models.Entry, error) {
	return m.createFn(ctx, userID, in)
}

func (m *mockEntryService) Get(ctx context.Context, userID, entryID string) (models.Entry, error) {
	return m.getFn(ctx, userID, entryID)
}

func (m *mockEntryService) Update(ctx context.Context, userID, entryID string, patch models.EntryPatch) (models.Entry, error) {
	return m.updateFn(ctx, userID, entryID, patch)
}

func (m *mockEntryService) Delete(ctx context.Context, userID, entryID string) error {
	return m.deleteFn(ctx, userID, entryID)
}

func (m *mockEntryService) ListForDay(ctx context.Context, userID string, day time.Time) ([]models.Entry, error) {
	return m.listForDayFn(ctx, userID, day)
}

func (m *mockEntryService) ListForRange(ctx context.Context, userID string, from, to int64) ([]models.Entry, error) {
	return m.listForRangeFn(ctx, userID, from, to)
}

func (m *mockEntryService) ListAll(ctx context.Context, userID string) ([]models.Entry, error) {
	return m.listAllFn(ctx, userID)
}

type mockPurchaseService struct {
	service.PurchaseService

	createFn       func(ctx context.Context, userID string, in models.PurchaseInput) (models.Purchase, error)
	getFn          func(ctx context.Context, userID, purchaseID string) (models.Purchase, error)
	listFn         func(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error)
	updateFn       func(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch) (models.Purchase, error)
	deleteFn       func(ctx context.Context, userID, purchaseID string) error
	finishFn       func(ctx context.Context, userID, purchaseID string) (models.Entry, error)
	listArchivedFn func(ctx context.Context, userID string) ([]models.ArchivedPurchase, error)
}

func (m *mockPurchaseService) Create(ctx context.Context, userID string, in models.PurchaseInput) (models.Purchase, error) {
	return m.createFn(ctx, userID, in)
}

func (m *mockPurchaseService) Get(ctx context.Context, userID, purchaseID string) (models.Purchase, error) {
	return m.getFn(ctx, userID, purchaseID)
}

func (m *mockPurchaseService) List(ctx context.Context, userID string, status *models.PurchaseStatus) ([]models.Purchase, error) {
	return m.listFn(ctx, userID, status)
}

func (m *mockPurchaseService) Update(ctx context.Context, userID, purchaseID string, patch models.PurchasePatch) (models.Purchase, error) {
	return m.updateFn(ctx, userID, purchaseID, patch)
}

func (m *mockPurchaseService) Delete(ctx context.Context, userID, purchaseID string) error {
	return m.deleteFn(ctx, userID, purchaseID)
}

func (m *mockPurchaseService) Finish(ctx context.Context, userID, purchaseID string) (models.Entry, error) {
	return m.finishFn(ctx, userID, purchaseID)
}

func (m *mockPurchaseService) ListArchived(ctx context.Context, userID string) ([]models.ArchivedPurchase, error) {
	return m.listArchivedFn(ctx, userID)
}

type mockInsightsService struct {
	service.InsightsService

	summaryFn func(ctx context.Context, userID string, from, to int64, topN int) (models.Summary, error)
	monthlyFn func(ctx context.Context, userID string, year int, month time.Month, loc *time.Location) (models.MonthlyPurchases, error)
}

func (m *mockInsightsService) Summary(ctx context.Context, userID string, from, to int64, topN int) (models.Summary, error) {
	return m.summaryFn(ctx, userID, from, to, topN)
}

func (m *mockInsightsService) MonthlyPurchases(ctx context.Context, userID string, year int, month time.Month, loc *time.Location) (models.MonthlyPurchases, error) {
	return m.monthlyFn(ctx, userID, year, month, loc)
}

type mockChangeFeed struct {
	events chan models.ChangeEvent
	userID string
}

func (m *mockChangeFeed) Subscribe(_ context.Context, userID string) (<-chan models.ChangeEvent, func()) {
	m.userID = userID
	return m.events, func() {}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router over services. Unset services are
// filled with mocks that fail the test when reached.
func newTestRouter(t *testing.T, services *service.Services, opts ...Option) http.Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}

	return NewHandler(services, logger.Nop(), opts...).Init()
}

// do sends an authorized request with an optional JSON body.
func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T {
	return &v
}

func requireJSONError(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"error":`)
}
