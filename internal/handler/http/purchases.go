// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/models"
)

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createPurchase", err)
		return
	}

	var in models.PurchaseInput
	if err = readBody(r, &in); err != nil {
		writeError(w, r, "*Handler.createPurchase", err)
		return
	}

	purchase, err := h.services.PurchaseService.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, r, "*Handler.createPurchase", err)
		return
	}

	utils.WriteJSON(w, purchase, http.StatusCreated)
}

// listPurchases lists all purchases or, with status=active|depleted, those
// in one status.
func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.listPurchases", err)
		return
	}

	var status *models.PurchaseStatus
	switch raw := models.PurchaseStatus(r.URL.Query().Get("status")); raw {
	case "":
	case models.PurchaseActive, models.PurchaseDepleted:
		status = &raw
	default:
		writeError(w, r, "*Handler.listPurchases", fmt.Errorf("%w: unknown status %q", ErrInvalidParam, raw))
		return
	}

	purchases, err := h.services.PurchaseService.List(r.Context(), userID, status)
	if err != nil {
		writeError(w, r, "*Handler.listPurchases", err)
		return
	}

	utils.WriteJSON(w, purchases, http.StatusOK)
}

func (h *Handler) listArchivedPurchases(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.listArchivedPurchases", err)
		return
	}

	archived, err := h.services.PurchaseService.ListArchived(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listArchivedPurchases", err)
		return
	}

	utils.WriteJSON(w, archived, http.StatusOK)
}

func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getPurchase", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getPurchase", err)
		return
	}

	purchase, err := h.services.PurchaseService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, "*Handler.getPurchase", err)
		return
	}

	utils.WriteJSON(w, purchase, http.StatusOK)
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updatePurchase", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updatePurchase", err)
		return
	}

	var patch models.PurchasePatch
	if err = readBody(r, &patch); err != nil {
		writeError(w, r, "*Handler.updatePurchase", err)
		return
	}

	purchase, err := h.services.PurchaseService.Update(r.Context(), userID, id, patch)
	if err != nil {
		writeError(w, r, "*Handler.updatePurchase", err)
		return
	}

	utils.WriteJSON(w, purchase, http.StatusOK)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deletePurchase", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deletePurchase", err)
		return
	}

	if err = h.services.PurchaseService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, "*Handler.deletePurchase", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// finishPurchase archives the purchase and answers with its archive entry.
// A failure after the purchase was depleted answers 500; repeating the
// request completes the archive.
func (h *Handler) finishPurchase(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.finishPurchase", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.finishPurchase", err)
		return
	}

	archive, err := h.services.PurchaseService.Finish(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, "*Handler.finishPurchase", err)
		return
	}

	utils.WriteJSON(w, archive, http.StatusOK)
}
