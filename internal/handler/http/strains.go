// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stash-journal/internal/utils"
	"github.com/MKhiriev/go-stash-journal/models"
)

// upsertStrain finds the strain by case-insensitive name or creates it and
// answers with the stored record.
func (h *Handler) upsertStrain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.upsertStrain", err)
		return
	}

	var in models.StrainInput
	if err = readBody(r, &in); err != nil {
		writeError(w, r, "*Handler.upsertStrain", err)
		return
	}

	id, err := h.services.StrainService.Upsert(ctx, userID, in)
	if err != nil {
		writeError(w, r, "*Handler.upsertStrain", err)
		return
	}

	strain, err := h.services.StrainService.Get(ctx, userID, id)
	if err != nil {
		writeError(w, r, "*Handler.upsertStrain", err)
		return
	}

	utils.WriteJSON(w, strain, http.StatusOK)
}

func (h *Handler) listStrains(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.listStrains", err)
		return
	}

	strains, err := h.services.StrainService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listStrains", err)
		return
	}

	utils.WriteJSON(w, strains, http.StatusOK)
}

func (h *Handler) getStrain(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getStrain", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getStrain", err)
		return
	}

	strain, err := h.services.StrainService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, "*Handler.getStrain", err)
		return
	}

	utils.WriteJSON(w, strain, http.StatusOK)
}

func (h *Handler) updateStrain(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateStrain", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateStrain", err)
		return
	}

	var patch models.StrainPatch
	if err = readBody(r, &patch); err != nil {
		writeError(w, r, "*Handler.updateStrain", err)
		return
	}

	strain, err := h.services.StrainService.Update(r.Context(), userID, id, patch)
	if err != nil {
		writeError(w, r, "*Handler.updateStrain", err)
		return
	}

	utils.WriteJSON(w, strain, http.StatusOK)
}

func (h *Handler) deleteStrain(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteStrain", err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteStrain", err)
		return
	}

	if err = h.services.StrainService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, "*Handler.deleteStrain", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
