// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stash-journal/internal/logger"
	"github.com/MKhiriev/go-stash-journal/internal/service"
	"github.com/MKhiriev/go-stash-journal/internal/store"
	"github.com/MKhiriev/go-stash-journal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := readBody(r, &user); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := readBody(r, &user); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if errors.Is(err, store.ErrUserNotFound) {
		// unknown logins look like wrong passwords
		err = service.ErrWrongPassword
	}
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Str("func", "*Handler.login").Str("id", foundUser.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.issueToken", err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}
