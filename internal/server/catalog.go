package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevenam/diamondstore/internal/store"
)

func (s *Server) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		respondJSON(w, http.StatusOK, s.store.ActivePaymentMethods())
		return
	}
	respondJSON(w, http.StatusOK, s.store.PaymentMethods())
}

func (s *Server) handleCreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	in := store.NewPaymentMethod{IsActive: true}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Type == "" {
		in.Type = store.PaymentKPay
	}
	in.CurrentUsage = 0

	pm, err := s.store.AddPaymentMethod(r.Context(), in)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, pm)
}

func (s *Server) handleUpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var patch store.PaymentMethodPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pm, err := s.store.UpdatePaymentMethod(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pm)
}

func (s *Server) handleDeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePaymentMethod(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("active") == "true" {
		respondJSON(w, http.StatusOK, s.store.ActivePackages())
		return
	}
	respondJSON(w, http.StatusOK, s.store.DiamondPackages())
}

func (s *Server) handleFeaturedPackages(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.FeaturedPackages())
}

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	in := store.NewDiamondPackage{IsActive: true}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Category == "" {
		in.Category = store.CategoryPopular
	}

	pkg, err := s.store.AddDiamondPackage(r.Context(), in)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, pkg)
}

func (s *Server) handleUpdatePackage(w http.ResponseWriter, r *http.Request) {
	var patch store.DiamondPackagePatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pkg, err := s.store.UpdateDiamondPackage(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleDeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteDiamondPackage(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
