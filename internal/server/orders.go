package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sevenam/diamondstore/internal/store"
)

var orderStatuses = map[store.OrderStatus]struct{}{
	store.StatusPending:    {},
	store.StatusProcessing: {},
	store.StatusCompleted:  {},
	store.StatusRejected:   {},
	store.StatusCancelled:  {},
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	status := store.OrderStatus(r.URL.Query().Get("status"))
	if status == "" {
		respondJSON(w, http.StatusOK, s.store.Orders())
		return
	}
	if _, ok := orderStatuses[status]; !ok {
		respondError(w, http.StatusBadRequest, "Unknown order status: "+string(status))
		return
	}
	respondJSON(w, http.StatusOK, s.store.OrdersByStatus(status))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.store.Order(mux.Vars(r)["id"])
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in store.NewOrder
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// admin-created orders always start pending
	in.Status = store.StatusPending
	if in.Priority == "" {
		in.Priority = store.PriorityMedium
	}

	order, err := s.store.AddOrder(r.Context(), in)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	var patch store.OrderPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.store.UpdateOrder(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
