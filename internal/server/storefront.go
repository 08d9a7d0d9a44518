package server

import (
	"errors"
	"net/http"

	"github.com/sevenam/diamondstore/internal/checkout"
	"github.com/sevenam/diamondstore/internal/store"
)

type storefront struct {
	Settings       store.SystemSettings   `json:"settings"`
	Packages       []store.DiamondPackage `json:"packages"`
	Featured       []store.DiamondPackage `json:"featured"`
	PaymentMethods []store.PaymentMethod  `json:"paymentMethods"`
}

func (s *Server) handleStorefront(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, storefront{
		Settings:       s.store.Settings(),
		Packages:       s.store.ActivePackages(),
		Featured:       s.store.FeaturedPackages(),
		PaymentMethods: s.store.ActivePaymentMethods(),
	})
}

// handleCheckout takes a multipart form with the order fields and the
// transaction screenshot under "screenshot".
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	// room for the form fields on top of the image itself
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, checkout.ErrScreenshotTooLarge.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := checkout.Request{
		PackageID:     r.FormValue("packageId"),
		AccountName:   r.FormValue("accountName"),
		MlbbID:        r.FormValue("mlbbId"),
		ServerID:      r.FormValue("serverId"),
		PhoneNumber:   r.FormValue("phoneNumber"),
		PaymentMethod: store.PaymentType(r.FormValue("paymentMethod")),
		Email:         r.FormValue("email"),
		Notes:         r.FormValue("notes"),
	}

	file, _, err := r.FormFile("screenshot")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		respondError(w, http.StatusBadRequest, "Invalid screenshot upload")
		return
	default:
		defer file.Close()
		req.Screenshot = file
	}

	order, err := s.checkout.Submit(r.Context(), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}
