package handler

import (
	"net/http"

	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// CreateVendorRequest represents a request to open a vendor stall
type CreateVendorRequest struct {
	Name  string        `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Items []ItemRequest `json:"items" validate:"omitempty,max=1000,dive"`
}

// ListVendorsResponse wraps the vendor list
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// HandleCreateVendor handles vendor creation
// @Summary Create vendor
// @Description Create a vendor with an optional initial inventory, kept in the given order
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body CreateVendorRequest true "Vendor details"
// @Success 201 {object} VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /vendors [post]
func HandleCreateVendor(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVendorRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateVendor); err != nil {
			return
		}

		items := make([]swapmeet.NewItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, item.toNewItem())
		}

		v, err := svc.CreateVendor(r.Context(), req.Name, items)
		if err != nil {
			respondServiceError(w, r, OpCreateVendor, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgVendorCreated, "vendor_id", v.ID, "items", v.Len())
		respondJSON(w, http.StatusCreated, newVendorResponse(v))
	}
}

// HandleListVendors lists every vendor
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {object} ListVendorsResponse
// @Failure 500 {object} ErrorResponse
// @Router /vendors [get]
func HandleListVendors(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := svc.ListVendors(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListVendors, err)
			return
		}

		resp := ListVendorsResponse{Vendors: make([]VendorResponse, 0, len(vendors))}
		for _, v := range vendors {
			resp.Vendors = append(resp.Vendors, newVendorResponse(v))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleGetVendor returns one vendor with its inventory
// @Summary Get vendor
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vendors/{vendorID} [get]
func HandleGetVendor(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		v, err := svc.GetVendor(r.Context(), vendorID)
		if err != nil {
			respondServiceError(w, r, OpGetVendor, err)
			return
		}
		respondJSON(w, http.StatusOK, newVendorResponse(v))
	}
}
