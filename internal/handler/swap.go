package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// SwapRequest names the two items to exchange
type SwapRequest struct {
	OtherVendorID string `json:"other_vendor_id" validate:"required,uuid"`
	MyItemID      string `json:"my_item_id" validate:"required,uuid"`
	TheirItemID   string `json:"their_item_id" validate:"required,uuid"`
}

// OtherVendorRequest names the trading partner of a swap
type OtherVendorRequest struct {
	OtherVendorID string `json:"other_vendor_id" validate:"required,uuid"`
}

// SwapBestRequest names the trading partner and the category each side wants
type SwapBestRequest struct {
	OtherVendorID string `json:"other_vendor_id" validate:"required,uuid"`
	MyPriority    string `json:"my_priority" validate:"required,category,max=64"`
	TheirPriority string `json:"their_priority" validate:"required,category,max=64"`
}

// HandleSwapItems exchanges one named item from each inventory
// @Summary Swap items
// @Tags swaps
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param request body SwapRequest true "Swap details"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/swap [post]
func HandleSwapItems(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		var req SwapRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSwapItems); err != nil {
			return
		}

		// validated as UUIDs above
		otherID := uuid.MustParse(req.OtherVendorID)
		myItemID := uuid.MustParse(req.MyItemID)
		theirItemID := uuid.MustParse(req.TheirItemID)
		LogRequestFields(logger.FromContext(r.Context()),
			"vendor_id", vendorID, "other_vendor_id", otherID, "my_item_id", myItemID, "their_item_id", theirItemID)

		res, err := svc.SwapItems(r.Context(), vendorID, otherID, myItemID, theirItemID)
		if err != nil {
			respondServiceError(w, r, OpSwapItems, err)
			return
		}
		respondJSON(w, http.StatusOK, newSwapResponse(res))
	}
}

// HandleSwapFirstItem exchanges the first item of each inventory
// @Summary Swap first items
// @Tags swaps
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param request body OtherVendorRequest true "Trading partner"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/swap/first [post]
func HandleSwapFirstItem(svc swapmeet.Service) http.HandlerFunc {
	return handleOtherVendorSwap(OpSwapFirstItem, svc.SwapFirstItem)
}

// HandleSwapByNewest exchanges the newest item of each inventory
// @Summary Swap newest items
// @Tags swaps
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param request body OtherVendorRequest true "Trading partner"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/swap/newest [post]
func HandleSwapByNewest(svc swapmeet.Service) http.HandlerFunc {
	return handleOtherVendorSwap(OpSwapByNewest, svc.SwapByNewest)
}

// HandleSwapBestByCategory exchanges each side's best item in the category the other wants
// @Summary Swap best by category
// @Description my_priority is what this vendor wants from the other; their_priority is what the other wants in return
// @Tags swaps
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param request body SwapBestRequest true "Trading partner and priorities"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/swap/best [post]
func HandleSwapBestByCategory(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		var req SwapBestRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSwapBestByCategory); err != nil {
			return
		}

		otherID := uuid.MustParse(req.OtherVendorID)
		LogRequestFields(logger.FromContext(r.Context()),
			"vendor_id", vendorID, "other_vendor_id", otherID, "my_priority", req.MyPriority, "their_priority", req.TheirPriority)

		res, err := svc.SwapBestByCategory(r.Context(), vendorID, otherID, req.MyPriority, req.TheirPriority)
		if err != nil {
			respondServiceError(w, r, OpSwapBestByCategory, err)
			return
		}
		respondJSON(w, http.StatusOK, newSwapResponse(res))
	}
}

type otherVendorSwapFunc func(ctx context.Context, vendorID, otherID uuid.UUID) (*swapmeet.SwapResult, error)

func handleOtherVendorSwap(opName string, swap otherVendorSwapFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		var req OtherVendorRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		res, err := swap(r.Context(), vendorID, uuid.MustParse(req.OtherVendorID))
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, newSwapResponse(res))
	}
}
