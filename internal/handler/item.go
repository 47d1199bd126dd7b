package handler

import (
	"net/http"

	"github.com/osse101/SwapMeet_Go/internal/logger"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// AddItemRequest represents a request to add one new item to a vendor
type AddItemRequest = ItemRequest

// ItemMessageResponse pairs a message with the affected item
type ItemMessageResponse struct {
	Message string       `json:"message"`
	Item    ItemResponse `json:"item"`
}

// HandleAddItem appends a new item to the end of a vendor's inventory
// @Summary Add item
// @Tags items
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param request body AddItemRequest true "Item details"
// @Success 201 {object} ItemMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vendors/{vendorID}/items [post]
func HandleAddItem(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpAddItem); err != nil {
			return
		}

		item, err := svc.AddItem(r.Context(), vendorID, req.toNewItem())
		if err != nil {
			respondServiceError(w, r, OpAddItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgItemAdded, "vendor_id", vendorID, "item_id", item.ID)
		respondJSON(w, http.StatusCreated, ItemMessageResponse{Message: MsgItemAdded, Item: newItemResponse(item)})
	}
}

// HandleRemoveItem removes the first occurrence of an item from a vendor's inventory
// @Summary Remove item
// @Tags items
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} ItemMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/items/{itemID} [delete]
func HandleRemoveItem(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}
		itemID, ok := GetPathUUID(r, w, ParamItemID)
		if !ok {
			return
		}

		item, err := svc.RemoveItem(r.Context(), vendorID, itemID)
		if err != nil {
			respondServiceError(w, r, OpRemoveItem, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgItemRemoved, "vendor_id", vendorID, "item_id", item.ID)
		respondJSON(w, http.StatusOK, ItemMessageResponse{Message: MsgItemRemoved, Item: newItemResponse(item)})
	}
}
