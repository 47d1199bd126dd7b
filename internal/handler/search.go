package handler

import (
	"net/http"

	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// ItemsResponse wraps an ordered list of items
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// HandleGetByCategory lists a vendor's items in one category, in inventory order
// @Summary Items by category
// @Tags search
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param category query string true "Category (exact match)"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vendors/{vendorID}/items [get]
func HandleGetByCategory(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}
		category, ok := GetQueryParam(r, w, QueryCategory)
		if !ok {
			return
		}

		items, err := svc.GetByCategory(r.Context(), vendorID, category)
		if err != nil {
			respondServiceError(w, r, OpGetByCategory, err)
			return
		}
		respondJSON(w, http.StatusOK, ItemsResponse{Items: newItemResponses(items)})
	}
}

// HandleGetBestByCategory returns the best-conditioned item in a category
// @Summary Best item by category
// @Description Highest condition wins; ties go to the earliest item in the inventory
// @Tags search
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param category query string true "Category (exact match)"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vendors/{vendorID}/items/best [get]
func HandleGetBestByCategory(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}
		category, ok := GetQueryParam(r, w, QueryCategory)
		if !ok {
			return
		}

		item, err := svc.GetBestByCategory(r.Context(), vendorID, category)
		if err != nil {
			respondServiceError(w, r, OpGetBestByCategory, err)
			return
		}
		respondJSON(w, http.StatusOK, newItemResponse(item))
	}
}

// HandleGetByAge returns the first item with exactly the given age
// @Summary Item by age
// @Tags search
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param age path int true "Age"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vendors/{vendorID}/items/age/{age} [get]
func HandleGetByAge(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}
		age, ok := GetPathAge(r, w)
		if !ok {
			return
		}

		item, err := svc.GetByAge(r.Context(), vendorID, age)
		if err != nil {
			respondServiceError(w, r, OpGetByAge, err)
			return
		}
		respondJSON(w, http.StatusOK, newItemResponse(item))
	}
}

// HandleGetNewest returns the item with the lowest age
// @Summary Newest item
// @Description Lowest age wins; ties go to the earliest item in the inventory
// @Tags search
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vendors/{vendorID}/items/newest [get]
func HandleGetNewest(svc swapmeet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID, ok := GetPathUUID(r, w, ParamVendorID)
		if !ok {
			return
		}

		item, err := svc.GetNewest(r.Context(), vendorID)
		if err != nil {
			respondServiceError(w, r, OpGetNewest, err)
			return
		}
		respondJSON(w, http.StatusOK, newItemResponse(item))
	}
}
