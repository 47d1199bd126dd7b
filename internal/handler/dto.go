package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/swapmeet"
)

// ItemRequest describes an item to create
type ItemRequest struct {
	Category  string  `json:"category" validate:"required,category,max=64,excludesall=\x00\n\r\t"`
	Condition float64 `json:"condition" validate:"gte=0,lte=5"`
	Age       int     `json:"age" validate:"gte=0"`
}

func (r ItemRequest) toNewItem() swapmeet.NewItem {
	return swapmeet.NewItem{Category: r.Category, Condition: r.Condition, Age: r.Age}
}

// ItemResponse is the JSON view of an item
type ItemResponse struct {
	ID                   uuid.UUID `json:"item_id"`
	Category             string    `json:"category"`
	Condition            float64   `json:"condition"`
	ConditionDescription string    `json:"condition_description"`
	Age                  int       `json:"age"`
	Presentation         string    `json:"presentation"`
	Description          string    `json:"description"`
}

// VendorResponse is the JSON view of a vendor and its ordered inventory
type VendorResponse struct {
	ID        uuid.UUID      `json:"vendor_id"`
	Name      string         `json:"name"`
	Inventory []ItemResponse `json:"inventory"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// SwapResponse reports a completed swap from the initiating vendor's side
type SwapResponse struct {
	Message  string         `json:"message"`
	Kind     string         `json:"kind"`
	Given    ItemResponse   `json:"given"`
	Received ItemResponse   `json:"received"`
	Vendor   VendorResponse `json:"vendor"`
	Other    VendorResponse `json:"other_vendor"`
}

func newItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:                   item.ID,
		Category:             string(item.Category),
		Condition:            item.Condition,
		ConditionDescription: item.ConditionDescription(),
		Age:                  item.Age,
		Presentation:         string(item.Presentation),
		Description:          item.String(),
	}
}

func newItemResponses(items []*domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}
	return out
}

func newVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Inventory: newItemResponses(v.Inventory()),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func newSwapResponse(res *swapmeet.SwapResult) SwapResponse {
	return SwapResponse{
		Message:  MsgSwapCompleted,
		Kind:     res.Kind,
		Given:    newItemResponse(res.Given),
		Received: newItemResponse(res.Received),
		Vendor:   newVendorResponse(res.Vendor),
		Other:    newVendorResponse(res.Other),
	}
}
