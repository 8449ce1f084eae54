package handler

import (
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// CreateItemRequest is the body of POST /api/v1/items.
// Category is optional; when empty it is derived from the name.
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	SellIn   *int   `json:"sell_in" validate:"required"`
	Quality  *int   `json:"quality" validate:"required,min=0,max=80"`
	Category string `json:"category" validate:"omitempty,category"`
}

// ItemsResponse lists the stock in insertion order
type ItemsResponse struct {
	Items []*domain.Item `json:"items"`
	Count int            `json:"count"`
}

// HandleListItems returns every item in stock
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		if items == nil {
			items = []*domain.Item{}
		}
		respondJSON(w, http.StatusOK, ItemsResponse{Items: items, Count: len(items)})
	}
}

// HandleGetItem returns a single item by ID
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemID(w, r)
		if !ok {
			return
		}

		logRequestFields(r, "Get item", "item_id", id)

		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleCreateItem adds an item to stock
func HandleCreateItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		logRequestFields(r, "Create item",
			"name", req.Name,
			"sell_in", *req.SellIn,
			"quality", *req.Quality,
			"category", req.Category)

		item := domain.NewItem(req.Name, *req.SellIn, *req.Quality)
		if req.Category != "" {
			category, err := domain.ParseCategory(req.Category)
			if err != nil {
				respondServiceError(w, r, ErrMsgAddItemFailed, err)
				return
			}
			item.Category = category
		}

		created, err := svc.AddItem(r.Context(), item)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemCreated, "item_id", created.ID, "name", created.Name)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleDeleteItem removes an item from stock
func HandleDeleteItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemID(w, r)
		if !ok {
			return
		}

		logRequestFields(r, "Remove item", "item_id", id)

		if err := svc.RemoveItem(r.Context(), id); err != nil {
			respondServiceError(w, r, ErrMsgRemoveItemFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgItemRemoved, "item_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
	}
}
