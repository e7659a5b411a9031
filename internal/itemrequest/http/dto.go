package http

import (
	"github.com/nekogravitycat/shareit-backend/internal/item"
	"github.com/nekogravitycat/shareit-backend/internal/itemrequest"
	"github.com/nekogravitycat/shareit-backend/internal/pkg/request"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required,notblank"`
}

// AnswerItem is an item listed in response to a request.
type AnswerItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type ItemRequestResponse struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	Created     request.DateTime `json:"created"`
	Items       []AnswerItem     `json:"items"`
}

func NewItemRequestResponse(r *itemrequest.ItemRequest) ItemRequestResponse {
	items := make([]AnswerItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, newAnswerItem(it, r.ID))
	}
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     request.NewDateTime(r.CreatedAt),
		Items:       items,
	}
}

func newAnswerItem(it *item.Item, requestID int64) AnswerItem {
	return AnswerItem{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   requestID,
	}
}

func newItemRequestList(reqs []*itemrequest.ItemRequest) []ItemRequestResponse {
	out := make([]ItemRequestResponse, len(reqs))
	for i, r := range reqs {
		out[i] = NewItemRequestResponse(r)
	}
	return out
}
