package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// OrderModel mirrors one element of the order list document.
type OrderModel struct {
	ID            string           `json:"id"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	CustomerEmail string           `json:"customerEmail,omitempty"`
	Items         []CartEntryModel `json:"items"`
	TotalAmount   int64            `json:"totalAmount"`
	PaymentMethod string           `json:"paymentMethod"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// FromOrderEntity maps a domain entity to its store document.
func FromOrderEntity(o *entity.Order) *OrderModel {
	items := make([]CartEntryModel, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, *FromCartEntryEntity(&o.Items[i]))
	}

	return &OrderModel{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}

// ToEntity maps the store document back to a domain entity.
func (m *OrderModel) ToEntity() *entity.Order {
	items := make([]entity.CartEntry, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToEntity())
	}

	return &entity.Order{
		ID:            parseID(m.ID),
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		CustomerEmail: m.CustomerEmail,
		Items:         items,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
