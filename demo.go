package main

import (
	"log/slog"
	"strings"
)

// demoStore serves a fixed set of sample tables so the tool can be tried
// without a warehouse. Comment updates are logged, not persisted.
type demoStore struct {
	tables map[string][]ColumnMeta
}

func newDemoStore() *demoStore {
	return &demoStore{tables: map[string][]ColumnMeta{
		"customers": {
			{Name: "customer_id", Comment: "Unique customer identifier"},
			{Name: "first_name", Comment: "Customer first name"},
			{Name: "last_name", Comment: "Customer last name"},
			{Name: "email", Comment: "Customer email address"},
			{Name: "phone_number", Comment: "Contact phone number"},
			{Name: "created_at", Comment: "Account creation timestamp"},
		},
		"users": {
			{Name: "user_id"},
			{Name: "firstname"},
			{Name: "lastname"},
			{Name: "email_addr"},
			{Name: "phone"},
			{Name: "registration_date"},
			{Name: "status", Comment: "Account status (active/inactive)"},
		},
		"products": {
			{Name: "product_id", Comment: "Unique product identifier"},
			{Name: "product_name", Comment: "Product display name"},
			{Name: "description", Comment: "Product description"},
			{Name: "price", Comment: "Price in USD"},
			{Name: "category", Comment: "Product category"},
			{Name: "stock_quantity", Comment: "Available stock quantity"},
		},
		"items": {
			{Name: "item_id"},
			{Name: "item_name"},
			{Name: "desc"},
			{Name: "price"},
			{Name: "category_id"},
			{Name: "qty"},
		},
	}}
}

func (s *demoStore) Columns(ref tableRef) ([]ColumnMeta, error) {
	return s.tables[strings.ToLower(ref.Table)], nil
}

func (s *demoStore) SetComment(ref tableRef, column, comment string) error {
	slog.Info("demo mode, comment not persisted",
		"table", ref.String(), "column", column, "comment", comment)
	return nil
}

func (s *demoStore) Close() error {
	return nil
}
