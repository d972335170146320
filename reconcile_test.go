package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	source := []ColumnMeta{
		{Name: "customer_id", Comment: "Unique customer identifier"},
		{Name: "first_name", Comment: "Customer first name"},
		{Name: "last_name", Comment: "Customer last name"},
		{Name: "email", Comment: "Email address"},
	}
	target := []ColumnMeta{
		{Name: "user_id"},
		{Name: "firstname"},
		{Name: "lastname"},
		{Name: "email_addr"},
		{Name: "status", Comment: "User status"},
	}

	rows := reconcile(source, target, defaultThreshold)

	want := []DecisionRow{
		{Apply: true, TargetColumn: "user_id"},
		{Apply: true, TargetColumn: "firstname", SourceColumn: "first_name",
			SourceComment: "Customer first name", ProposedComment: "Customer first name"},
		{Apply: true, TargetColumn: "lastname", SourceColumn: "last_name",
			SourceComment: "Customer last name", ProposedComment: "Customer last name"},
		{Apply: true, TargetColumn: "email_addr"},
		{Apply: true, TargetColumn: "status", TargetComment: "User status",
			ProposedComment: "User status"},
	}
	assert.Equal(t, want, rows)
}

func TestReconcileSourceConsumedOnce(t *testing.T) {
	source := []ColumnMeta{{Name: "id", Comment: "identifier"}}
	target := []ColumnMeta{{Name: "id"}, {Name: "idx"}}

	rows := reconcile(source, target, defaultThreshold)
	require.Len(t, rows, 2)

	// the earlier target column claims the only source column
	assert.Equal(t, "id", rows[0].SourceColumn)
	assert.Equal(t, "identifier", rows[0].ProposedComment)
	assert.Empty(t, rows[1].SourceColumn)
	assert.Empty(t, rows[1].ProposedComment)
}

func TestReconcileTargetCommentWins(t *testing.T) {
	source := []ColumnMeta{{Name: "email", Comment: "Source address"}}
	target := []ColumnMeta{{Name: "email", Comment: "Target address"}}

	rows := reconcile(source, target, defaultThreshold)
	require.Len(t, rows, 1)
	assert.Equal(t, "email", rows[0].SourceColumn)
	assert.Equal(t, "Target address", rows[0].ProposedComment)
}

func TestReconcileMatchedSourceCommentEmpty(t *testing.T) {
	source := []ColumnMeta{{Name: "email"}}
	target := []ColumnMeta{{Name: "email"}}

	rows := reconcile(source, target, defaultThreshold)
	require.Len(t, rows, 1)
	assert.Equal(t, "email", rows[0].SourceColumn)
	assert.Empty(t, rows[0].ProposedComment)
}

func TestReconcileEmptyTables(t *testing.T) {
	assert.Empty(t, reconcile(nil, nil, defaultThreshold))
	assert.Empty(t, reconcile([]ColumnMeta{{Name: "a"}}, nil, defaultThreshold))

	rows := reconcile(nil, []ColumnMeta{{Name: "a"}, {Name: "b"}}, defaultThreshold)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.True(t, row.Apply)
		assert.Empty(t, row.SourceColumn)
	}
}

func TestReconcileDuplicateSourceNameFirstWins(t *testing.T) {
	source := []ColumnMeta{
		{Name: "id", Comment: "first"},
		{Name: "id", Comment: "second"},
	}
	target := []ColumnMeta{{Name: "id"}}

	rows := reconcile(source, target, defaultThreshold)
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].ProposedComment)
}

func TestReconcileDemoTables(t *testing.T) {
	store := newDemoStore()
	customers, err := store.Columns(tableRef{Table: "customers"})
	require.NoError(t, err)
	users, err := store.Columns(tableRef{Table: "users"})
	require.NoError(t, err)

	rows := reconcile(customers, users, defaultThreshold)
	require.Len(t, rows, len(users))

	matched := map[string]string{}
	for _, row := range rows {
		if row.SourceColumn != "" {
			matched[row.TargetColumn] = row.SourceColumn
		}
	}
	assert.Equal(t, map[string]string{
		"firstname": "first_name",
		"lastname":  "last_name",
	}, matched)

	// status keeps its own documentation
	assert.Equal(t, "Account status (active/inactive)", rows[len(rows)-1].ProposedComment)
}
