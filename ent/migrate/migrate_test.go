package migrate

import (
	"strings"
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entschema "github.com/abhisek/wordiz/ent/schema"
)

type described interface {
	Fields() []ent.Field
	Indexes() []ent.Index
	Mixin() []ent.Mixin
}

func TestTablesMatchSchema(t *testing.T) {
	tests := []struct {
		name    string
		schema  described
		table   *schema.Table
		implied []string
	}{
		{"attempt", entschema.Attempt{}, AttemptsTable, nil},
		{"llmrequestevent", entschema.LLMRequestEvent{}, LlmRequestEventsTable, []string{"id"}},
		{"worksheet", entschema.Worksheet{}, WorksheetsTable, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fields []ent.Field
			var indexes []ent.Index
			for _, m := range tt.schema.Mixin() {
				fields = append(fields, m.Fields()...)
				indexes = append(indexes, m.Indexes()...)
			}
			fields = append(fields, tt.schema.Fields()...)
			indexes = append(indexes, tt.schema.Indexes()...)

			want := append([]string{}, tt.implied...)
			for _, f := range fields {
				want = append(want, f.Descriptor().Name)
			}
			var got []string
			for _, c := range tt.table.Columns {
				got = append(got, c.Name)
			}
			assert.ElementsMatch(t, want, got, "columns of %s", tt.table.Name)

			for _, idx := range indexes {
				d := idx.Descriptor()
				name := tt.name + "_" + strings.Join(d.Fields, "_")
				ti, ok := tt.table.Index(name)
				require.True(t, ok, "missing index %s", name)
				var cols []string
				for _, c := range ti.Columns {
					cols = append(cols, c.Name)
				}
				assert.Equal(t, d.Fields, cols, "index %s", name)
			}
		})
	}
}

func TestAttemptsCascadeWithWorksheet(t *testing.T) {
	require.Len(t, AttemptsTable.ForeignKeys, 1)
	fk := AttemptsTable.ForeignKeys[0]
	assert.Same(t, WorksheetsTable, fk.RefTable)
	assert.Equal(t, "worksheet_id", fk.Columns[0].Name)
	assert.Equal(t, "id", fk.RefColumns[0].Name)
	assert.Equal(t, schema.Cascade, fk.OnDelete)
}
