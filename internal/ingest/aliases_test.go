package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliasTableResolve(t *testing.T) {
	aliases := DefaultAliases()

	tests := []struct {
		name      string
		row       Row
		field     string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "first alias wins",
			row:       Row{"Domain": "example.com", "Name": "Shadowed"},
			field:     FieldName,
			wantValue: "example.com",
			wantOK:    true,
		},
		{
			name:      "lowercase alias matches",
			row:       Row{"domain": "example.org"},
			field:     FieldName,
			wantValue: "example.org",
			wantOK:    true,
		},
		{
			name:      "legacy BIN header maps to name",
			row:       Row{"BIN": "453201"},
			field:     FieldName,
			wantValue: "453201",
			wantOK:    true,
		},
		{
			name:      "legacy city header maps to country",
			row:       Row{"city": "Hamburg"},
			field:     FieldCountry,
			wantValue: "Hamburg",
			wantOK:    true,
		},
		{
			name:   "no alias present",
			row:    Row{"Unrelated": "value"},
			field:  FieldName,
			wantOK: false,
		},
		{
			name:   "empty value does not match",
			row:    Row{"Domain": "   "},
			field:  FieldName,
			wantOK: false,
		},
		{
			name:      "empty value falls through to next alias",
			row:       Row{"Domain": "", "name": "fallthrough.com"},
			field:     FieldName,
			wantValue: "fallthrough.com",
			wantOK:    true,
		},
		{
			name:      "value is trimmed",
			row:       Row{"Price": " 1000 "},
			field:     FieldPrice,
			wantValue: "1000",
			wantOK:    true,
		},
		{
			name:   "unknown field resolves nothing",
			row:    Row{"Domain": "example.com"},
			field:  "nonexistent",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := aliases.Resolve(tt.row, tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestAliasTableIsConfigurable(t *testing.T) {
	custom := AliasTable{
		FieldName: {"SKU", "sku"},
	}

	got, ok := custom.Resolve(Row{"SKU": "W-100"}, FieldName)
	assert.True(t, ok)
	assert.Equal(t, "W-100", got)

	// Headers from the default table are not recognized by a custom table.
	_, ok = custom.Resolve(Row{"Domain": "example.com"}, FieldName)
	assert.False(t, ok)
}
