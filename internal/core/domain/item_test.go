package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"on", StatusOnList},
		{"todo", StatusOnList},
		{"0", StatusOnList},
		{"done", StatusOffList},
		{"off", StatusOffList},
		{"1", StatusOffList},
		{" Done ", StatusOffList},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "maybe", "2", "-1"} {
		_, err := ParseStatus(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "on list", StatusOnList.String())
	assert.Equal(t, "done", StatusOffList.String())
	assert.Equal(t, "status(7)", Status(7).String())
}

func TestColumns_AllowList(t *testing.T) {
	assert.Equal(t, []string{"id", "item", "status", "created_at", "modified_at"}, Columns())

	for _, c := range Columns() {
		assert.True(t, IsColumn(c), c)
	}
	assert.False(t, IsColumn("password"))
	assert.False(t, IsColumn("ID"))

	// Callers cannot mutate the allow-list.
	cols := Columns()
	cols[0] = "hacked"
	assert.Equal(t, "id", Columns()[0])
}

func TestItemValues_IsEmpty(t *testing.T) {
	assert.True(t, ItemValues{}.IsEmpty())

	label := "Milk"
	assert.False(t, ItemValues{Label: &label}.IsEmpty())

	status := StatusOffList
	assert.False(t, ItemValues{Status: &status}.IsEmpty())
}
