package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_DefaultRules(t *testing.T) {
	tests := []struct {
		name string
		note string
		want []string
	}{
		{"rule order not note order", "I feel so tired and sad today", []string{"😢", "😴"}},
		{"case insensitive", "WONDERFUL day", []string{"😊"}},
		{"substring match", "I was unwell", []string{"🤒"}},
		{"unhappy also matches happy", "unhappy", []string{"😊", "😢"}},
		{"no match", "just a day", []string{}},
		{"empty note", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.note, DefaultRules)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest_CustomRules(t *testing.T) {
	coffee, err := NewRule("coffee|espresso", "☕")
	require.NoError(t, err)

	assert.Equal(t, []string{"☕"}, Suggest("Espresso time", []Rule{coffee}))
	assert.Empty(t, Suggest("tea time", []Rule{coffee}))
}

func TestNewRule_InvalidPattern(t *testing.T) {
	_, err := NewRule("(unclosed", "x")

	assert.Error(t, err)
}

func TestDefaultRules_Count(t *testing.T) {
	assert.Len(t, DefaultRules, 8)
}
