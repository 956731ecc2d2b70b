package Selection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "ok passes through", raw: "OK", want: "OK"},
		{name: "check passes through", raw: "CHECK", want: "CHECK"},
		{name: "repair passes through", raw: "REPAIR", want: "REPAIR"},
		{name: "lowercase is normalized", raw: "check", want: "CHECK"},
		{name: "surrounding whitespace is trimmed", raw: "  repair  ", want: "REPAIR"},
		{name: "unknown value defaults to OK", raw: "BROKEN", want: "OK"},
		{name: "empty defaults to OK", raw: "", want: "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseResult(tt.raw))
		})
	}
}

func TestParseQty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "plain integer", raw: "3", want: 3},
		{name: "whitespace trimmed", raw: " 12 ", want: 12},
		{name: "empty is zero", raw: "", want: 0},
		{name: "garbage is zero", raw: "two", want: 0},
		{name: "decimal is zero", raw: "1.5", want: 0},
		{name: "negative is zero", raw: "-4", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQty(tt.raw))
		})
	}
}

func TestParseCost(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want decimal.Decimal
	}{
		{name: "plain amount", raw: "10.50", want: decimal.RequireFromString("10.50")},
		{name: "integer amount", raw: "7", want: decimal.NewFromInt(7)},
		{name: "empty is zero", raw: "", want: decimal.Zero},
		{name: "garbage is zero", raw: "abc", want: decimal.Zero},
		{name: "negative is zero", raw: "-3.20", want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseCost(tt.raw)), "got %s", ParseCost(tt.raw))
		})
	}
}
