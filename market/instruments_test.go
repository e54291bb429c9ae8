package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "canonical", in: "EURUSD", want: "EURUSD"},
		{name: "lowercase", in: "eurusd", want: "EURUSD"},
		{name: "slash separator", in: "eur/usd", want: "EURUSD"},
		{name: "underscore separator", in: "EUR_USD", want: "EURUSD"},
		{name: "dash separator", in: "gbp-jpy", want: "GBPJPY"},
		{name: "surrounding whitespace", in: "  usdjpy ", want: "USDJPY"},
		{name: "unknown pair", in: "EURXYZ", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "separators only", in: "_/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePair(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
