package entity_test

import (
	"testing"

	"github.com/pyama86/safelink/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want entity.Severity
	}{
		{name: "exact", raw: "High", want: entity.SeverityHigh},
		{name: "lowercase", raw: "low", want: entity.SeverityLow},
		{name: "trailing period", raw: "Medium.", want: entity.SeverityMedium},
		{name: "surrounding space", raw: "  High ", want: entity.SeverityHigh},
		{name: "unknown passes through", raw: "Catastrophic", want: entity.Severity("Catastrophic")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ParseSeverity(tt.raw))
		})
	}
}

func TestSeverityRank(t *testing.T) {
	assert.Less(t, entity.SeverityHigh.Rank(), entity.SeverityMedium.Rank())
	assert.Less(t, entity.SeverityMedium.Rank(), entity.SeverityLow.Rank())
	assert.Less(t, entity.SeverityLow.Rank(), entity.Severity("???").Rank())

	// Ranking tolerates the raw classifier output, not just normalized values.
	assert.Equal(t, entity.SeverityHigh.Rank(), entity.Severity("high.").Rank())
}
