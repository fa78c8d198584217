package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisorder_AffectedSplit(t *testing.T) {
	tests := []struct {
		name   string
		global *GlobalPrevalence
		want   *AffectedPopulation
	}{
		{"no global data", nil, nil},
		{"empty figures", &GlobalPrevalence{}, nil},
		{
			name:   "adults and children",
			global: &GlobalPrevalence{TotalAffected2019Millions: 301, ChildrenAdolescentsAffected2019Millions: 58},
			want:   &AffectedPopulation{Adults: 243, ChildrenAdolescents: 58, Total: 301},
		},
		{
			name:   "total only",
			global: &GlobalPrevalence{TotalAffectedMillions: 280},
			want:   &AffectedPopulation{Total: 280},
		},
		{
			name:   "split needs both figures",
			global: &GlobalPrevalence{TotalAffected2019Millions: 301, TotalAffectedMillions: 290},
			want:   &AffectedPopulation{Total: 290},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Disorder{PrevalenceData: PrevalenceData{Global: tt.global}}
			assert.Equal(t, tt.want, d.AffectedSplit())
		})
	}
}
