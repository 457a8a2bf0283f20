package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		prefix string
		want   string
	}{
		{
			name:   "empty set starts at one",
			ids:    nil,
			prefix: "P",
			want:   "P001",
		},
		{
			name:   "increments the highest suffix",
			ids:    []string{"MED001", "MED002", "MED017"},
			prefix: "MED",
			want:   "MED018",
		},
		{
			name:   "gaps are not reused",
			ids:    []string{"APPT001", "APPT005"},
			prefix: "APPT",
			want:   "APPT006",
		},
		{
			name:   "longer prefixes do not leak into shorter ones",
			ids:    []string{"PH001", "PH002"},
			prefix: "P",
			want:   "P001",
		},
		{
			name:   "shorter prefixes do not leak into longer ones",
			ids:    []string{"P009", "PH002"},
			prefix: "PH",
			want:   "PH003",
		},
		{
			name:   "mixed prefixes in a shared store",
			ids:    []string{"D001", "PH001", "A003", "D007"},
			prefix: "D",
			want:   "D008",
		},
		{
			name:   "non-numeric suffixes are skipped",
			ids:    []string{"P001", "Pabc", "P_02"},
			prefix: "P",
			want:   "P002",
		},
		{
			name:   "four digit suffixes keep their width",
			ids:    []string{"NOTI1042"},
			prefix: "NOTI",
			want:   "NOTI1043",
		},
		{
			name:   "rollover past padding is not truncated",
			ids:    []string{"INV999"},
			prefix: "INV",
			want:   "INV1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.ids, tt.prefix))
		})
	}
}

func TestNextIsMonotonic(t *testing.T) {
	ids := []string{}
	prev := ""
	for i := 0; i < 20; i++ {
		next := Next(ids, "PRSC")
		assert.Greater(t, next, prev)
		ids = append(ids, next)
		prev = next
	}
	assert.Equal(t, "PRSC020", prev)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "P001", Format("P", 1))
	assert.Equal(t, "MED042", Format("MED", 42))
	assert.Equal(t, "APPT12345", Format("APPT", 12345))
}
