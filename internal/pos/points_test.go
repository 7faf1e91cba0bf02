package pos

import "testing"

func TestPointsEarned(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{10000, 1000},
		{10001, 1001}, // ceil
		{10009, 1001},
		{10010, 1001},
		{99999, 10000},
	}
	for _, tt := range tests {
		if got := pointsEarned(tt.total); got != tt.want {
			t.Errorf("pointsEarned(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestEarnsPoints(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		memberID string
		want     bool
	}{
		{"aboveThresholdWithMember", 10000, "m-1", true},
		{"belowThreshold", 9999, "m-1", false},
		{"noMember", 50000, "", false},
		{"exactThreshold", 10000, "m-1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := earnsPoints(tt.total, tt.memberID); got != tt.want {
				t.Errorf("earnsPoints(%d, %q) = %v, want %v", tt.total, tt.memberID, got, tt.want)
			}
		})
	}
}
