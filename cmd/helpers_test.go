package cmd

import "testing"

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"540", 540, false},
		{"-1", 0, true},
		{"12.5", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCoordinate("x", tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCoordinate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCoordinate(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
