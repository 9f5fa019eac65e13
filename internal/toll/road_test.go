package toll

import "testing"

func TestParseRoad(t *testing.T) {
	tests := []struct {
		token string
		want  Road
		ok    bool
	}{
		{"A1", Road{Motorway, 1}, true},
		{"S999", Road{Expressway, 999}, true},
		{"A12", Road{Motorway, 12}, true},
		{"B1", Road{}, false},
		{"a1", Road{}, false},
		{"A0", Road{}, false},
		{"A01", Road{}, false},
		{"A1000", Road{}, false},
		{"A", Road{}, false},
		{"", Road{}, false},
		{" A1", Road{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseRoad(tt.token)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseRoad(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		token string
		want  Distance
		ok    bool
	}{
		{"0,0", 0, true},
		{"0,5", 5, true},
		{"123,4", 1234, true},
		{"1,0", 10, true},
		{"01,2", 0, false},
		{"1,23", 0, false},
		{"1.2", 0, false},
		{"12", 0, false},
		{",3", 0, false},
		{"-1,0", 0, false},
		// units overflow makes the token unparseable, not a crash
		{"99999999999999999999,0", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseMarker(tt.token)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseMarker(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParsePlate(t *testing.T) {
	tests := []struct {
		token string
		ok    bool
	}{
		{"ABC123", true},
		{"abc", true},
		{"A2B4C6D8E0F", true}, // 11 chars, upper bound
		{"AB", false},
		{"A2B4C6D8E0F1", false}, // 12 chars
		{"ABC-12", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParsePlate(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParsePlate(%q) ok = %v; want %v", tt.token, ok, tt.ok)
			}
			if ok && got != Vehicle(tt.token) {
				t.Errorf("ParsePlate(%q) = %q", tt.token, got)
			}
		})
	}
}

// Roads sort by number before type letter: S3 precedes A12.
func TestRoadOrdering(t *testing.T) {
	tests := []struct {
		a, b Road
		less bool
	}{
		{Road{Expressway, 3}, Road{Motorway, 12}, true},
		{Road{Motorway, 12}, Road{Expressway, 3}, false},
		{Road{Motorway, 7}, Road{Expressway, 7}, true},
		{Road{Expressway, 7}, Road{Motorway, 7}, false},
		{Road{Motorway, 7}, Road{Motorway, 7}, false},
		{Road{Motorway, 7}, Road{Motorway, 8}, true},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.less {
			t.Errorf("%v.Less(%v) = %v; want %v", tt.a, tt.b, got, tt.less)
		}
	}
}

func TestDistanceString(t *testing.T) {
	tests := []struct {
		d    Distance
		want string
	}{
		{0, "0,0"},
		{5, "0,5"},
		{10, "1,0"},
		{1234, "123,4"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Distance(%d).String() = %q; want %q", int(tt.d), got, tt.want)
		}
	}
}
