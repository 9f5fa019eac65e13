package toll

import (
	"fmt"
	"regexp"
	"strconv"
)

// RoadType is the toll category letter of a numbered road.
type RoadType byte

const (
	Motorway   RoadType = 'A'
	Expressway RoadType = 'S'
)

// Road identifies a numbered toll road such as A2 or S17. Roads compare
// structurally and are used directly as map keys.
type Road struct {
	Type   RoadType
	Number int
}

var roadPattern = regexp.MustCompile(`^(A|S)([1-9][0-9]{0,2})$`)

// ParseRoad validates and converts a road token. Numbers run 1-999 with no
// leading zero.
func ParseRoad(token string) (Road, bool) {
	m := roadPattern.FindStringSubmatch(token)
	if m == nil {
		return Road{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Road{}, false
	}
	return Road{Type: RoadType(m[1][0]), Number: n}, true
}

func (r Road) String() string {
	return fmt.Sprintf("%c%d", r.Type, r.Number)
}

// Less is the canonical report ordering for roads: number ascending, then
// type letter ascending. The number sorts before the letter, so S3 precedes
// A12.
func (r Road) Less(other Road) bool {
	if r.Number != other.Number {
		return r.Number < other.Number
	}
	return r.Type < other.Type
}

// Distance is a marker position or traveled distance in tenths of a unit.
type Distance int

var markerPattern = regexp.MustCompile(`^(0|[1-9][0-9]*),([0-9])$`)

// ParseMarker converts a "D,d" marker token into tenths. A units part too
// large for int fails the parse, which makes the whole line malformed.
func ParseMarker(token string) (Distance, bool) {
	m := markerPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	units, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return Distance(units*10 + int(m[2][0]-'0')), true
}

// String renders the distance in marker form, integer units and one decimal
// digit.
func (d Distance) String() string {
	return fmt.Sprintf("%d,%d", d/10, d%10)
}
