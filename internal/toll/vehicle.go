package toll

import "regexp"

// Vehicle identifies a vehicle by its registration plate. Report ordering is
// the plate string's natural lexicographic order.
type Vehicle string

var platePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,11}$`)

// ParsePlate validates and converts a plate token.
func ParsePlate(token string) (Vehicle, bool) {
	if !platePattern.MatchString(token) {
		return "", false
	}
	return Vehicle(token), true
}
