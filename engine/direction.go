package engine

// Direction is a keypad neighbour: 7 8 9 / 4 . 6 / 1 2 3, with row growing downward
type Direction uint8

const (
	SouthWest Direction = 1
	South     Direction = 2
	SouthEast Direction = 3
	West      Direction = 4
	East      Direction = 6
	NorthWest Direction = 7
	North     Direction = 8
	NorthEast Direction = 9
)

// Directions lists the eight keypad neighbours in keypad order
var Directions = [8]Direction{SouthWest, South, SouthEast, West, East, NorthWest, North, NorthEast}

var directionDeltas = [10][2]int{
	SouthWest: {1, -1},
	South:     {1, 0},
	SouthEast: {1, 1},
	West:      {0, -1},
	East:      {0, 1},
	NorthWest: {-1, -1},
	North:     {-1, 0},
	NorthEast: {-1, 1},
}

// Valid reports whether d is one of the eight neighbours
func (d Direction) Valid() bool {
	return d >= 1 && d <= 9 && d != 5
}

// Delta returns the row and column offset of d
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.Valid() {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// Inverse returns the opposite direction; keypad opposites sum to 10
func (d Direction) Inverse() Direction {
	return 10 - d
}
