package seatmap

import (
	"hash/fnv"
	"math/rand"

	"monbillet/models"
)

// Layout describes the physical grid of a coach. Exactly one of AisleRow
// or AisleCol is set; the other is -1. Cells on the aisle carry no seat.
type Layout struct {
	Rows     int
	Cols     int
	AisleRow int
	AisleCol int
}

// Layout44 is the standard coach: 11 rows of 2+2 around a center aisle.
var Layout44 = Layout{Rows: 11, Cols: 5, AisleRow: -1, AisleCol: 2}

// Layout70 is the large coach drawn sideways: 14 columns of 5 seats with
// a horizontal walkway on the third row. Seats number down each column.
var Layout70 = Layout{Rows: 6, Cols: 14, AisleRow: 2, AisleCol: -1}

// LayoutFor picks the grid for a trip's coach size, defaulting to the
// 44-seater for anything unrecognized.
func LayoutFor(seatCount int) Layout {
	if seatCount == 70 {
		return Layout70
	}
	return Layout44
}

func (l Layout) seatsPerLine() int {
	if l.AisleCol >= 0 {
		return l.Cols - 1
	}
	return l.Rows - 1
}

// SeatCount is the number of real seats in the grid.
func (l Layout) SeatCount() int {
	if l.AisleCol >= 0 {
		return l.Rows * l.seatsPerLine()
	}
	return l.Cols * l.seatsPerLine()
}

// SeatNumberAt maps a grid cell to its 1-based seat number, or 0 for the
// aisle. Row-oriented layouts number across each row; column-oriented
// layouts number down each column.
func (l Layout) SeatNumberAt(row, col int) int {
	if row < 0 || row >= l.Rows || col < 0 || col >= l.Cols {
		return 0
	}
	if l.AisleCol >= 0 {
		if col == l.AisleCol {
			return 0
		}
		c := col
		if c > l.AisleCol {
			c--
		}
		return row*l.seatsPerLine() + c + 1
	}
	if row == l.AisleRow {
		return 0
	}
	r := row
	if r > l.AisleRow {
		r--
	}
	return col*l.seatsPerLine() + r + 1
}

// Enumerate lists every seat number in grid order.
func (l Layout) Enumerate() []int {
	seats := make([]int, 0, l.SeatCount())
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			if n := l.SeatNumberAt(row, col); n > 0 {
				seats = append(seats, n)
			}
		}
	}
	return seats
}

// Cell is one grid position in the rendered map. Number 0 marks the aisle.
type Cell struct {
	Number   int           `json:"number"`
	Occupied bool          `json:"occupied"`
	Gender   models.Gender `json:"gender,omitempty"`
}

// Map is the seat grid a client renders for the seat-selection step.
type Map struct {
	TripID string   `json:"tripId"`
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Cells  [][]Cell `json:"cells"`
}

// Build renders the mock occupancy for a trip. The occupied seats and
// their genders derive from a PRNG seeded on the trip id, so every call
// for the same trip draws the same picture. Seats sold through the booking
// flow are layered on afterwards by the handler.
func Build(trip models.Trip) Map {
	layout := LayoutFor(trip.SeatCount)
	occupied := mockOccupancy(trip, layout)

	m := Map{
		TripID: trip.TripID,
		Rows:   layout.Rows,
		Cols:   layout.Cols,
		Cells:  make([][]Cell, layout.Rows),
	}
	for row := 0; row < layout.Rows; row++ {
		m.Cells[row] = make([]Cell, layout.Cols)
		for col := 0; col < layout.Cols; col++ {
			n := layout.SeatNumberAt(row, col)
			cell := Cell{Number: n}
			if g, ok := occupied[n]; ok && n > 0 {
				cell.Occupied = true
				cell.Gender = g
			}
			m.Cells[row][col] = cell
		}
	}
	return m
}

// Occupy marks one seat taken, used to overlay sold tickets.
func (m *Map) Occupy(seat int, gender models.Gender) {
	for row := range m.Cells {
		for col := range m.Cells[row] {
			if m.Cells[row][col].Number == seat {
				m.Cells[row][col].Occupied = true
				m.Cells[row][col].Gender = gender
				return
			}
		}
	}
}

func mockOccupancy(trip models.Trip, layout Layout) map[int]models.Gender {
	total := layout.SeatCount()
	taken := total - trip.AvailableSeats
	if taken < 0 {
		taken = 0
	}
	if taken > total {
		taken = total
	}

	h := fnv.New64a()
	h.Write([]byte(trip.TripID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	seats := layout.Enumerate()
	rng.Shuffle(len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })

	occupied := make(map[int]models.Gender, taken)
	for _, s := range seats[:taken] {
		g := models.GenderMale
		if rng.Intn(2) == 1 {
			g = models.GenderFemale
		}
		occupied[s] = g
	}
	return occupied
}
