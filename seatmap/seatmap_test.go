package seatmap

import (
	"reflect"
	"testing"

	"monbillet/models"
)

func TestLayoutSeatCounts(t *testing.T) {
	if got := Layout44.SeatCount(); got != 44 {
		t.Errorf("Layout44.SeatCount() = %d, want 44", got)
	}
	if got := Layout70.SeatCount(); got != 70 {
		t.Errorf("Layout70.SeatCount() = %d, want 70", got)
	}
}

func TestEnumerateCoversEverySeatOnce(t *testing.T) {
	for _, layout := range []Layout{Layout44, Layout70} {
		seats := layout.Enumerate()
		if len(seats) != layout.SeatCount() {
			t.Fatalf("enumerated %d seats, want %d", len(seats), layout.SeatCount())
		}
		seen := map[int]bool{}
		for _, n := range seats {
			if n < 1 || n > layout.SeatCount() {
				t.Errorf("seat %d out of range 1..%d", n, layout.SeatCount())
			}
			if seen[n] {
				t.Errorf("seat %d enumerated twice", n)
			}
			seen[n] = true
		}
	}
}

func TestAisleCellsCarryNoSeat(t *testing.T) {
	for row := 0; row < Layout44.Rows; row++ {
		if n := Layout44.SeatNumberAt(row, Layout44.AisleCol); n != 0 {
			t.Errorf("Layout44 aisle cell (%d,%d) = %d, want 0", row, Layout44.AisleCol, n)
		}
	}
	for col := 0; col < Layout70.Cols; col++ {
		if n := Layout70.SeatNumberAt(Layout70.AisleRow, col); n != 0 {
			t.Errorf("Layout70 aisle cell (%d,%d) = %d, want 0", Layout70.AisleRow, col, n)
		}
	}
}

func TestSeatNumbering44(t *testing.T) {
	// First row: 1, 2, aisle, 3, 4. Second row starts at 5.
	cases := []struct{ row, col, want int }{
		{0, 0, 1}, {0, 1, 2}, {0, 3, 3}, {0, 4, 4},
		{1, 0, 5},
		{10, 4, 44},
	}
	for _, c := range cases {
		if got := Layout44.SeatNumberAt(c.row, c.col); got != c.want {
			t.Errorf("SeatNumberAt(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestSeatNumbering70(t *testing.T) {
	// Seats run down each column, skipping the walkway row.
	cases := []struct{ row, col, want int }{
		{0, 0, 1}, {1, 0, 2}, {3, 0, 3}, {4, 0, 4}, {5, 0, 5},
		{0, 1, 6},
		{5, 13, 70},
	}
	for _, c := range cases {
		if got := Layout70.SeatNumberAt(c.row, c.col); got != c.want {
			t.Errorf("SeatNumberAt(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	trip := models.Trip{TripID: "k-leo-1", AvailableSeats: 12, SeatCount: 70}

	a := Build(trip)
	b := Build(trip)
	if !reflect.DeepEqual(a, b) {
		t.Error("two renders of the same trip differ")
	}

	occupied := 0
	for _, row := range a.Cells {
		for _, cell := range row {
			if cell.Occupied {
				occupied++
				if cell.Gender != models.GenderMale && cell.Gender != models.GenderFemale {
					t.Errorf("occupied seat %d has no gender", cell.Number)
				}
			}
		}
	}
	if occupied != 70-12 {
		t.Errorf("occupied = %d, want %d", occupied, 70-12)
	}
}

func TestBuildDiffersAcrossTrips(t *testing.T) {
	a := Build(models.Trip{TripID: "k-leo-1", AvailableSeats: 30, SeatCount: 44})
	b := Build(models.Trip{TripID: "k-utr-1", AvailableSeats: 30, SeatCount: 44})
	b.TripID = a.TripID
	if reflect.DeepEqual(a, b) {
		t.Error("different trips drew identical occupancy")
	}
}

func TestOccupyOverlay(t *testing.T) {
	trip := models.Trip{TripID: "t1", AvailableSeats: 44, SeatCount: 44}
	m := Build(trip)
	m.Occupy(7, models.GenderFemale)

	found := false
	for _, row := range m.Cells {
		for _, cell := range row {
			if cell.Number == 7 {
				found = true
				if !cell.Occupied || cell.Gender != models.GenderFemale {
					t.Errorf("seat 7 = %+v, want occupied FEMALE", cell)
				}
			}
		}
	}
	if !found {
		t.Fatal("seat 7 missing from grid")
	}
}
