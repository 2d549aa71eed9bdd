package catalog

import (
	"testing"

	"monbillet/models"
)

func fixtureTrips() []models.Trip {
	return []models.Trip{
		{TripID: "a", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo"},
		{TripID: "b", Origin: "Abidjan (Yopougon)", Destination: "Korhogo"},
		{TripID: "c", Origin: "Abidjan", Destination: "Yamoussoukro"},
		{TripID: "d", Origin: "Korhogo", Destination: "Abidjan (Abobo)"},
		{TripID: "e", Origin: "Bouaké", Destination: "Korhogo"},
	}
}

func ids(trips []models.Trip) []string {
	out := make([]string, len(trips))
	for i, t := range trips {
		out[i] = t.TripID
	}
	return out
}

func TestFilterMatchesBaseCity(t *testing.T) {
	got := FilterTrips(fixtureTrips(), TripQuery{Origin: "Abidjan", Destination: "Korhogo", Date: "2026-09-15"})
	want := map[string]bool{"a": true, "b": true}
	if len(got) != len(want) {
		t.Fatalf("matched %v, want a and b", ids(got))
	}
	for _, trip := range got {
		if !want[trip.TripID] {
			t.Errorf("unexpected match %s", trip.TripID)
		}
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := FilterTrips(fixtureTrips(), TripQuery{Origin: "abidjan", Destination: "KORHOGO", Date: "2026-09-15"})
	if len(got) != 2 {
		t.Errorf("matched %v, want 2 trips", ids(got))
	}
}

func TestFilterStationNarrows(t *testing.T) {
	q := TripQuery{Origin: "Abidjan", OriginStation: "Yopougon", Destination: "Korhogo", Date: "2026-09-15"}
	got := FilterTrips(fixtureTrips(), q)
	if len(got) != 1 || got[0].TripID != "b" {
		t.Errorf("matched %v, want only b", ids(got))
	}
}

func TestFilterUnknownCityYieldsEmpty(t *testing.T) {
	got := FilterTrips(fixtureTrips(), TripQuery{Origin: "Abidjan", Destination: "Mars", Date: "2026-09-15"})
	if len(got) != 0 {
		t.Errorf("matched %v, want none", ids(got))
	}
	if got == nil {
		t.Error("result must be an empty slice, not nil")
	}
}

func TestFilterNoSubstringMatching(t *testing.T) {
	trips := []models.Trip{{TripID: "x", Origin: "Grand-Bassam", Destination: "Abidjan"}}
	got := FilterTrips(trips, TripQuery{Origin: "Bassam", Destination: "Abidjan", Date: "2026-09-15"})
	if len(got) != 0 {
		t.Errorf("partial city name matched %v", ids(got))
	}
}

func TestQueryValidate(t *testing.T) {
	cases := []struct {
		name string
		q    TripQuery
		want error
	}{
		{"missing date", TripQuery{Origin: "Abidjan", OriginStation: "Abobo", Destination: "Korhogo"}, ErrIncompleteQuery},
		{"missing destination", TripQuery{Origin: "Korhogo", Date: "2026-09-15"}, ErrIncompleteQuery},
		{"same city", TripQuery{Origin: "Korhogo", Destination: "korhogo", Date: "2026-09-15"}, ErrSameCity},
		{"abidjan without station", TripQuery{Origin: "Abidjan", Destination: "Korhogo", Date: "2026-09-15"}, ErrStationRequired},
		{"abidjan destination without station", TripQuery{Origin: "Korhogo", Destination: "Abidjan", Date: "2026-09-15"}, ErrStationRequired},
		{"valid", TripQuery{Origin: "Abidjan", OriginStation: "Abobo", Destination: "Korhogo", Date: "2026-09-15"}, nil},
		{"valid without abidjan", TripQuery{Origin: "Bouaké", Destination: "Korhogo", Date: "2026-09-15"}, nil},
	}
	for _, c := range cases {
		if err := c.q.Validate(); err != c.want {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}
}

func TestSeedTripsReferenceSeededCompanies(t *testing.T) {
	known := map[string]bool{}
	for _, c := range SeedCompanies {
		known[c.CompanyID] = true
	}
	for _, trip := range SeedTrips {
		if !known[trip.CompanyID] {
			t.Errorf("trip %s references unknown company %s", trip.TripID, trip.CompanyID)
		}
		if trip.SeatCount != 44 && trip.SeatCount != 70 {
			t.Errorf("trip %s has seat count %d", trip.TripID, trip.SeatCount)
		}
	}
}
