package catalog

import (
	"errors"
	"strings"

	"monbillet/models"
	"monbillet/utils"
)

// TripQuery carries the search form. Origin and Destination are base city
// names; the station fields are only meaningful when the city is Abidjan.
type TripQuery struct {
	Origin             string `json:"origin"`
	OriginStation      string `json:"originStation"`
	Destination        string `json:"destination"`
	DestinationStation string `json:"destinationStation"`
	Date               string `json:"date"`
}

var (
	ErrIncompleteQuery = errors.New("origin, destination and date are required")
	ErrSameCity        = errors.New("origin and destination must differ")
	ErrStationRequired = errors.New("a station is required for Abidjan")
)

// Validate mirrors the search form rules: all three fields filled, distinct
// cities, and an explicit station whenever an endpoint is Abidjan.
func (q TripQuery) Validate() error {
	if q.Origin == "" || q.Destination == "" || q.Date == "" {
		return ErrIncompleteQuery
	}
	if strings.EqualFold(q.Origin, q.Destination) {
		return ErrSameCity
	}
	if strings.EqualFold(q.Origin, "Abidjan") && q.OriginStation == "" {
		return ErrStationRequired
	}
	if strings.EqualFold(q.Destination, "Abidjan") && q.DestinationStation == "" {
		return ErrStationRequired
	}
	return nil
}

// FilterTrips keeps trips whose endpoints match the query city for city,
// ignoring case and station qualifiers. A station in the query narrows the
// result to trips that serve that station or carry no station at all. Every
// lookup is a linear scan of the table; an unknown city simply yields an
// empty slice.
func FilterTrips(trips []models.Trip, q TripQuery) []models.Trip {
	out := []models.Trip{}
	for _, t := range trips {
		if !cityMatch(t.Origin, q.Origin, q.OriginStation) {
			continue
		}
		if !cityMatch(t.Destination, q.Destination, q.DestinationStation) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func cityMatch(endpoint, city, station string) bool {
	if !strings.EqualFold(utils.BaseCity(endpoint), utils.BaseCity(city)) {
		return false
	}
	if station == "" {
		return true
	}
	got := utils.StationOf(endpoint)
	return got == "" || strings.EqualFold(got, station)
}
