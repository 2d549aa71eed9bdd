package utils

import (
	rndm "math/rand"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")
var upperRunes = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// GenerateID creates a random id of length n, used for trips, rentals etc.
func GenerateID(n int) string {
	return GenerateRandomString(n)
}

// GenerateTicketID creates ids shaped like TCK-9F3A2B.
func GenerateTicketID() string {
	b := make([]rune, 6)
	for i := range b {
		b[i] = upperRunes[rndm.Intn(len(upperRunes))]
	}
	return "TCK-" + string(b)
}

// BaseCity strips a station qualifier: "Abidjan (Yopougon)" -> "Abidjan".
func BaseCity(city string) string {
	if i := strings.Index(city, " ("); i > 0 {
		return city[:i]
	}
	return strings.TrimSpace(city)
}

// StationOf extracts the qualifier: "Abidjan (Yopougon)" -> "Yopougon".
func StationOf(city string) string {
	start := strings.Index(city, " (")
	if start < 0 || !strings.HasSuffix(city, ")") {
		return ""
	}
	return city[start+2 : len(city)-1]
}
