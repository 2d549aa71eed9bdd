package catalog

import "monbillet/models"

var IvorianCities = []string{
	"Abengourou",
	"Abidjan",
	"Agnibilékrou",
	"Assinie",
	"Bondoukou",
	"Bouaké",
	"Boundiali",
	"Daloa",
	"Divo",
	"Ferkessédougou",
	"Gagnoa",
	"Grand-Bassam",
	"Korhogo",
	"Man",
	"Odiénné",
	"San-Pédro",
	"Seguela",
	"Soubré",
	"Tanda",
	"Tingrela",
	"Yamoussoukro",
}

var AbidjanCommunes = []string{
	"Abobo",
	"Adjamé (Gare Centrale)",
	"Anyama",
	"Attécoubé",
	"Cocody",
	"Koumassi",
	"Marcory",
	"Plateau",
	"Port-Bouët",
	"Songon",
	"Treichville",
	"Yopougon",
}

var SeedCompanies = []models.Company{
	{CompanyID: "utb", Name: "UTB", Logo: "https://picsum.photos/seed/utb/100/100", Rating: 4.5, Type: "TRANSPORT"},
	{CompanyID: "avs", Name: "AVS", Logo: "https://picsum.photos/seed/avs/100/100", Rating: 4.2, Type: "BOTH"},
	{CompanyID: "gti", Name: "GTI", Logo: "https://picsum.photos/seed/gti/100/100", Rating: 4.0, Type: "TRANSPORT"},
	{CompanyID: "sixt_ci", Name: "Elite Rentals CI", Logo: "https://picsum.photos/seed/rent/100/100", Rating: 4.8, Type: "RENTAL"},

	// Compagnies du Nord (Korhogo / Tingrela)
	{CompanyID: "leopard", Name: "Léopard", Logo: "https://picsum.photos/seed/leo/100/100", Rating: 4.3, Type: "TRANSPORT"},
	{CompanyID: "utrako", Name: "UTRAKO", Logo: "https://picsum.photos/seed/utr/100/100", Rating: 4.1, Type: "TRANSPORT"},
	{CompanyID: "mtk", Name: "MTK", Logo: "https://picsum.photos/seed/mtk/100/100", Rating: 4.5, Type: "TRANSPORT"},
	{CompanyID: "chonco", Name: "Chonco", Logo: "https://picsum.photos/seed/cho/100/100", Rating: 4.0, Type: "TRANSPORT"},
	{CompanyID: "ck_transport", Name: "CK Transport", Logo: "https://picsum.photos/seed/ckk/100/100", Rating: 4.4, Type: "TRANSPORT"},
	{CompanyID: "uts", Name: "UTS (Universal)", Logo: "https://picsum.photos/seed/uts/100/100", Rating: 4.2, Type: "TRANSPORT"},
	{CompanyID: "sito", Name: "SITO", Logo: "https://picsum.photos/seed/sit/100/100", Rating: 3.9, Type: "TRANSPORT"},
	{CompanyID: "mk_transport", Name: "MK Transport", Logo: "https://picsum.photos/seed/mkt/100/100", Rating: 4.2, Type: "TRANSPORT"},

	{CompanyID: "art_luxury", Name: "ART Luxury Bus", Logo: "https://picsum.photos/seed/art/100/100", Rating: 4.9, Type: "TRANSPORT"},
	{CompanyID: "sbta", Name: "SBTA", Logo: "https://picsum.photos/seed/sbt/100/100", Rating: 4.4, Type: "TRANSPORT"},
}

var SeedTrips = []models.Trip{
	// ABIDJAN -> KORHOGO
	{TripID: "k-leo-1", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "06:30", ArrivalTime: "15:30", Price: 10000, CompanyID: "leopard", AvailableSeats: 12, VehicleName: "Léopard Express", SeatCount: 70},
	{TripID: "k-utr-1", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "07:00", ArrivalTime: "16:00", Price: 10000, CompanyID: "utrako", AvailableSeats: 25, VehicleName: "UTRAKO Confort", SeatCount: 70},
	{TripID: "k-mtk-1", Origin: "Abidjan (Yopougon)", Destination: "Korhogo", DepartureTime: "08:00", ArrivalTime: "17:00", Price: 9500, CompanyID: "mtk", AvailableSeats: 8, VehicleName: "MTK Éco", SeatCount: 44},
	{TripID: "k-cho-1", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "06:00", ArrivalTime: "15:00", Price: 10000, CompanyID: "chonco", AvailableSeats: 35, VehicleName: "Chonco Trans", SeatCount: 70},
	{TripID: "k-ck-1", Origin: "Abidjan (Abobo)", Destination: "Korhogo", DepartureTime: "05:30", ArrivalTime: "14:30", Price: 10000, CompanyID: "ck_transport", AvailableSeats: 15, VehicleName: "CK Premium", SeatCount: 44},
	{TripID: "k-uts-1", Origin: "Abidjan (Koumassi)", Destination: "Korhogo", DepartureTime: "07:30", ArrivalTime: "16:30", Price: 11000, CompanyID: "uts", AvailableSeats: 22, VehicleName: "UTS Global", SeatCount: 70},
	{TripID: "k-mtk-2", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "10:00", ArrivalTime: "19:00", Price: 9500, CompanyID: "mtk", AvailableSeats: 45, VehicleName: "MTK Éco", SeatCount: 70},
	{TripID: "k-leo-2", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "13:00", ArrivalTime: "22:00", Price: 10000, CompanyID: "leopard", AvailableSeats: 5, VehicleName: "Léopard Night", SeatCount: 70},
	{TripID: "k-uts-2", Origin: "Abidjan (Adjamé (Gare Centrale))", Destination: "Korhogo", DepartureTime: "08:45", ArrivalTime: "17:45", Price: 11000, CompanyID: "uts", AvailableSeats: 18, VehicleName: "UTS Global", SeatCount: 70},

	// KORHOGO -> ABIDJAN (retour)
	{TripID: "rk-leo-1", Origin: "Korhogo", Destination: "Abidjan (Adjamé (Gare Centrale))", DepartureTime: "06:30", ArrivalTime: "15:30", Price: 10000, CompanyID: "leopard", AvailableSeats: 30, SeatCount: 70},
	{TripID: "rk-utr-1", Origin: "Korhogo", Destination: "Abidjan (Adjamé (Gare Centrale))", DepartureTime: "07:00", ArrivalTime: "16:00", Price: 10000, CompanyID: "utrako", AvailableSeats: 14, SeatCount: 70},
	{TripID: "rk-mtk-1", Origin: "Korhogo", Destination: "Abidjan (Yopougon)", DepartureTime: "08:00", ArrivalTime: "17:00", Price: 9500, CompanyID: "mtk", AvailableSeats: 20, SeatCount: 44},
	{TripID: "rk-cho-1", Origin: "Korhogo", Destination: "Abidjan (Adjamé (Gare Centrale))", DepartureTime: "06:00", ArrivalTime: "15:00", Price: 10000, CompanyID: "chonco", AvailableSeats: 28, SeatCount: 70},
	{TripID: "rk-ck-1", Origin: "Korhogo", Destination: "Abidjan (Abobo)", DepartureTime: "05:30", ArrivalTime: "14:30", Price: 10000, CompanyID: "ck_transport", AvailableSeats: 5, SeatCount: 44},
	{TripID: "rk-uts-1", Origin: "Korhogo", Destination: "Abidjan (Koumassi)", DepartureTime: "07:30", ArrivalTime: "16:30", Price: 11000, CompanyID: "uts", AvailableSeats: 19, SeatCount: 70},

	// Autres trajets
	{TripID: "t1", Origin: "Abidjan", Destination: "Yamoussoukro", DepartureTime: "08:00", ArrivalTime: "11:00", Price: 5000, CompanyID: "utb", AvailableSeats: 25, SeatCount: 44},
	{TripID: "t2", Origin: "Abidjan", Destination: "Bouaké", DepartureTime: "09:30", ArrivalTime: "14:30", Price: 8000, CompanyID: "avs", AvailableSeats: 12, SeatCount: 44},
	{TripID: "t3", Origin: "Abidjan", Destination: "San-Pédro", DepartureTime: "07:00", ArrivalTime: "13:00", Price: 10000, CompanyID: "gti", AvailableSeats: 18, SeatCount: 44},
	{TripID: "t4", Origin: "Abidjan", Destination: "Odiénné", DepartureTime: "06:00", ArrivalTime: "18:00", Price: 15000, CompanyID: "utb", AvailableSeats: 40, SeatCount: 70},
	{TripID: "t5", Origin: "Abidjan", Destination: "Tingrela", DepartureTime: "05:30", ArrivalTime: "19:30", Price: 18000, CompanyID: "gti", AvailableSeats: 30, SeatCount: 70},
}

var SeedVehicles = []models.Vehicle{
	{VehicleID: "v1", CompanyID: "sixt_ci", Model: "Toyota Prado", Type: models.ServiceCar, Capacity: 5, PricePerDay: 75000, Available: true, Image: "https://images.unsplash.com/photo-1594502184342-2e12f877aa73?auto=format&fit=crop&w=400&q=80"},
	{VehicleID: "v2", CompanyID: "avs", Model: "Mercedes Coaster", Type: models.ServiceMinibus, Capacity: 22, PricePerDay: 150000, Available: true, Image: "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&w=400&q=80"},
	{VehicleID: "v3", CompanyID: "sixt_ci", Model: "Bus Grand Tourisme", Type: models.ServiceBus, Capacity: 60, PricePerDay: 350000, Available: true, Image: "https://images.unsplash.com/photo-1570125909232-eb263c188f7e?auto=format&fit=crop&w=400&q=80"},
}
