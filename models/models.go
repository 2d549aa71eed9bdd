package models

import "time"

// UserRole gates which routes and dashboards a profile can reach.
type UserRole string

const (
	RoleUser           UserRole = "USER"
	RoleCompanyAdmin   UserRole = "COMPANY_ADMIN"
	RoleServicePartner UserRole = "SERVICE_PARTNER"
	RoleGlobalAdmin    UserRole = "GLOBAL_ADMIN"
)

// Gender doubles as the seat attribute used by the social seating
// convention: a selected seat is always tagged MALE or FEMALE.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type ServiceType string

const (
	ServiceHotel      ServiceType = "HOTEL"
	ServiceResidence  ServiceType = "RESIDENCE"
	ServiceRestaurant ServiceType = "RESTAURANT"
	ServiceCar        ServiceType = "CAR"
	ServiceMinibus    ServiceType = "MINIBUS"
	ServiceBus        ServiceType = "BUS"
)

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	FirstName     string    `json:"firstName" bson:"firstname"`
	LastName      string    `json:"lastName" bson:"lastname"`
	Phone         string    `json:"phone" bson:"phone"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Gender        Gender    `json:"gender,omitempty" bson:"gender,omitempty"`
	Role          UserRole  `json:"role" bson:"role"`
	CompanyID     string    `json:"companyId,omitempty" bson:"companyid,omitempty"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"joinDate" bson:"createdat"`
	UpdatedAt     time.Time `json:"-" bson:"updatedat"`
}

type Company struct {
	CompanyID string  `json:"id" bson:"companyid"`
	Name      string  `json:"name" bson:"name"`
	Logo      string  `json:"logo" bson:"logo"`
	Rating    float64 `json:"rating" bson:"rating"`
	Type      string  `json:"type" bson:"type"` // TRANSPORT, SERVICE, BOTH, RENTAL
}

// Trip is immutable once created: company admins create them, the search
// step reads them, the traveler flow never mutates them.
type Trip struct {
	TripID         string    `json:"id" bson:"tripid"`
	Origin         string    `json:"origin" bson:"origin"`
	Destination    string    `json:"destination" bson:"destination"`
	DepartureTime  string    `json:"departureTime" bson:"departuretime"`
	ArrivalTime    string    `json:"arrivalTime" bson:"arrivaltime"`
	Price          int       `json:"price" bson:"price"`
	CompanyID      string    `json:"companyId" bson:"companyid"`
	AvailableSeats int       `json:"availableSeats" bson:"availableseats"`
	VehicleName    string    `json:"vehicleName,omitempty" bson:"vehiclename,omitempty"`
	SeatCount      int       `json:"seatCount" bson:"seatcount"` // 44 or 70
	CreatedAt      time.Time `json:"-" bson:"createdat,omitempty"`
}

type Vehicle struct {
	VehicleID   string      `json:"id" bson:"vehicleid"`
	CompanyID   string      `json:"companyId" bson:"companyid"`
	Model       string      `json:"model" bson:"model"`
	Type        ServiceType `json:"type" bson:"type"`
	Capacity    int         `json:"capacity" bson:"capacity"`
	PricePerDay int         `json:"pricePerDay" bson:"priceperday"`
	Available   bool        `json:"available" bson:"available"`
	Image       string      `json:"image" bson:"image"`
	Thumb       string      `json:"thumb,omitempty" bson:"thumb,omitempty"`
}

type TicketStatus string

const (
	TicketConfirmed TicketStatus = "CONFIRMED"
	TicketUsed      TicketStatus = "USED"
	TicketCancelled TicketStatus = "CANCELLED"
)

// Ticket is the issued artifact: one per paid seat. Cancellation is a
// status mutation, never a deletion.
type Ticket struct {
	TicketID           string       `json:"id" bson:"ticketid"`
	TripID             string       `json:"tripId" bson:"tripid"`
	UserID             string       `json:"-" bson:"userid"`
	PassengerName      string       `json:"passengerName" bson:"passengername"`
	PassengerPhone     string       `json:"passengerPhone" bson:"passengerphone"`
	PassengerIDNumber  string       `json:"passengerIdNumber,omitempty" bson:"passengeridnumber,omitempty"`
	SeatNumber         string       `json:"seatNumber" bson:"seatnumber"`
	Gender             Gender       `json:"gender" bson:"gender"`
	BookingDate        time.Time    `json:"bookingDate" bson:"bookingdate"`
	TravelDate         string       `json:"travelDate" bson:"traveldate"`
	DepartureTime      string       `json:"departureTime" bson:"departuretime"`
	OriginStation      string       `json:"originStation" bson:"originstation"`
	DestinationStation string       `json:"destinationStation" bson:"destinationstation"`
	QRPayload          string       `json:"qrCode" bson:"qrpayload"`
	Status             TicketStatus `json:"status" bson:"status"`
	Price              int          `json:"price" bson:"price"`
	PaymentMethod      string       `json:"paymentMethod,omitempty" bson:"paymentmethod,omitempty"`
}

type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalConfirmed RentalStatus = "confirmed"
	RentalCancelled RentalStatus = "cancelled"
)

type Rental struct {
	RentalID  string       `json:"id" bson:"rentalid"`
	VehicleID string       `json:"vehicleId" bson:"vehicleid"`
	UserID    string       `json:"userId" bson:"userid"`
	StartDate string       `json:"startDate" bson:"startdate"`
	EndDate   string       `json:"endDate" bson:"enddate"`
	Days      int          `json:"days" bson:"days"`
	Total     int          `json:"total" bson:"total"`
	Status    RentalStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdat"`
}

// Index is the envelope published on the Redis event channel whenever a
// domain object changes.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id"`
	ItemType   string `json:"item_type"`
}
