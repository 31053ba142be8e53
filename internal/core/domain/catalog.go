package domain

// VehicleTypes lists the accepted vehicle categories for a violation record
var VehicleTypes = []string{
	"Car",
	"Motorcycle",
	"Truck",
	"Bus",
	"Van",
	"SUV",
	"Pickup Truck",
	"Bicycle",
}

// ViolationTypes lists the accepted infraction categories
var ViolationTypes = []string{
	"Speeding",
	"Illegal Parking",
	"Running Red Light",
	"No License",
	"No Registration",
	"DUI (Driving Under Influence)",
	"Reckless Driving",
	"No Insurance",
	"Expired License",
	"Improper Lane Change",
	"No Seatbelt",
	"Using Phone While Driving",
	"Illegal U-Turn",
	"Overloading",
	"Tinted Windows",
	"Modified Exhaust",
	"No Helmet (Motorcycle)",
	"Other",
}

// DefaultFines maps each violation type to its suggested fine amount
var DefaultFines = map[string]float64{
	"Speeding":                      150.00,
	"Illegal Parking":               50.00,
	"Running Red Light":             200.00,
	"No License":                    300.00,
	"No Registration":               250.00,
	"DUI (Driving Under Influence)": 1000.00,
	"Reckless Driving":              500.00,
	"No Insurance":                  400.00,
	"Expired License":               100.00,
	"Improper Lane Change":          75.00,
	"No Seatbelt":                   100.00,
	"Using Phone While Driving":     150.00,
	"Illegal U-Turn":                75.00,
	"Overloading":                   200.00,
	"Tinted Windows":                100.00,
	"Modified Exhaust":              150.00,
	"No Helmet (Motorcycle)":        100.00,
	"Other":                         100.00,
}

// MaxFineAmount is the upper bound accepted for fine_amount
const MaxFineAmount = 999999.99

// Field length limits enforced at the service boundary
const (
	MaxPlateLength    = 20
	MaxLocationLength = 255
	MaxOfficerLength  = 100
	MaxNotesLength    = 1000
)

// IsValidVehicleType reports whether v is one of the known vehicle types
func IsValidVehicleType(v string) bool {
	for _, t := range VehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsValidViolationType reports whether v is one of the known violation types
func IsValidViolationType(v string) bool {
	for _, t := range ViolationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DefaultFine returns the suggested fine for a violation type
func DefaultFine(violationType string) float64 {
	if fine, ok := DefaultFines[violationType]; ok {
		return fine
	}
	return 100.00
}
