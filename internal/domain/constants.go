package domain

// Platform-wide rental limits
const (
	// MaxRentalDurationHours платформенный потолок длительности аренды
	// Действует, если владелец не задал собственный maxDurationHours
	MaxRentalDurationHours = 24

	MaxListingNameLength = 100
	MaxFeatureLength     = 50
	MaxFeaturesCount     = 10

	MaxCancellationReasonLength = 500
)

// VehicleTypeAll сентинел "без фильтра по типу" в каталоге
const VehicleTypeAll = "All"

// VehicleTypes допустимые типы транспорта
var VehicleTypes = []string{
	"Sedan",
	"SUV",
	"Hatchback",
	"Van",
	"Bike",
}

// IsValidVehicleType проверяет, что тип транспорта допустим
func IsValidVehicleType(t string) bool {
	for _, vt := range VehicleTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// PickupLocations точки выдачи на кампусе
var PickupLocations = []string{
	"FME",
	"FCSE",
	"AcB",
	"FMCE",
	"H11/12",
	"Brabers",
	"H9/10",
	"H1/2",
	"H5/6",
	"H3/4",
}

// IsValidPickupLocation проверяет, что точка выдачи допустима
func IsValidPickupLocation(loc string) bool {
	for _, l := range PickupLocations {
		if l == loc {
			return true
		}
	}
	return false
}
