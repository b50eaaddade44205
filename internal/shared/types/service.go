package types

import "fmt"

// Service identifies one of the three counter types offered by the office.
// Values are 1-based to match the numbering used in the event log.
type Service int

const (
	ServiceLetters Service = iota + 1
	ServicePackages
	ServiceTransfers
)

// ServiceCount is the number of distinct service types.
const ServiceCount = 3

// AllServices returns the service types in ascending order.
func AllServices() [ServiceCount]Service {
	return [ServiceCount]Service{ServiceLetters, ServicePackages, ServiceTransfers}
}

// Index converts a service to its zero-based queue index.
func (s Service) Index() int {
	return int(s) - 1
}

// Valid reports whether s is one of the three defined services.
func (s Service) Valid() bool {
	return s >= ServiceLetters && s <= ServiceTransfers
}

func (s Service) String() string {
	return fmt.Sprintf("%d", int(s))
}
