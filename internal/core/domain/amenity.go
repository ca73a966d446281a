package domain

import "time"

// AmenityType classifies a public facility.
type AmenityType string

const (
	AmenityHospital      AmenityType = "hospital"
	AmenitySchool        AmenityType = "school"
	AmenityPark          AmenityType = "park"
	AmenityLibrary       AmenityType = "library"
	AmenityPoliceStation AmenityType = "police_station"
	AmenityFireStation   AmenityType = "fire_station"
	AmenityOther         AmenityType = "other"
)

func (t AmenityType) Valid() bool {
	switch t {
	case AmenityHospital, AmenitySchool, AmenityPark, AmenityLibrary,
		AmenityPoliceStation, AmenityFireStation, AmenityOther:
		return true
	}
	return false
}

// Amenity is a public facility listed in the directory. Empty optional fields
// are persisted as absent.
type Amenity struct {
	ID             string      `json:"id" bson:"_id"`
	Name           string      `json:"name" bson:"name"`
	Type           AmenityType `json:"type" bson:"type"`
	Address        string      `json:"address" bson:"address"`
	Contact        string      `json:"contact,omitempty" bson:"contact,omitempty"`
	OperatingHours string      `json:"operating_hours,omitempty" bson:"operating_hours,omitempty"`
	Description    string      `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
