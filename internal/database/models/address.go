package models

// Address is a postal location attached to clients, orders and missions.
// Geocoding is handled by an external collaborator; latitude/longitude are
// stored as given.
type Address struct {
	BaseModel
	Street         string   `json:"street" gorm:"size:200"`
	AdditionalInfo string   `json:"additional_info" gorm:"size:200"`
	PostalCode     string   `json:"postal_code" gorm:"size:20"`
	City           string   `json:"city" gorm:"size:100"`
	Country        string   `json:"country" gorm:"size:100"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
}

// TableName returns the table name for Address
func (Address) TableName() string {
	return "addresses"
}
