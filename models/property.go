package models

type PropertyType string

const (
	TypeSingleFamily PropertyType = "Single Family"
	TypeCondo        PropertyType = "Condo"
	TypeTownhouse    PropertyType = "Townhouse"
	TypeLand         PropertyType = "Land"
	TypeLuxury       PropertyType = "Luxury"
)

type PropertyStatus string

const (
	StatusActive  PropertyStatus = "Active"
	StatusPending PropertyStatus = "Pending"
	StatusSold    PropertyStatus = "Sold"
)

// Property is one listing in the catalog. Records are immutable within a
// session; the catalog is loaded once and only ever read.
type Property struct {
	ID           string         `bson:"_id" json:"id"`
	Title        string         `bson:"title" json:"title"`
	Price        float64        `bson:"price" json:"price"`
	Address      string         `bson:"address" json:"address"`
	City         string         `bson:"city" json:"city"`
	State        string         `bson:"state" json:"state"`
	Zip          string         `bson:"zip" json:"zip"`
	Beds         int            `bson:"beds" json:"beds"`
	Baths        float64        `bson:"baths" json:"baths"`
	Sqft         int            `bson:"sqft" json:"sqft"`
	Type         PropertyType   `bson:"type" json:"type"`
	Status       PropertyStatus `bson:"status" json:"status"`
	Images       []string       `bson:"images" json:"images"`
	Description  string         `bson:"description" json:"description"`
	Features     []string       `bson:"features" json:"features"`
	Neighborhood string         `bson:"neighborhood" json:"neighborhood"`
	YearBuilt    int            `bson:"yearBuilt" json:"yearBuilt"`
	LotSize      string         `bson:"lotSize" json:"lotSize"`
}
