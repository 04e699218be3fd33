package catalog

import "RealtySiteAPI/models"

// Seed returns the site's current listings. The collection is a static
// in-memory stand-in for a remote catalog; callers may pass any slice
// to Filter.
func Seed() []models.Property {
	return []models.Property{
		{
			ID:      "2",
			Title:   "Elegant Hill Country Estate",
			Price:   895000,
			Address: "128 Fairway Ridge",
			City:    "Boerne",
			State:   "TX",
			Zip:     "78006",
			Beds:    4,
			Baths:   3.5,
			Sqft:    3500,
			Type:    models.TypeSingleFamily,
			Status:  models.StatusActive,
			Images: []string{
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1600566753190-17f0bb2a6c3e?auto=format&fit=crop&w=1200&q=80",
			},
			Description:  "Nestled on a quiet cul-de-sac, this Boerne beauty offers breathtaking views of the Texas Hill Country. Open floor plan with vaulted ceilings and custom woodwork throughout.",
			Features:     []string{"Hill Country Views", "Vaulted Ceilings", "Three-Car Garage", "Media Room"},
			Neighborhood: "Fair Oaks Ranch",
			YearBuilt:    2018,
			LotSize:      "1.2 Acres",
		},
		{
			ID:      "3",
			Title:   "Chic Downtown Penthouse",
			Price:   675000,
			Address: "300 Convent St #2201",
			City:    "San Antonio",
			State:   "TX",
			Zip:     "78205",
			Beds:    2,
			Baths:   2,
			Sqft:    1800,
			Type:    models.TypeCondo,
			Status:  models.StatusActive,
			Images: []string{
				"https://images.unsplash.com/photo-1567496898669-ee935f5f647a?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?auto=format&fit=crop&w=1200&q=80",
			},
			Description:  "Urban living at its finest. This penthouse unit offers panoramic views of the San Antonio skyline, high-end finishes, and access to premium building amenities including a rooftop pool and fitness center.",
			Features:     []string{"Skyline Views", "Rooftop Pool", "24/7 Concierge", "Fitness Center"},
			Neighborhood: "Downtown",
			YearBuilt:    2015,
			LotSize:      "N/A",
		},
		{
			ID:      "4",
			Title:   "Classic Suburban Charm",
			Price:   450000,
			Address: "8814 Timber Hawk",
			City:    "San Antonio",
			State:   "TX",
			Zip:     "78250",
			Beds:    3,
			Baths:   2.5,
			Sqft:    2400,
			Type:    models.TypeSingleFamily,
			Status:  models.StatusPending,
			Images: []string{
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=1200&q=80",
			},
			Description:  "Beautifully maintained family home in a sought-after neighborhood. Spacious backyard, updated kitchen, and excellent school district.",
			Features:     []string{"Large Backyard", "Updated Kitchen", "Fireplace", "Walk-in Closets"},
			Neighborhood: "Great Northwest",
			YearBuilt:    1995,
			LotSize:      "0.25 Acres",
		},
	}
}
