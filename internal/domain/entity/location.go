package entity

// LocationRecord is one reference point in the regional provider catalog.
type LocationRecord struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationMatch is the result of a nearest-location lookup.
type LocationMatch struct {
	ID         string  `json:"id"`
	DistanceKm float64 `json:"distance_km"`
}
