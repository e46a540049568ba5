package domain

// Plant is a catalog entry describing a species and its care profile.
type Plant struct {
	ID                string `json:"id" gorm:"primaryKey"`
	ScientificName    string `json:"scientificName,omitempty"`
	CommonName        string `json:"commonName,omitempty"`
	Origin            string `json:"origin,omitempty"`
	Family            string `json:"family,omitempty"`
	PreferredLocation string `json:"preferredLocation,omitempty"`
	Light             string `json:"light,omitempty"`
	Humidity          string `json:"humidity,omitempty"`
	Watering          string `json:"watering,omitempty"`
	Fertilizing       string `json:"fertilizing,omitempty"`
	Substrate         string `json:"substrate,omitempty"`
	Pruning           string `json:"pruning,omitempty"`
	Flowering         bool   `json:"flowering"`
}
