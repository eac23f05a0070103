package domain

// Preset is a saved instrument configuration owned by one user.
type Preset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Pitch  string  `json:"pitch"`
	Tempo  float64 `json:"tempo,omitempty"`
	Volume float64 `json:"volume,omitempty"`
}
