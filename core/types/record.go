// Package types - flat output contract
package types

// Record is the flat serialization of a priced element, consumed by the
// report writers. Issues is a single "; "-joined string in recorded order.
type Record struct {
	System           string  `json:"system"`
	Position         string  `json:"position"`
	PN               string  `json:"pn"`
	Name             string  `json:"name"`
	Spec             string  `json:"spec"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	InsulationMM     float64 `json:"insulation_mm"`
	InsulationAreaM2 float64 `json:"insulation_area_m2"`
	Price            float64 `json:"price"`
	Issues           string  `json:"issues"`
}
