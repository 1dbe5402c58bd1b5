package models

// ProductCandidate is a product metadata result from the external lookup,
// prior to being committed as an inventory record. A non-empty Code is the
// candidate's identity; candidates without a code are identified by name.
type ProductCandidate struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	Code       string `json:"code,omitempty"`
	Categories string `json:"categories"`
}
