package entities

// PreConfiguredJob is a reusable repair template: default part costs, labor
// and a precomputed price for a common roof repair.
//
// Storage model (DynamoDB):
//   - PK: id (uuid string)
//   - GSI1 (job_code-index): job_code
//
// JobCode is the business key users pick templates by; it must be unique.
// JobPrice is authored with the template, not derived from the part columns.
type PreConfiguredJob struct {
	ID                string  `json:"id"`
	JobCode           string  `json:"job_code"`
	JobName           string  `json:"job_name"`
	JobDescription    string  `json:"job_description,omitempty"`
	RoofKit           float64 `json:"roof_kit"`
	RoofMembrane      float64 `json:"roof_membrane"`
	SlfLvlDicor       float64 `json:"slf_lvl_dicor"`
	NonLvlDicor       float64 `json:"non_lvl_dicor"`
	RoofScrews        float64 `json:"roof_screws"`
	Glue              float64 `json:"glue"`
	AdditionalParts   float64 `json:"additional_parts"`
	RepairDescription string  `json:"repair_description,omitempty"`
	Hrs               float64 `json:"hrs"`
	LaborPerHr        float64 `json:"labor_per_hr"`
	JobPrice          float64 `json:"job_price"`
}
