package entities

import (
	"encoding/json"
	"time"
)

// Estimate is a cost quotation for a single RV roof repair, persisted in
// DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (uuid string, assigned by the service)
//
// Customer linkage:
//   - CustomerID is optional; when set, FirstName/LastName/PhoneNumber are
//     denormalized copies owned by the referenced customer (ApplyCustomer).
//     The store does not cascade customer deletes, so the copies also serve
//     as the surviving display values.
//
// Advisor linkage:
//   - AdvisorID references an Advisor; the display name is resolved on read,
//     never stored here.
//
// Configuration blobs:
//   - PartsConfiguration/LaborConfiguration are opaque JSON persisted
//     verbatim for external tooling; this service never interprets them.
type Estimate struct {
	ID              string `json:"id"`
	EstimateNumber  string `json:"estimate_number"`
	CustomerID      string `json:"customer_id,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	UnitDescription string `json:"unit_description"`
	VIN             string `json:"vin,omitempty"`
	AdvisorID       string `json:"advisor_id,omitempty"`
	PaymentType     string `json:"payment_type,omitempty"`
	Deductible      string `json:"deductible,omitempty"`
	EstimateDate    string `json:"estimate_date,omitempty"`

	RoofKit         float64 `json:"roof_kit"`
	RoofMembrane    float64 `json:"roof_membrane"`
	SlfLvlDicor     float64 `json:"slf_lvl_dicor"`
	NonLvlDicor     float64 `json:"non_lvl_dicor"`
	RoofScrews      float64 `json:"roof_screws"`
	Glue            float64 `json:"glue"`
	AdditionalParts float64 `json:"additional_parts"`

	RepairDescription string  `json:"repair_description"`
	Notes             string  `json:"notes,omitempty"`
	Hrs               float64 `json:"hrs"`
	LaborPerHr        float64 `json:"labor_per_hr"`
	Sublet            float64 `json:"sublet"`
	Extras            float64 `json:"extras"`
	Labor             float64 `json:"labor"`
	ShopSupplies      float64 `json:"shop_supplies"`
	Tax               float64 `json:"tax"`

	// TotalEstimate is copied from a job template's JobPrice or supplied by
	// the client; it is never recomputed from the line items above.
	TotalEstimate float64 `json:"total_estimate"`

	JobCode string `json:"job_code,omitempty"`

	PartsConfiguration json.RawMessage `json:"parts_configuration,omitempty"`
	LaborConfiguration json.RawMessage `json:"labor_configuration,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyCustomer attaches c to the estimate and overwrites the denormalized
// name and phone fields with the customer's values. Once a customer is
// attached those fields are customer-owned: callers re-apply on every write
// so manual edits to them do not stick.
func (e *Estimate) ApplyCustomer(c Customer) {
	e.CustomerID = c.ID
	e.FirstName = c.FirstName
	e.LastName = c.LastName
	e.PhoneNumber = c.PhoneNumber
}

// ApplyJobTemplate copies the template's repair description, hours, labor
// rate and price into the estimate, overwriting any prior manual entry in
// those four fields. Applying a second template overwrites them again. The
// per-part cost columns are deliberately left alone: they are manual entries
// on the form, not template defaults.
func (e *Estimate) ApplyJobTemplate(j PreConfiguredJob) {
	e.JobCode = j.JobCode
	e.RepairDescription = j.JobDescription
	e.Hrs = j.Hrs
	e.LaborPerHr = j.LaborPerHr
	e.TotalEstimate = j.JobPrice
}
