package request

import (
	"encoding/json"

	"rvroofworks/internal/domain/entities"
)

// EstimateRequest is the full-form estimate draft. Name and phone fields are
// not bound as required here because they may be supplied indirectly through
// customer_id; the use case checks presence after customer resolution.
//
// All cost fields are typed numbers so malformed input fails at binding with
// a field-level error rather than at the store.
type EstimateRequest struct {
	EstimateNumber  string `json:"estimate_number" binding:"required"`
	CustomerID      string `json:"customer_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	UnitDescription string `json:"unit_description" binding:"required"`
	VIN             string `json:"vin"`
	AdvisorID       string `json:"advisor_id"`
	PaymentType     string `json:"payment_type"`
	Deductible      string `json:"deductible"`
	EstimateDate    string `json:"estimate_date"`

	RoofKit         float64 `json:"roof_kit"`
	RoofMembrane    float64 `json:"roof_membrane"`
	SlfLvlDicor     float64 `json:"slf_lvl_dicor"`
	NonLvlDicor     float64 `json:"non_lvl_dicor"`
	RoofScrews      float64 `json:"roof_screws"`
	Glue            float64 `json:"glue"`
	AdditionalParts float64 `json:"additional_parts"`

	RepairDescription string  `json:"repair_description" binding:"required"`
	Notes             string  `json:"notes"`
	Hrs               float64 `json:"hrs"`
	LaborPerHr        float64 `json:"labor_per_hr"`
	Sublet            float64 `json:"sublet"`
	Extras            float64 `json:"extras"`
	Labor             float64 `json:"labor"`
	ShopSupplies      float64 `json:"shop_supplies"`
	Tax               float64 `json:"tax"`
	TotalEstimate     float64 `json:"total_estimate"`

	JobCode string `json:"job_code"`

	PartsConfiguration json.RawMessage `json:"parts_configuration"`
	LaborConfiguration json.RawMessage `json:"labor_configuration"`
}

func (r EstimateRequest) ToEntity() entities.Estimate {
	return entities.Estimate{
		EstimateNumber:     r.EstimateNumber,
		CustomerID:         r.CustomerID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		PhoneNumber:        r.PhoneNumber,
		UnitDescription:    r.UnitDescription,
		VIN:                r.VIN,
		AdvisorID:          r.AdvisorID,
		PaymentType:        r.PaymentType,
		Deductible:         r.Deductible,
		EstimateDate:       r.EstimateDate,
		RoofKit:            r.RoofKit,
		RoofMembrane:       r.RoofMembrane,
		SlfLvlDicor:        r.SlfLvlDicor,
		NonLvlDicor:        r.NonLvlDicor,
		RoofScrews:         r.RoofScrews,
		Glue:               r.Glue,
		AdditionalParts:    r.AdditionalParts,
		RepairDescription:  r.RepairDescription,
		Notes:              r.Notes,
		Hrs:                r.Hrs,
		LaborPerHr:         r.LaborPerHr,
		Sublet:             r.Sublet,
		Extras:             r.Extras,
		Labor:              r.Labor,
		ShopSupplies:       r.ShopSupplies,
		Tax:                r.Tax,
		TotalEstimate:      r.TotalEstimate,
		JobCode:            r.JobCode,
		PartsConfiguration: r.PartsConfiguration,
		LaborConfiguration: r.LaborConfiguration,
	}
}

// EstimatePrefillRequest carries the in-progress draft for the lookup
// endpoint; every field is optional since the draft may be empty.
type EstimatePrefillRequest struct {
	EstimateNumber  string `json:"estimate_number"`
	CustomerID      string `json:"customer_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	UnitDescription string `json:"unit_description"`
	VIN             string `json:"vin"`
	AdvisorID       string `json:"advisor_id"`
	PaymentType     string `json:"payment_type"`
	Deductible      string `json:"deductible"`
	EstimateDate    string `json:"estimate_date"`

	RoofKit         float64 `json:"roof_kit"`
	RoofMembrane    float64 `json:"roof_membrane"`
	SlfLvlDicor     float64 `json:"slf_lvl_dicor"`
	NonLvlDicor     float64 `json:"non_lvl_dicor"`
	RoofScrews      float64 `json:"roof_screws"`
	Glue            float64 `json:"glue"`
	AdditionalParts float64 `json:"additional_parts"`

	RepairDescription string  `json:"repair_description"`
	Notes             string  `json:"notes"`
	Hrs               float64 `json:"hrs"`
	LaborPerHr        float64 `json:"labor_per_hr"`
	Sublet            float64 `json:"sublet"`
	Extras            float64 `json:"extras"`
	Labor             float64 `json:"labor"`
	ShopSupplies      float64 `json:"shop_supplies"`
	Tax               float64 `json:"tax"`
	TotalEstimate     float64 `json:"total_estimate"`

	JobCode string `json:"job_code"`

	PartsConfiguration json.RawMessage `json:"parts_configuration"`
	LaborConfiguration json.RawMessage `json:"labor_configuration"`
}

func (r EstimatePrefillRequest) ToEntity() entities.Estimate {
	return EstimateRequest(r).ToEntity()
}
