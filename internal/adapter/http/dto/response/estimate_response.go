package response

import (
	"encoding/json"
	"time"

	"rvroofworks/internal/domain/entities"
	"rvroofworks/internal/usecase"
)

type EstimateResponse struct {
	ID              string `json:"id"`
	EstimateNumber  string `json:"estimate_number"`
	CustomerID      string `json:"customer_id,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	UnitDescription string `json:"unit_description"`
	VIN             string `json:"vin,omitempty"`
	AdvisorID       string `json:"advisor_id,omitempty"`
	AdvisorName     string `json:"advisor_name,omitempty"`
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
	TotalEstimate     float64 `json:"total_estimate"`

	JobCode string `json:"job_code,omitempty"`

	PartsConfiguration json.RawMessage `json:"parts_configuration,omitempty"`
	LaborConfiguration json.RawMessage `json:"labor_configuration,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                 e.ID,
		EstimateNumber:     e.EstimateNumber,
		CustomerID:         e.CustomerID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		PhoneNumber:        e.PhoneNumber,
		UnitDescription:    e.UnitDescription,
		VIN:                e.VIN,
		AdvisorID:          e.AdvisorID,
		PaymentType:        e.PaymentType,
		Deductible:         e.Deductible,
		EstimateDate:       e.EstimateDate,
		RoofKit:            e.RoofKit,
		RoofMembrane:       e.RoofMembrane,
		SlfLvlDicor:        e.SlfLvlDicor,
		NonLvlDicor:        e.NonLvlDicor,
		RoofScrews:         e.RoofScrews,
		Glue:               e.Glue,
		AdditionalParts:    e.AdditionalParts,
		RepairDescription:  e.RepairDescription,
		Notes:              e.Notes,
		Hrs:                e.Hrs,
		LaborPerHr:         e.LaborPerHr,
		Sublet:             e.Sublet,
		Extras:             e.Extras,
		Labor:              e.Labor,
		ShopSupplies:       e.ShopSupplies,
		Tax:                e.Tax,
		TotalEstimate:      e.TotalEstimate,
		JobCode:            e.JobCode,
		PartsConfiguration: e.PartsConfiguration,
		LaborConfiguration: e.LaborConfiguration,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromEstimateDetail(d usecase.EstimateDetail) EstimateResponse {
	res := FromEstimate(d.Estimate)
	res.AdvisorName = d.AdvisorName
	return res
}

func FromEstimateDetails(details []usecase.EstimateDetail) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromEstimateDetail(d))
	}
	return out
}
