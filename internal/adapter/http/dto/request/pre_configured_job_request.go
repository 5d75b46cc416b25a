package request

import "rvroofworks/internal/domain/entities"

// PreConfiguredJobRequest is the payload for creating or updating a repair
// template. Cost fields are typed numbers: a malformed value is rejected at
// binding time instead of reaching the store.
type PreConfiguredJobRequest struct {
	JobCode           string  `json:"job_code" binding:"required"`
	JobName           string  `json:"job_name" binding:"required"`
	JobDescription    string  `json:"job_description"`
	RoofKit           float64 `json:"roof_kit"`
	RoofMembrane      float64 `json:"roof_membrane"`
	SlfLvlDicor       float64 `json:"slf_lvl_dicor"`
	NonLvlDicor       float64 `json:"non_lvl_dicor"`
	RoofScrews        float64 `json:"roof_screws"`
	Glue              float64 `json:"glue"`
	AdditionalParts   float64 `json:"additional_parts"`
	RepairDescription string  `json:"repair_description"`
	Hrs               float64 `json:"hrs"`
	LaborPerHr        float64 `json:"labor_per_hr"`
	JobPrice          float64 `json:"job_price"`
}

func (r PreConfiguredJobRequest) ToEntity() entities.PreConfiguredJob {
	return entities.PreConfiguredJob{
		JobCode:           r.JobCode,
		JobName:           r.JobName,
		JobDescription:    r.JobDescription,
		RoofKit:           r.RoofKit,
		RoofMembrane:      r.RoofMembrane,
		SlfLvlDicor:       r.SlfLvlDicor,
		NonLvlDicor:       r.NonLvlDicor,
		RoofScrews:        r.RoofScrews,
		Glue:              r.Glue,
		AdditionalParts:   r.AdditionalParts,
		RepairDescription: r.RepairDescription,
		Hrs:               r.Hrs,
		LaborPerHr:        r.LaborPerHr,
		JobPrice:          r.JobPrice,
	}
}
