package response

import "rvroofworks/internal/domain/entities"

type PreConfiguredJobResponse struct {
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

func FromPreConfiguredJob(j entities.PreConfiguredJob) PreConfiguredJobResponse {
	return PreConfiguredJobResponse(j)
}

func FromPreConfiguredJobs(jobs []entities.PreConfiguredJob) []PreConfiguredJobResponse {
	out := make([]PreConfiguredJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromPreConfiguredJob(j))
	}
	return out
}
