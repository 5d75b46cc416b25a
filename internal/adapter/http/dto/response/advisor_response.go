package response

import "rvroofworks/internal/domain/entities"

type AdvisorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromAdvisor(a entities.Advisor) AdvisorResponse {
	return AdvisorResponse(a)
}

func FromAdvisors(advisors []entities.Advisor) []AdvisorResponse {
	out := make([]AdvisorResponse, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, FromAdvisor(a))
	}
	return out
}
