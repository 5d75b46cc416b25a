package request

import "rvroofworks/internal/domain/entities"

// AdvisorRequest is the payload for creating or updating an advisor.
type AdvisorRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r AdvisorRequest) ToEntity() entities.Advisor {
	return entities.Advisor{Name: r.Name}
}
