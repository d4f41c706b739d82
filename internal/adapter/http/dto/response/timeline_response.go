package response

import "github.com/trader2544/telvix-quote-service/internal/domain/timeline"

type TimelineResponse struct {
	ServiceID string   `json:"service_id"`
	Size      string   `json:"size"`
	Weeks     string   `json:"weeks"`
	Phases    []string `json:"phases"`
}

func FromTimelineEntry(serviceID, size string, e timeline.Entry) TimelineResponse {
	return TimelineResponse{
		ServiceID: serviceID,
		Size:      size,
		Weeks:     e.Weeks,
		Phases:    e.Phases,
	}
}
