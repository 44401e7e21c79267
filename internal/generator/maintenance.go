package generator

import (
	"time"

	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

// GenerateMaintenanceRequests emits z.MaintenanceRequests requests, exactly
// z.OpenRequests of which are still open and were submitted in Sep-Dec 2024.
func GenerateMaintenanceRequests(s *State, z Sizes) []models.MaintenanceRequest {
	issues := reference.IssueDescriptions()
	openStatuses := reference.OpenRequestStatuses()

	open := make(map[int]bool, z.OpenRequests)
	for _, idx := range s.sample(idRange(0, z.MaintenanceRequests), z.OpenRequests) {
		open[idx] = true
	}

	requests := make([]models.MaintenanceRequest, 0, z.MaintenanceRequests)
	for idx, id := range idRange(z.FirstRequestID, z.MaintenanceRequests) {
		req := models.MaintenanceRequest{
			RequestID:        id,
			PropertyID:       s.intBetween(1, z.Properties),
			IssueDescription: issues[id%len(issues)],
		}

		if open[idx] {
			req.Status = models.RequestStatus(s.pick(openStatuses))
			month := time.Month(s.intBetween(9, 12))
			req.DateSubmitted = models.NewDate(2024, month, s.intBetween(1, 28))
		} else {
			req.Status = models.RequestResolved
			req.DateSubmitted = s.dateBetween(2005, 2024)
			resolved := req.DateSubmitted.AddDays(s.intBetween(7, 60))
			req.DateResolved = &resolved
		}

		req.Cost = round2(s.floatBetween(100, 1000))
		requests = append(requests, req)
	}
	return requests
}
