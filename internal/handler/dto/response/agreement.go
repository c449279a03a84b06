package response

import "building-management/internal/usecase/shared"

type SaveAgreementResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

type UpdateResultResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func FromUpdateCounts(c shared.UpdateCounts) UpdateResultResponse {
	return UpdateResultResponse{MatchedCount: c.Matched, ModifiedCount: c.Modified}
}
