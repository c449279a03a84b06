package response

type CreateAnnouncementResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}
