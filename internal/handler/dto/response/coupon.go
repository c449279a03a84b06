package response

type CreateCouponResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}
