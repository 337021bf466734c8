package request_models

type UpdateContractRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELED FINISHED"`
}
