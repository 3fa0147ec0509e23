package dto

// Draft is the accumulated state of the booking wizard, persisted server-side
// under an opaque token so each step can pick up where the previous left off.
// Every field is optional until the final submission validates the whole set.
type Draft struct {
	ActivityID    string `json:"activityId,omitempty"`
	ActivityTitle string `json:"activityTitle,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	Date           string `json:"date,omitempty"`
	Schedule       string `json:"schedule,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`

	Seniors  int `json:"seniors,omitempty"`
	Adults   int `json:"adults,omitempty"`
	Youths   int `json:"youths,omitempty"`
	Children int `json:"children,omitempty"`
	Babies   int `json:"babies,omitempty"`

	TotalPrice    int    `json:"totalPrice,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type SaveDraftRequest struct {
	// Token is empty on the first step; later steps pass it back to update the
	// same draft.
	Token string `json:"token,omitempty"`
	Draft
}

type SaveDraftResponse struct {
	Token string `json:"token"`
}

type DraftResponse struct {
	Token string `json:"token"`
	Draft
}
