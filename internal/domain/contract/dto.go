package contract

type CreateContractDTO struct {
	Title string   `json:"title" form:"title"`
	Terms []string `json:"terms" form:"terms"`
}

type SignContractDTO struct {
	Role    Role    `json:"role" form:"role" binding:"required"`
	Name    string  `json:"name" form:"name"`
	Message *string `json:"message,omitempty" form:"message,omitempty"`
}

// SignResult tells the caller whether this signature completed the contract.
type SignResult struct {
	Signature Signature `json:"signature"`
	Contract  Contract  `json:"contract"`
	Completed bool      `json:"completed"`
}

// SignResponse is SignResult plus the hand-off hints for the celebration screen.
type SignResponse struct {
	SignResult
	CelebrationURL  string `json:"celebration_url,omitempty"`
	RedirectAfterMs int64  `json:"redirect_after_ms,omitempty"`
}
