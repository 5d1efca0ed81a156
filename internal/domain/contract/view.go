package contract

import "time"

const (
	sinceLayout    = "January 2, 2006"
	signedOnLayout = "1/2/2006"
)

// ContractView is the projection shared by the signing and celebration screens.
type ContractView struct {
	Contract            Contract    `json:"contract"`
	Terms               []Term      `json:"terms"`
	Signatures          []Signature `json:"signatures"`
	BoyfriendSignature  *Signature  `json:"boyfriend_signature"`
	GirlfriendSignature *Signature  `json:"girlfriend_signature"`
	HasBoyfriendSigned  bool        `json:"has_boyfriend_signed"`
	HasGirlfriendSigned bool        `json:"has_girlfriend_signed"`
}

func NewContractView(c Contract, terms []Term, sigs []Signature) ContractView {
	if terms == nil {
		terms = []Term{}
	}
	if sigs == nil {
		sigs = []Signature{}
	}
	v := ContractView{
		Contract:            c,
		Terms:               terms,
		Signatures:          sigs,
		BoyfriendSignature:  FindSignature(sigs, RoleBoyfriend),
		GirlfriendSignature: FindSignature(sigs, RoleGirlfriend),
	}
	v.HasBoyfriendSigned = v.BoyfriendSignature != nil
	v.HasGirlfriendSigned = v.GirlfriendSignature != nil
	return v
}

type CelebrationSignature struct {
	Name     string  `json:"name"`
	Message  *string `json:"message"`
	SignedOn string  `json:"signed_on"`
}

// CelebrationView carries display-ready dates for the celebration screen.
type CelebrationView struct {
	ContractID string                `json:"contract_id"`
	Title      string                `json:"title"`
	Completed  bool                  `json:"completed"`
	Since      string                `json:"since,omitempty"`
	Terms      []Term                `json:"terms"`
	Boyfriend  *CelebrationSignature `json:"boyfriend,omitempty"`
	Girlfriend *CelebrationSignature `json:"girlfriend,omitempty"`
}

func NewCelebrationView(v ContractView, loc *time.Location) CelebrationView {
	if loc == nil {
		loc = time.UTC
	}
	cv := CelebrationView{
		ContractID: v.Contract.ID.String(),
		Title:      v.Contract.Title,
		Completed:  v.Contract.IsCompleted(),
		Terms:      v.Terms,
		Boyfriend:  celebrationSignature(v.BoyfriendSignature, loc),
		Girlfriend: celebrationSignature(v.GirlfriendSignature, loc),
	}
	if v.Contract.CompletedAt != nil {
		cv.Since = v.Contract.CompletedAt.In(loc).Format(sinceLayout)
	}
	return cv
}

func celebrationSignature(s *Signature, loc *time.Location) *CelebrationSignature {
	if s == nil {
		return nil
	}
	return &CelebrationSignature{
		Name:     s.Name,
		Message:  s.Message,
		SignedOn: s.SignedAt.In(loc).Format(signedOnLayout),
	}
}
