package oxbridge

// AuthAction is the action label used for authorization interrupts.
const AuthAction = "Auth"

// InterruptConfig declares which human responses are allowed for an
// interrupt. For authorization interrupts the only legal resumption is an
// acceptance acknowledgment.
type InterruptConfig struct {
	AllowIgnore  bool `json:"allow_ignore"`
	AllowRespond bool `json:"allow_respond"`
	AllowEdit    bool `json:"allow_edit"`
	AllowAccept  bool `json:"allow_accept"`
}

// ActionRequest names the action a human is asked to complete and its
// arguments.
type ActionRequest struct {
	Action string            `json:"action"`
	Args   map[string]string `json:"args"`
}

// HumanInterrupt is a structured request for out-of-band human action,
// submitted to the external suspension mechanism. It is constructed,
// handed off, and never stored.
type HumanInterrupt struct {
	ActionRequest ActionRequest   `json:"action_request"`
	Config        InterruptConfig `json:"config"`
	Description   *string         `json:"description"`
}

// NewAuthInterrupt builds the interrupt payload for a pending
// authorization: the human is shown the authorization URL and may only
// acknowledge completion. Ignore, respond, and edit are disallowed.
func NewAuthInterrupt(url string) HumanInterrupt {
	return HumanInterrupt{
		ActionRequest: ActionRequest{
			Action: AuthAction,
			Args:   map[string]string{"url": url},
		},
		Config: InterruptConfig{
			AllowIgnore:  false,
			AllowRespond: false,
			AllowEdit:    false,
			AllowAccept:  true,
		},
		Description: nil,
	}
}
