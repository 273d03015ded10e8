package entity

// LoginResponse is the body of the token exchange. Error shapes vary between
// gateway versions; any subset of the message fields may be present.
type LoginResponse struct {
	Token         string `json:"token"`
	Error         string `json:"error"`
	TextResponse  string `json:"textResponse"`
	TitleResponse string `json:"titleResponse"`
	Message       string `json:"message"`
}

// SessionResponse is the body of the session-create call.
type SessionResponse struct {
	Success       bool        `json:"success"`
	TextResponse  string      `json:"textResponse"`
	TitleResponse string      `json:"titleResponse"`
	Data          SessionData `json:"data"`
}

type SessionData struct {
	SessionId   string         `json:"sessionId"`
	TotalErrors int            `json:"totalErrors"`
	Errors      []SessionError `json:"errors"`
}

// SessionError is one field-level validation error from the gateway.
type SessionError struct {
	CodError     int    `json:"codError"`
	ErrorMessage string `json:"errorMessage"`
}
