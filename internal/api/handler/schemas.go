package handler

// Request/response schemas for the identity and chat routes. The aggregation
// routes forward raw JSON payloads and fixed envelopes; their shapes live in
// the handlers themselves.

type loginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	UserName  string `json:"userName"  validate:"required"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	DealerID  int    `json:"dealer_id"`
}

// sessionResponse is the envelope returned by both login and register.
type sessionResponse struct {
	UserName string `json:"userName"`
	Status   string `json:"status"`
	UserType string `json:"user_type"`
	DealerID int    `json:"dealer_id"`
	Token    string `json:"token"`
}

// authFailure carries the username echo plus a fixed error message.
type authFailure struct {
	UserName string `json:"userName"`
	Error    string `json:"error"`
}

type chatRequest struct {
	UserMessage string `json:"userMessage"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// statusMessage is the {"status": N, "message": ...} envelope used across
// the aggregation routes.
type statusMessage struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// statusError is the {"status": N, "error": ...} envelope used by the
// inventory and chat failure paths.
type statusError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// message is a bare {"message": ...} body.
type message struct {
	Message string `json:"message"`
}
