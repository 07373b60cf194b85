package dto

// ChatRequest carries the POST /api/chat payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the chat endpoint's response shape. Unlike the rest of the API
// it is used for errors as well, matching what the mobile client expects.
type ChatReply struct {
	Reply string `json:"reply"`
}
