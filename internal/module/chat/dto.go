package chat

// StartConversationRequest is the input for starting a conversation between
// two users.
type StartConversationRequest struct {
	InitiatingUserID string  `json:"InitiatingUserId" binding:"required,uuid"`
	OtherUserID      string  `json:"OtherUserId" binding:"required,uuid"`
	Topic            *string `json:"Topic" binding:"omitempty,max=255"`
}

// UpdateConversationRequest is the input for updating a conversation. Only the
// topic can change after a conversation starts.
type UpdateConversationRequest struct {
	Topic *string `json:"Topic" binding:"omitempty,max=255"`
}

// SendMessageRequest is the input for sending a message in a conversation.
type SendMessageRequest struct {
	SenderUserID string `json:"SenderUserId" binding:"required,uuid"`
	Message      string `json:"Message" binding:"required,max=2048"`
}

// UpdateMessageRequest is the input for editing a message body.
type UpdateMessageRequest struct {
	Message string `json:"Message" binding:"required,max=2048"`
}
