package messages

type createMessageRequest struct {
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
