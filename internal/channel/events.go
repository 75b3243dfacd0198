package channel

import "net/url"

// Webhook event types delivered by the messaging platform.
const (
	EventFollow   = "follow"
	EventUnfollow = "unfollow"
	EventMessage  = "message"
	EventPostback = "postback"
)

// Postback actions the bot menus emit.
const (
	ActionOrderDetail = "order_detail"
	ActionCancelOrder = "cancel_order"
)

type WebhookRequest struct {
	Events []Event `json:"events"`
}

type Event struct {
	Type     string    `json:"type"`
	Source   Source    `json:"source"`
	Message  *Message  `json:"message,omitempty"`
	Postback *Postback `json:"postback,omitempty"`
}

type Source struct {
	UserID string `json:"userId"`
}

type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Postback struct {
	// Data is query-encoded, e.g. "action=cancel_order&order_id=<uuid>".
	Data string `json:"data"`
}

// Decode parses the postback payload into its action and parameters.
func (p *Postback) Decode() (action string, params url.Values) {
	if p == nil {
		return "", url.Values{}
	}
	values, err := url.ParseQuery(p.Data)
	if err != nil {
		return "", url.Values{}
	}
	return values.Get("action"), values
}
