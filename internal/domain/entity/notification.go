package entity

// PushPayload is the JSON body consumed by the receiving service worker.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// DeliveryOutcome classifies the result of a push attempt.
type DeliveryOutcome int

const (
	// DeliveryTransient means the attempt failed but may succeed on a later tick.
	DeliveryTransient DeliveryOutcome = iota
	// DeliveryDelivered means the transport accepted the message.
	DeliveryDelivered
	// DeliveryGone means the endpoint no longer exists and the subscriber must be pruned.
	DeliveryGone
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryDelivered:
		return "delivered"
	case DeliveryGone:
		return "gone"
	default:
		return "transient"
	}
}
