package domain

// EventType identifies a lifecycle event fanned out to observers.
type EventType string

const (
	EventOrderCreated    EventType = "ORDER_CREATED"
	EventOrderConfirmed  EventType = "ORDER_CONFIRMED"
	EventOrderProcessing EventType = "ORDER_PROCESSING"
	EventOrderShipped    EventType = "ORDER_SHIPPED"
	EventOrderDelivered  EventType = "ORDER_DELIVERED"
	EventOrderCancelled  EventType = "ORDER_CANCELLED"
)

func (e EventType) String() string {
	return string(e)
}
