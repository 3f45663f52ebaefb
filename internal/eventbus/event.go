package eventbus

// Mutation classifies how an event changes what subscribers can see.
type Mutation string

// Mutation kinds.
const (
	Created Mutation = "CREATED"
	Updated Mutation = "UPDATED"
	Deleted Mutation = "DELETED"
)

// Event is a single change notification.
// Data holds an entity snapshot (entity.Post or entity.Comment).
type Event struct {
	Topic    Topic    `json:"-"`
	Mutation Mutation `json:"mutation"`
	Data     any      `json:"data"`
}
