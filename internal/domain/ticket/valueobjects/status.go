package valueobjects

type TicketStatus string

const (
	StatusOpen   TicketStatus = "open"
	StatusClosed TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:   true,
	StatusClosed: true,
}

// ticketStatusTransitions holds the allowed target states per state.
// The workflow is a two-state cycle; re-asserting the current state is
// treated as a no-op transition and is always allowed.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen:   {StatusClosed},
	StatusClosed: {StatusOpen},
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsOpen() bool {
	return s == StatusOpen
}

func (s TicketStatus) IsClosed() bool {
	return s == StatusClosed
}

func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func ParseTicketStatus(s string) (TicketStatus, bool) {
	st := TicketStatus(s)
	return st, st.IsValid()
}
