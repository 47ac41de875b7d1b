package valueobjects

type TicketType string

const (
	TypeBug      TicketType = "bug"
	TypeRequest  TicketType = "request"
	TypeQuestion TicketType = "question"
)

var validTicketTypes = map[TicketType]bool{
	TypeBug:      true,
	TypeRequest:  true,
	TypeQuestion: true,
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func (t TicketType) String() string {
	return string(t)
}

func ParseTicketType(s string) (TicketType, bool) {
	t := TicketType(s)
	return t, t.IsValid()
}
