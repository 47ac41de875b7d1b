package valueobjects

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) String() string {
	return string(p)
}

// Weight orders priorities for sorting, higher is more urgent.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func ParsePriority(s string) (Priority, bool) {
	p := Priority(s)
	return p, p.IsValid()
}
