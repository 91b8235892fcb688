package domain

// Difficulty selects the target clue count during generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// UnitKind names the three kinds of 9-cell units a duplicate can occur in.
type UnitKind int

const (
	UnitRow UnitKind = iota
	UnitColumn
	UnitBox
)

func (k UnitKind) String() string {
	switch k {
	case UnitRow:
		return "row"
	case UnitColumn:
		return "column"
	default:
		return "box"
	}
}

// ValidationStatus classifies a grid's rule compliance and completeness.
type ValidationStatus int

const (
	StatusInvalid ValidationStatus = iota
	StatusValidIncomplete
	StatusValidComplete
)

func (s ValidationStatus) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusValidComplete:
		return "complete"
	default:
		return "incomplete"
	}
}
