package domain

// ValidationIssue is one findable duplicate: value appears at least twice
// in the unit identified by (Unit, Index).
type ValidationIssue struct {
	Unit  UnitKind `json:"unit"`
	Index int      `json:"index"`
	Value uint8    `json:"value"`
}

// ValidationResult reports a grid's status plus the duplicates found.
// Issues is non-empty iff Status is StatusInvalid, ordered rows then
// columns then boxes, ascending index, ascending value within a unit.
type ValidationResult struct {
	Status ValidationStatus  `json:"status"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// Puzzle is a persisted generated puzzle with its solution and metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Givens     Grid       `json:"givens"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
