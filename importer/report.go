package importer

import "github.com/google/uuid"

// FamilyStatus is the terminal state of one family's import within a run.
type FamilyStatus string

const (
	// StatusImported means the family's files were read and applied.
	StatusImported FamilyStatus = "imported"
	// StatusSkipped means no source file exists for the family.
	StatusSkipped FamilyStatus = "skipped"
	// StatusFailed means the family's document could not be parsed. The rest
	// of the run still proceeds.
	StatusFailed FamilyStatus = "failed"
)

// FamilyResult holds the per-family counters of a run.
type FamilyResult struct {
	Family   string       `json:"family"`
	Status   FamilyStatus `json:"status"`
	Inserted int          `json:"inserted"`
	// Filled counts venue fill-in updates; it stays zero for every other
	// family.
	Filled int `json:"filled"`
	// Errors counts records skipped because their write failed.
	Errors int `json:"errors"`
}

func (fr *FamilyResult) skip() { fr.Status = StatusSkipped }
func (fr *FamilyResult) fail() { fr.Status = StatusFailed }

// Report is the aggregate outcome of one pipeline run.
type Report struct {
	RunID    string          `json:"run_id"`
	Families []*FamilyResult `json:"families"`
}

func newReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

func (r *Report) start(family string) *FamilyResult {
	fr := &FamilyResult{Family: family, Status: StatusImported}
	r.Families = append(r.Families, fr)
	return fr
}

// TotalInserted sums newly written rows across all families.
func (r *Report) TotalInserted() int {
	total := 0
	for _, fr := range r.Families {
		total += fr.Inserted
	}
	return total
}
