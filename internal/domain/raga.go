package domain

// Raga is a catalog entry describing a melodic framework. Ragas live in the
// shared catalog collection and are not owned by any user.
type Raga struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Inputs      []int  `json:"inputs"`
	Vadi        string `json:"vadi"`
	Samvadi     string `json:"samvadi"`
	Description string `json:"description"`
}

// RagaPatch is a partial update to a catalog raga. Nil fields are left
// untouched by the merge.
type RagaPatch struct {
	Category    *string `json:"category,omitempty"`
	Name        *string `json:"name,omitempty"`
	Inputs      []int   `json:"inputs,omitempty"`
	Vadi        *string `json:"vadi,omitempty"`
	Samvadi     *string `json:"samvadi,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p RagaPatch) IsEmpty() bool {
	return p.Category == nil && p.Name == nil && p.Inputs == nil &&
		p.Vadi == nil && p.Samvadi == nil && p.Description == nil
}
