package model

// SortKey selects the ordering of the paper catalog view
type SortKey string

const (
	SortByTitle  SortKey = "title"  // Ascending, locale-aware
	SortByStake  SortKey = "stake"  // Descending required stake
	SortByNewest SortKey = "newest" // Catalog order
)

// Paper is an immutable catalog entry
type Paper struct {
	ID            string  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	Description   string  `json:"description" yaml:"description"`
	RequiredStake float64 `json:"required_stake" yaml:"required_stake"`
	SectorID      string  `json:"sector_id,omitempty" yaml:"sector_id"`
	Link          string  `json:"link" yaml:"link"` // Opaque, consumed by the viewer
}

// PaperView is a catalog entry as shown on the dashboard
type PaperView struct {
	Paper
	Accessible     bool   `json:"accessible"`
	ReadingSeconds int    `json:"reading_seconds"`
	ReadingTime    string `json:"reading_time"`
}

// ListPapersQuery holds the catalog search and sort parameters
type ListPapersQuery struct {
	Query string `json:"q" validate:"max=200"`
	Sort  string `json:"sort" validate:"omitempty,oneof=title stake newest"`
}

// Validate validates the list query
func (q *ListPapersQuery) Validate() []FieldError {
	return validateStruct(q)
}

// SortKey returns the requested sort key, defaulting to title
func (q *ListPapersQuery) SortKey() SortKey {
	if q.Sort == "" {
		return SortByTitle
	}
	return SortKey(q.Sort)
}

// IsValid reports whether the sort key is one of the known keys
func (k SortKey) IsValid() bool {
	switch k {
	case SortByTitle, SortByStake, SortByNewest:
		return true
	}
	return false
}

// MaxPaperIDLength bounds path parameters naming a paper
const MaxPaperIDLength = 64
