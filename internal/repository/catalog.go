package repository

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forgo/learnledger/api/internal/model"
)

// Catalog is the seed content of the dashboard
type Catalog struct {
	Papers  []model.Paper     `yaml:"papers"`
	Sectors []model.Sector    `yaml:"sectors"`
	Round   model.VotingRound `yaml:"round"`
}

// DefaultCatalog returns the built-in papers, sectors and round
func DefaultCatalog() Catalog {
	return Catalog{
		Papers: []model.Paper{
			{
				ID:            "paper1",
				Title:         "Quantum Computing",
				Description:   "Exploring the fundamentals of quantum computing and its applications",
				RequiredStake: 200,
				SectorID:      "quantum",
				Link:          "/papers/quantum-computing.pdf",
			},
			{
				ID:            "paper2",
				Title:         "AI in Medicine",
				Description:   "How artificial intelligence is transforming healthcare",
				RequiredStake: 150,
				SectorID:      "health",
				Link:          "/papers/ai-in-medicine.pdf",
			},
			{
				ID:            "paper3",
				Title:         "Open Science Movement",
				Description:   "The evolution and impact of open science initiatives",
				RequiredStake: 0,
				SectorID:      "open-science",
				Link:          "/papers/open-science.pdf",
			},
		},
		Sectors: []model.Sector{
			{ID: "quantum", Name: "Quantum Computing"},
			{ID: "ai", Name: "Artificial Intelligence"},
			{ID: "health", Name: "Healthcare & Medicine"},
			{ID: "open-science", Name: "Open Science"},
		},
		Round: model.VotingRound{
			ID:            "round-1",
			Name:          "Research Priorities Q1",
			StartLabel:    "Jan 1",
			EndLabel:      "Mar 31",
			DaysRemaining: 14,
		},
	}
}

// LoadCatalog reads a YAML catalog file. Sections missing from the file keep
// their defaults.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates YAML catalog content
func ParseCatalog(data []byte) (Catalog, error) {
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	c := DefaultCatalog()
	if len(file.Papers) > 0 {
		c.Papers = file.Papers
	}
	if len(file.Sectors) > 0 {
		c.Sectors = file.Sectors
	}
	if file.Round.ID != "" {
		c.Round = file.Round
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks ids are present and unique and stakes are non-negative
func (c Catalog) Validate() error {
	var errs []error

	papers := make(map[string]bool, len(c.Papers))
	for i, p := range c.Papers {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("paper %d: id is required", i))
		case len(p.ID) > model.MaxPaperIDLength:
			errs = append(errs, fmt.Errorf("paper %s: id too long", p.ID))
		case papers[p.ID]:
			errs = append(errs, fmt.Errorf("paper %s: duplicate id", p.ID))
		}
		if p.RequiredStake < 0 {
			errs = append(errs, fmt.Errorf("paper %s: required stake must not be negative", p.ID))
		}
		papers[p.ID] = true
	}

	sectors := make(map[string]bool, len(c.Sectors))
	for i, s := range c.Sectors {
		switch {
		case s.ID == "":
			errs = append(errs, fmt.Errorf("sector %d: id is required", i))
		case sectors[s.ID]:
			errs = append(errs, fmt.Errorf("sector %s: duplicate id", s.ID))
		}
		if s.Votes < 0 {
			errs = append(errs, fmt.Errorf("sector %s: votes must not be negative", s.ID))
		}
		sectors[s.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// CatalogRepository serves the read-only paper catalog
type CatalogRepository struct {
	papers []model.Paper
	index  map[string]int
	round  model.VotingRound
}

// NewCatalogRepository creates a repository over the catalog papers and round.
// Sectors are owned by the ledger, which mutates their vote totals.
func NewCatalogRepository(c Catalog) *CatalogRepository {
	papers := make([]model.Paper, len(c.Papers))
	copy(papers, c.Papers)

	index := make(map[string]int, len(papers))
	for i, p := range papers {
		index[p.ID] = i
	}
	return &CatalogRepository{papers: papers, index: index, round: c.Round}
}

// List returns all papers in catalog insertion order
func (r *CatalogRepository) List() []model.Paper {
	out := make([]model.Paper, len(r.papers))
	copy(out, r.papers)
	return out
}

// Get returns a paper by id
func (r *CatalogRepository) Get(id string) (model.Paper, bool) {
	i, ok := r.index[id]
	if !ok {
		return model.Paper{}, false
	}
	return r.papers[i], true
}

// Round returns the active voting round
func (r *CatalogRepository) Round() model.VotingRound {
	return r.round
}
