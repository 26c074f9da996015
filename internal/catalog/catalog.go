package catalog

import (
	"errors"
	"fmt"
)

var ErrNoQuestions = errors.New("no questions available")

// Section identifies which scored half of the test a question belongs to.
// It is decided once at catalog construction; nothing downstream inspects
// question id prefixes.
type Section string

const (
	SectionMath           Section = "math"
	SectionReadingWriting Section = "reading_writing"
)

func (s Section) Label() string {
	if s == SectionMath {
		return "Math"
	}
	return "Reading & Writing"
}

type Question struct {
	ID            string   `json:"id"`
	Section       Section  `json:"section"`
	Module        int      `json:"module"`
	Passage       string   `json:"passage,omitempty"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"-"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
}

// Catalog is the immutable, process-wide question bank: the full ordered
// sequence (math section first) plus an id index. Built once at startup and
// injected where needed; it is never mutated after construction.
type Catalog struct {
	questions  []Question
	byID       map[string]Question
	orderedIDs []string
}

// New builds a catalog from an already-ordered question list. It fails on an
// empty list (the process cannot serve tests) and on duplicate ids.
func New(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	byID := make(map[string]Question, len(questions))
	orderedIDs := make([]string, 0, len(questions))
	for _, q := range questions {
		if _, exists := byID[q.ID]; exists {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		byID[q.ID] = q
		orderedIDs = append(orderedIDs, q.ID)
	}

	return &Catalog{
		questions:  append([]Question(nil), questions...),
		byID:       byID,
		orderedIDs: orderedIDs,
	}, nil
}

// Load builds the catalog from the static question bank.
func Load() (*Catalog, error) {
	return New(bankQuestions())
}

func (c *Catalog) Get(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// OrderedIDs returns the fixed test ordering. The slice is a fresh copy on
// every call so callers can keep or mutate it without touching the catalog.
func (c *Catalog) OrderedIDs() []string {
	return append([]string(nil), c.orderedIDs...)
}

func (c *Catalog) Len() int {
	return len(c.orderedIDs)
}

// SectionTotals counts how many catalog questions belong to each section.
func (c *Catalog) SectionTotals() (math, readingWriting int) {
	for _, q := range c.questions {
		if q.Section == SectionMath {
			math++
		} else {
			readingWriting++
		}
	}
	return math, readingWriting
}
