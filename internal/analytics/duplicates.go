package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	// DefaultSimilarityThreshold is the minimum score for two notes to
	// count as potential duplicates.
	DefaultSimilarityThreshold = 0.8

	// maxDuplicatePairs caps the report at the highest-scoring pairs.
	maxDuplicatePairs = 20

	// previewLength is the maximum content preview length in a
	// duplicate entry.
	previewLength = 100
)

// NotePreview is the compact note view embedded in a duplicate pair.
type NotePreview struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	ContentPreview string  `json:"content_preview"`
	CreatedAt      *string `json:"created_at"`
	Category       *string `json:"category"`
}

// DuplicatePair is two notes whose similarity met the threshold.
type DuplicatePair struct {
	SimilarityScore float64       `json:"similarity_score"`
	Notes           []NotePreview `json:"notes"`
}

// DuplicateReport is the result of a duplicate scan.
type DuplicateReport struct {
	TotalNotesAnalyzed   int             `json:"total_notes_analyzed"`
	SimilarityThreshold  float64         `json:"similarity_threshold"`
	DuplicateGroupsFound int             `json:"duplicate_groups_found"`
	Duplicates           []DuplicatePair `json:"duplicates"`
	Message              string          `json:"message,omitempty"`
	GeneratedAt          time.Time       `json:"generated_at"`
}

// FindDuplicates scores every unordered pair of notes once and keeps
// pairs with similarity >= threshold, sorted by descending score and
// capped at the top 20. Fewer than two notes is not an error: the
// report is empty and carries an explanatory message.
//
// Repeated calls over the same input produce the same ordered result:
// ties keep the deterministic pair-scan order.
func FindDuplicates(notes []Note, threshold float64, now time.Time, rep Reporter) DuplicateReport {
	r := DuplicateReport{
		TotalNotesAnalyzed:  len(notes),
		SimilarityThreshold: threshold,
		Duplicates:          []DuplicatePair{},
		GeneratedAt:         now,
	}

	if len(notes) < 2 {
		r.Message = "Not enough notes to check for duplicates"
		return r
	}

	totalPairs := len(notes) * (len(notes) - 1) / 2
	scanned := 0

	// The visited set is keyed by the sorted id pair so each pair is
	// scored exactly once even if the source list carries duplicates.
	visited := make(map[[2]string]struct{}, totalPairs)

	var pairs []DuplicatePair
	for i, a := range notes {
		for _, b := range notes[i+1:] {
			key := pairKey(a.ID, b.ID)
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}

			scanned++
			if scanned%500 == 0 {
				progress(rep, scanned, totalPairs)
			}

			score := Similarity(a, b)
			if score < threshold {
				continue
			}
			pairs = append(pairs, DuplicatePair{
				SimilarityScore: round3(score),
				Notes:           []NotePreview{preview(a), preview(b)},
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].SimilarityScore > pairs[j].SimilarityScore
	})

	r.DuplicateGroupsFound = len(pairs)
	if len(pairs) > maxDuplicatePairs {
		pairs = pairs[:maxDuplicatePairs]
	}
	r.Duplicates = pairs

	report(rep, "info", fmt.Sprintf("found %d potential duplicate pairs across %d notes", r.DuplicateGroupsFound, len(notes)))
	return r
}

// pairKey builds the order-independent visited-set key for two ids.
func pairKey(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

func preview(n Note) NotePreview {
	p := NotePreview{
		ID:             n.ID,
		Title:          n.DisplayTitle(),
		ContentPreview: truncate(n.Content, previewLength),
	}
	if n.CreatedAt != nil {
		s := n.CreatedAt.Format(time.RFC3339)
		p.CreatedAt = &s
	}
	if n.Category != nil && n.Category.Name != "" {
		name := n.Category.Name
		p.Category = &name
	}
	return p
}

// truncate shortens s to max characters, marking the cut with an
// ellipsis. The cut counts runes, never splitting a multi-byte
// character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
