package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// topTopics caps the word-frequency list at the most frequent words.
const topTopics = 20

// stopWords are common English words excluded from topic extraction.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an and or but in on at to for of with by is are was were " +
			"be been have has had do does did will would could should may " +
			"might can this that these those i you he she it we they me " +
			"him her us them") {
		stopWords[w] = struct{}{}
	}
}

// ContentStatistics holds corpus-level totals and averages.
type ContentStatistics struct {
	TotalNotes               int     `json:"total_notes"`
	TotalWords               int     `json:"total_words"`
	TotalCharacters          int     `json:"total_characters"`
	AverageWordsPerNote      float64 `json:"average_words_per_note"`
	AverageCharactersPerNote float64 `json:"average_characters_per_note"`
}

// LengthDistribution describes the spread of note lengths in words.
type LengthDistribution struct {
	ShortestNoteWords int     `json:"shortest_note_words"`
	LongestNoteWords  int     `json:"longest_note_words"`
	MedianNoteWords   int     `json:"median_note_words"`
	AverageNoteWords  float64 `json:"average_note_words"`
}

// WritingPatterns counts notes with unusual content lengths relative
// to the average.
type WritingPatterns struct {
	NotesWithNoContent    int `json:"notes_with_no_content"`
	NotesWithLongContent  int `json:"notes_with_long_content"`
	NotesWithShortContent int `json:"notes_with_short_content"`
}

// Insights is the content analysis result.
type Insights struct {
	ContentStatistics      ContentStatistics  `json:"content_statistics"`
	NoteLengthDistribution LengthDistribution `json:"note_length_distribution"`
	TopTopics              map[string]int     `json:"top_topics"`
	CategoryDistribution   map[string]int     `json:"category_distribution"`
	WritingPatterns        WritingPatterns    `json:"writing_patterns"`
	GeneratedAt            time.Time          `json:"generated_at"`
}

// BuildInsights analyzes note content for statistics, topics, and
// writing patterns. The second return value is false when there are no
// notes to analyze — in that case no statistics are computed at all.
func BuildInsights(notes []Note, now time.Time, rep Reporter) (Insights, bool) {
	if len(notes) == 0 {
		return Insights{}, false
	}

	totalWords := 0
	totalChars := 0
	wordFreq := map[string]int{}
	lengths := make([]int, 0, len(notes))
	contentLengths := make([]int, 0, len(notes))
	categories := map[string]int{}
	noContent := 0

	for _, n := range notes {
		combined := strings.ToLower(n.Title + " " + n.Content)
		words := strings.Fields(combined)

		lengths = append(lengths, len(words))
		contentLengths = append(contentLengths, len(strings.Fields(n.Content)))
		totalWords += len(words)
		totalChars += utf8.RuneCountInString(combined)

		for _, w := range words {
			if len(w) <= 2 {
				continue
			}
			if _, stop := stopWords[w]; stop {
				continue
			}
			wordFreq[w]++
		}

		categories[n.CategoryName(uncategorized)]++
		if strings.TrimSpace(n.Content) == "" {
			noContent++
		}
	}

	avgWords := float64(totalWords) / float64(len(notes))
	avgChars := float64(totalChars) / float64(len(notes))

	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)

	// Long/short classification looks at content-only word counts
	// against the title-inclusive average.
	long := 0
	short := 0
	for _, l := range contentLengths {
		if float64(l) > avgWords*2 {
			long++
		}
		if float64(l) < avgWords/2 {
			short++
		}
	}

	ins := Insights{
		ContentStatistics: ContentStatistics{
			TotalNotes:               len(notes),
			TotalWords:               totalWords,
			TotalCharacters:          totalChars,
			AverageWordsPerNote:      round2(avgWords),
			AverageCharactersPerNote: round2(avgChars),
		},
		NoteLengthDistribution: LengthDistribution{
			ShortestNoteWords: sorted[0],
			LongestNoteWords:  sorted[len(sorted)-1],
			MedianNoteWords:   sorted[len(sorted)/2],
			AverageNoteWords:  round2(avgWords),
		},
		TopTopics:            topN(wordFreq, topTopics),
		CategoryDistribution: categories,
		WritingPatterns: WritingPatterns{
			NotesWithNoContent:    noContent,
			NotesWithLongContent:  long,
			NotesWithShortContent: short,
		},
		GeneratedAt: now,
	}

	report(rep, "info", fmt.Sprintf("analyzed %d notes with %d total words", len(notes), totalWords))
	return ins, true
}
