package analytics

import (
	"strings"
	"testing"
)

func TestBuildInsightsNoNotes(t *testing.T) {
	now := refTime(t)

	_, ok := BuildInsights(nil, now, nil)
	if ok {
		t.Fatal("BuildInsights(empty) ok = true, want false")
	}
}

func TestBuildInsightsContentStatistics(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", Title: "golang patterns", Content: "concurrency channels goroutines"},
		{ID: "2", Title: "golang testing", Content: ""},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}

	if ins.ContentStatistics.TotalNotes != 2 {
		t.Errorf("total_notes = %d, want 2", ins.ContentStatistics.TotalNotes)
	}
	// note 1: 5 words, note 2: 2 words.
	if ins.ContentStatistics.TotalWords != 7 {
		t.Errorf("total_words = %d, want 7", ins.ContentStatistics.TotalWords)
	}
	if ins.ContentStatistics.AverageWordsPerNote != 3.5 {
		t.Errorf("average_words_per_note = %v, want 3.5", ins.ContentStatistics.AverageWordsPerNote)
	}
	if ins.WritingPatterns.NotesWithNoContent != 1 {
		t.Errorf("notes_with_no_content = %d, want 1", ins.WritingPatterns.NotesWithNoContent)
	}
}

func TestBuildInsightsTopicsFilterStopWordsAndShortWords(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", Title: "the and a", Content: "kubernetes kubernetes go is"},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}

	if got := ins.TopTopics["kubernetes"]; got != 2 {
		t.Errorf("top_topics[kubernetes] = %d, want 2", got)
	}
	for _, w := range []string{"the", "and", "a", "is", "go"} {
		if _, ok := ins.TopTopics[w]; ok {
			t.Errorf("top_topics contains %q, want filtered (stop word or <= 2 chars)", w)
		}
	}
}

func TestBuildInsightsLengthDistribution(t *testing.T) {
	now := refTime(t)

	// 1, 4, and 5 words respectively.
	notes := []Note{
		{ID: "1", Title: "one", Content: ""},
		{ID: "2", Title: "two words here yes", Content: ""},
		{ID: "3", Title: "alpha beta gamma delta epsilon", Content: ""},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}

	d := ins.NoteLengthDistribution
	if d.ShortestNoteWords != 1 || d.LongestNoteWords != 5 || d.MedianNoteWords != 4 {
		t.Errorf("length distribution = %+v, want min 1, max 5, median 4", d)
	}
}

func TestBuildInsightsCategoryDistribution(t *testing.T) {
	now := refTime(t)

	notes := []Note{
		{ID: "1", Title: "x", Category: &Category{Name: "Work"}},
		{ID: "2", Title: "y"},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}
	if ins.CategoryDistribution["Work"] != 1 || ins.CategoryDistribution["Uncategorized"] != 1 {
		t.Errorf("category_distribution = %v", ins.CategoryDistribution)
	}
}

func TestBuildInsightsWritingPatterns(t *testing.T) {
	now := refTime(t)

	// Combined word counts (title + content) are 21, 2, and 3, so the
	// average is 8.67. The long/short split counts content words only:
	// 20 is long (> 17.33), 1 and 2 are short (< 4.33).
	notes := []Note{
		{ID: "1", Title: "t", Content: strings.TrimSpace(strings.Repeat("word ", 20))},
		{ID: "2", Title: "t", Content: "one"},
		{ID: "3", Title: "t", Content: "one two"},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}
	if ins.WritingPatterns.NotesWithLongContent != 1 {
		t.Errorf("notes_with_long_content = %d, want 1", ins.WritingPatterns.NotesWithLongContent)
	}
	if ins.WritingPatterns.NotesWithShortContent != 2 {
		t.Errorf("notes_with_short_content = %d, want 2", ins.WritingPatterns.NotesWithShortContent)
	}
}

func TestBuildInsightsShortClassificationIgnoresTitleWords(t *testing.T) {
	now := refTime(t)

	// A word-heavy title inflates a note's combined count but must not
	// lift it out of the "short" bucket: the average here is 5.5 words
	// and both contents (1 and 2 words) fall below half of it.
	notes := []Note{
		{ID: "1", Title: "alpha beta gamma delta epsilon zeta eta theta", Content: "solo"},
		{ID: "2", Title: "", Content: "two words"},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}
	if ins.WritingPatterns.NotesWithShortContent != 2 {
		t.Errorf("notes_with_short_content = %d, want 2", ins.WritingPatterns.NotesWithShortContent)
	}
	if ins.WritingPatterns.NotesWithLongContent != 0 {
		t.Errorf("notes_with_long_content = %d, want 0", ins.WritingPatterns.NotesWithLongContent)
	}
}

func TestBuildInsightsCountsCharactersNotBytes(t *testing.T) {
	now := refTime(t)

	// "日本語 メモ" is 6 characters; a byte count would report 16.
	notes := []Note{
		{ID: "1", Title: "日本語", Content: "メモ"},
	}

	ins, ok := BuildInsights(notes, now, nil)
	if !ok {
		t.Fatal("BuildInsights ok = false, want true")
	}
	if ins.ContentStatistics.TotalCharacters != 6 {
		t.Errorf("total_characters = %d, want 6", ins.ContentStatistics.TotalCharacters)
	}
	if ins.ContentStatistics.AverageCharactersPerNote != 6 {
		t.Errorf("average_characters_per_note = %v, want 6", ins.ContentStatistics.AverageCharactersPerNote)
	}
}
