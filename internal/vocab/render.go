package vocab

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

const (
	bannerRule     = "  // ==========================================\n"
	dinosaurBanner = "Dinosaurs (恐龍) - All Levels"
)

// Levels are the difficulty tiers rendered before the dinosaur bucket.
var Levels = []int{1, 2, 3}

// Bucket is one banner-delimited section of the rendered list.
type Bucket struct {
	Title   string
	Entries []Entry
}

// Buckets sorts the document's entries into level buckets followed by the
// dinosaur bucket. Level buckets order by (difficulty, category, id); the
// dinosaur bucket by (difficulty, id). Ties keep input order.
func (d *Document) Buckets() ([]Bucket, error) {
	buckets := make([]Bucket, 0, len(Levels)+1)
	index := make(map[int]int, len(Levels))
	for i, level := range Levels {
		index[level] = i
		buckets = append(buckets, Bucket{Title: levelTitle(level)})
	}
	dinosaurs := Bucket{Title: dinosaurBanner}

	for _, e := range d.Entries {
		if e.IsDinosaur() {
			dinosaurs.Entries = append(dinosaurs.Entries, e)
			continue
		}
		i, ok := index[e.Difficulty]
		if !ok {
			return nil, fmt.Errorf("%w: entry %q has difficulty %d", ErrUnsupportedDifficulty, e.ID, e.Difficulty)
		}
		buckets[i].Entries = append(buckets[i].Entries, e)
	}

	for i := range buckets {
		slices.SortStableFunc(buckets[i].Entries, compareLevelEntries)
	}
	slices.SortStableFunc(dinosaurs.Entries, compareDinosaurEntries)
	return append(buckets, dinosaurs), nil
}

func compareLevelEntries(a, b Entry) int {
	if c := cmp.Compare(a.Difficulty, b.Difficulty); c != 0 {
		return c
	}
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func compareDinosaurEntries(a, b Entry) int {
	if c := cmp.Compare(a.Difficulty, b.Difficulty); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

func levelTitle(level int) string {
	return fmt.Sprintf("Level %d (難度 %d)", level, level)
}

// Render produces the resorted file text.
func Render(doc *Document) (string, error) {
	buckets, err := doc.Buckets()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(doc.Header)
	b.WriteByte('\n')
	for i, bucket := range buckets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(bannerRule)
		b.WriteString("  // ")
		b.WriteString(bucket.Title)
		b.WriteByte('\n')
		b.WriteString(bannerRule)
		for _, e := range bucket.Entries {
			b.WriteString(e.Text)
		}
	}
	b.WriteString(Footer)
	return b.String(), nil
}
