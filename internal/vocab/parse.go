package vocab

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultMarker is the declaration that opens the vocabulary array.
	DefaultMarker = "export const VOCAB_LIST: VocabItem[] = ["
	// DefaultSentinel is the category collected into the trailing bucket.
	DefaultSentinel = "dinosaur"
	// Footer closes the array in every rendered file.
	Footer = "\n];\n"

	closing = "];"
)

var (
	// ErrMarkerNotFound is returned when the opening marker is absent.
	ErrMarkerNotFound = errors.New("vocabulary list declaration not found")
	// ErrUnsupportedDifficulty is returned for a non-sentinel entry outside levels 1-3.
	ErrUnsupportedDifficulty = errors.New("unsupported difficulty")
)

var (
	difficultyPattern = regexp.MustCompile(`\bdifficulty:\s*(\d+)`)
	categoryPattern   = regexp.MustCompile(`\bcategory:\s*'([^']+)'`)
	idPattern         = regexp.MustCompile(`\bid:\s*'([^']+)'`)
)

// Entry is one object literal from the list, kept as raw text.
type Entry struct {
	// Text holds the block's lines verbatim, each terminated by "\n".
	Text       string
	Difficulty int
	Category   string
	ID         string

	dinosaur bool
}

// IsDinosaur reports whether the entry belongs in the trailing bucket.
func (e Entry) IsDinosaur() bool { return e.dinosaur }

// Document is a parsed vocabulary file.
type Document struct {
	// Header is everything up to and including the opening marker.
	Header  string
	Entries []Entry
	// Excluded counts complete blocks missing difficulty, category or id.
	Excluded int
	// Unterminated is set when the list ended inside an open block, which is dropped.
	Unterminated bool
}

// Parse splits content into header and entries. Lines outside entry blocks,
// including old banner comments, are discarded. An empty sentinel selects
// DefaultSentinel. A difficulty too large to represent fails with
// ErrUnsupportedDifficulty rather than dropping the entry.
func Parse(content, marker, sentinel string) (*Document, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	idx := strings.Index(content, marker)
	if idx < 0 {
		return nil, ErrMarkerNotFound
	}
	end := idx + len(marker)
	doc := &Document{Header: content[:end]}

	body := content[end:]
	if cut := strings.LastIndex(body, closing); cut >= 0 {
		body = body[:cut]
	}

	blocks, open := splitBlocks(body)
	doc.Unterminated = open
	for _, block := range blocks {
		entry, ok, err := parseEntry(block, sentinel)
		if err != nil {
			return nil, err
		}
		if !ok {
			doc.Excluded++
			continue
		}
		doc.Entries = append(doc.Entries, entry)
	}
	return doc, nil
}

// splitBlocks groups lines into brace-balanced blocks. A block opens on a
// line whose trimmed text starts with "{" and closes when the running brace
// depth returns to zero. The second result reports a block left open at EOF.
func splitBlocks(body string) ([]string, bool) {
	var (
		blocks  []string
		current strings.Builder
		depth   int
		inEntry bool
	)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if !inEntry {
			if !strings.HasPrefix(trimmed, "{") {
				continue
			}
			inEntry = true
			current.Reset()
			depth = 0
		}
		current.WriteString(line)
		current.WriteByte('\n')
		depth += strings.Count(trimmed, "{") - strings.Count(trimmed, "}")
		if depth <= 0 {
			blocks = append(blocks, current.String())
			inEntry = false
		}
	}
	return blocks, inEntry
}

func parseEntry(block, sentinel string) (Entry, bool, error) {
	difficulty := difficultyPattern.FindStringSubmatch(block)
	category := categoryPattern.FindStringSubmatch(block)
	id := idPattern.FindStringSubmatch(block)
	if difficulty == nil || category == nil || id == nil {
		return Entry{}, false, nil
	}
	level, err := strconv.Atoi(difficulty[1])
	if err != nil {
		return Entry{}, false, fmt.Errorf("%w: entry %q has difficulty %s", ErrUnsupportedDifficulty, id[1], difficulty[1])
	}
	return Entry{
		Text:       block,
		Difficulty: level,
		Category:   category[1],
		ID:         id[1],
		dinosaur:   category[1] == sentinel,
	}, true, nil
}
