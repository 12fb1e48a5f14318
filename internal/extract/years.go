package extract

import (
	"regexp"
	"strconv"

	"github.com/ppiankov/bibfact/internal/model"
)

// YearExtractor finds four-digit year mentions in free text. A mention is a
// maximal digit run of exactly four characters, so "12345" contains no year
// while "1950-1955" contains two. No plausibility bounds are applied;
// "9999" counts.
type YearExtractor struct {
	runs *regexp.Regexp
}

// NewYearExtractor creates a new year extractor
func NewYearExtractor() *YearExtractor {
	return &YearExtractor{
		runs: regexp.MustCompile(`[0-9]+`),
	}
}

// years returns every four-digit mention in order of appearance
func (e *YearExtractor) years(text string) []int {
	var out []int
	for _, run := range e.runs.FindAllString(text, -1) {
		if len(run) != 4 {
			continue
		}
		y, err := strconv.Atoi(run)
		if err != nil {
			// Four ASCII digits always parse; kept for safety.
			continue
		}
		out = append(out, y)
	}
	return out
}

// Range returns the min/max window over all year mentions in text, or an
// undefined window when there are none. Nil text is treated as empty.
func (e *YearExtractor) Range(text *string) model.Window {
	if text == nil {
		return model.Window{}
	}
	years := e.years(*text)
	if len(years) == 0 {
		return model.Window{}
	}
	min, max := years[0], years[0]
	for _, y := range years[1:] {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return model.NewWindow(min, max)
}

// First returns the first year mention in text, or nil when there is none
func (e *YearExtractor) First(text string) *int {
	years := e.years(text)
	if len(years) == 0 {
		return nil
	}
	return &years[0]
}
