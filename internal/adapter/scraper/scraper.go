// Package scraper extracts multiple-choice questions from HTML pages that follow
// the .question-block markup convention.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pgcet-quiz/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// Selectors of the markup convention.
const (
	BlockSelector       = ".question-block"
	TextSelector        = ".q-text"
	AnswerSelector      = ".answer"
	ExplanationSelector = ".explanation"
	YearSelector        = ".year"
	YearAttribute       = "data-year"
)

var optionSelectors = [4]struct {
	letter   domain.OptionLetter
	selector string
}{
	{domain.OptionA, ".optA"},
	{domain.OptionB, ".optB"},
	{domain.OptionC, ".optC"},
	{domain.OptionD, ".optD"},
}

var (
	answerPrefix = regexp.MustCompile(`^(?i)(?:correct\s+answer|answer|ans)\s*[:.\-]\s*`)
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Source is one page to scrape and the year its questions belong to when the
// page does not say.
type Source struct {
	URL  string
	Year int
}

// Result is what one page yielded.
type Result struct {
	URL       string
	Questions []*domain.Question
	Dropped   int
	// Gaps describes every dropped block, in page order.
	Gaps []error
}

// Scraper downloads and parses question pages.
type Scraper struct {
	client *http.Client
}

// New returns a Scraper. A nil client gets a default one with the given timeout.
func New(client *http.Client, timeout time.Duration) *Scraper {
	if client == nil {
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}
	return &Scraper{client: client}
}

// Fetch downloads src and parses it. Any transport or HTTP status failure is returned as a FetchError.
func (s *Scraper) Fetch(ctx context.Context, src Source) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Sprintf("invalid source url %s", src.URL), err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Sprintf("failed to fetch %s", src.URL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFetchError(fmt.Sprintf("failed to fetch %s: status %d", src.URL, resp.StatusCode), nil)
	}
	return ParseReader(resp.Body, src, time.Now().UTC())
}

// ParseReader parses an HTML document read from r.
func ParseReader(r io.Reader, src Source, fetchedAt time.Time) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Sprintf("failed to parse %s", src.URL), err)
	}
	return Parse(doc, src, fetchedAt), nil
}

// Parse extracts every complete question block of doc. Incomplete blocks are
// counted in Dropped instead of failing the page.
func Parse(doc *goquery.Document, src Source, fetchedAt time.Time) *Result {
	res := &Result{URL: src.URL, Questions: make([]*domain.Question, 0)}

	doc.Find(BlockSelector).Each(func(i int, block *goquery.Selection) {
		q, err := parseBlock(block, src, fetchedAt)
		if err != nil {
			res.Dropped++
			res.Gaps = append(res.Gaps, fmt.Errorf("block %d: %w", i, err))
			return
		}
		res.Questions = append(res.Questions, q)
	})
	return res
}

func parseBlock(block *goquery.Selection, src Source, fetchedAt time.Time) (*domain.Question, error) {
	text := cleanText(block.Find(TextSelector).First().Text())
	if text == "" {
		return nil, domain.NewValidationGapError("question text is missing")
	}

	var options domain.Options
	for _, o := range optionSelectors {
		v := cleanText(block.Find(o.selector).First().Text())
		if v == "" {
			return nil, domain.NewValidationGapError(fmt.Sprintf("option %s is missing", o.letter))
		}
		switch o.letter {
		case domain.OptionA:
			options.A = v
		case domain.OptionB:
			options.B = v
		case domain.OptionC:
			options.C = v
		case domain.OptionD:
			options.D = v
		}
	}

	rawAnswer := cleanText(block.Find(AnswerSelector).First().Text())
	if rawAnswer == "" {
		return nil, domain.NewValidationGapError("answer is missing")
	}
	correct, ok := resolveAnswer(rawAnswer, options)
	if !ok {
		return nil, domain.NewValidationGapError(fmt.Sprintf("answer %q does not name an option", rawAnswer))
	}

	q := domain.NewQuestion(text, options, correct)
	q.Explanation = cleanText(block.Find(ExplanationSelector).First().Text())
	q.SourceURL = src.URL
	q.FetchedAt = fetchedAt
	if year := blockYear(block, src.Year); year > 0 {
		q.Year = &year
	}
	if err := q.Validate(); err != nil {
		return nil, domain.NewValidationGapError(err.Error())
	}
	return q, nil
}

// resolveAnswer accepts a slot letter in any of its usual spellings or the
// full text of one option.
func resolveAnswer(raw string, options domain.Options) (domain.OptionLetter, bool) {
	if l, err := domain.ParseOptionLetter(raw); err == nil {
		return l, true
	}
	stripped := strings.TrimSpace(answerPrefix.ReplaceAllString(raw, ""))
	if l, err := domain.ParseOptionLetter(stripped); err == nil {
		return l, true
	}
	if l, ok := options.LetterOf(stripped); ok {
		return l, true
	}
	for _, l := range domain.OptionLetters {
		if v, _ := options.Get(l); strings.EqualFold(v, stripped) {
			return l, true
		}
	}
	return "", false
}

func blockYear(block *goquery.Selection, fallback int) int {
	if raw, ok := block.Attr(YearAttribute); ok {
		if y, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return y
		}
	}
	if m := yearPattern.FindString(block.Find(YearSelector).First().Text()); m != "" {
		y, _ := strconv.Atoi(m)
		return y
	}
	return fallback
}

// cleanText trims and collapses internal whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
