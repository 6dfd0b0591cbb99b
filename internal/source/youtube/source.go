// Package youtube imports watch history from a Google Takeout
// watch-history.html export. The document is parsed locally; nothing is
// fetched over the network.
package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"life_logger/internal/domain"
)

const contentCellClass = "content-cell mdl-cell mdl-cell--6-col mdl-typography--body-1"

var videoIDPattern = regexp.MustCompile(`v=([a-zA-Z0-9_-]{11})`)

// Takeout exports carry timestamps like "13 Apr 2025, 18:03:11 GMT+01:00" or
// with an abbreviated zone name depending on export locale.
var watchedAtLayouts = []string{
	"2 Jan 2006, 15:04:05 GMT-07:00",
	"02 Jan 2006, 15:04:05 GMT-07:00",
	"2 Jan 2006, 15:04:05 MST",
}

type Config struct {
	HistoryPath string
	MaxEntries  int
}

// Source parses the export document once per pass. Entries dedup on
// (source, title, timestamp); the export carries no stable video-view id.
type Source struct {
	historyPath string
	maxEntries  int
	logger      *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		historyPath: cfg.HistoryPath,
		maxEntries:  cfg.MaxEntries,
		logger:      logger.With("source", domain.SourceYouTube),
	}
}

func (s *Source) ID() domain.Source {
	return domain.SourceYouTube
}

func (s *Source) Name() string {
	return "YouTube"
}

func (s *Source) FetchRecent(ctx context.Context, _ *time.Time) ([]domain.TimelineRecord, int, error) {
	f, err := os.Open(s.historyPath)
	if err != nil {
		return nil, 0, fmt.Errorf("open watch history: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, 0, fmt.Errorf("parse watch history: %w", err)
	}

	cells := findContentCells(doc)
	if len(cells) > s.maxEntries {
		cells = cells[:s.maxEntries]
	}

	records := make([]domain.TimelineRecord, 0, len(cells))
	skipped := 0

	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			return records, skipped, err
		}

		lines := textLines(cell)
		// Cells that are not watch events ("Visited ...", survey prompts)
		// are not part of the history.
		if len(lines) == 0 || !strings.HasPrefix(lines[0], "Watched") {
			continue
		}

		rec, err := parseEntry(cell, lines)
		if err != nil {
			s.logger.Warn("skipping watch entry", "error", err)
			skipped++
			continue
		}
		records = append(records, *rec)
	}

	return records, skipped, nil
}

func parseEntry(cell *html.Node, lines []string) (*domain.TimelineRecord, error) {
	anchors := collectAnchors(cell)
	if len(anchors) < 2 {
		return nil, &domain.NormalizationError{
			Source: domain.SourceYouTube,
			Field:  "links",
			Value:  fmt.Sprintf("%d", len(anchors)),
			Err:    fmt.Errorf("expected video and channel links"),
		}
	}

	videoURL := anchors[0].href
	title := anchors[0].text
	channel := anchors[1].text

	m := videoIDPattern.FindStringSubmatch(videoURL)
	if m == nil {
		return nil, &domain.NormalizationError{
			Source: domain.SourceYouTube,
			Field:  "url",
			Value:  videoURL,
			Err:    fmt.Errorf("no video id"),
		}
	}
	videoID := m[1]

	rawTime := lines[len(lines)-1]
	watchedAt, err := parseWatchedAt(rawTime)
	if err != nil {
		return nil, &domain.NormalizationError{
			Source: domain.SourceYouTube,
			Field:  "watched_at",
			Value:  rawTime,
			Err:    err,
		}
	}

	thumbnail := fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
	fullTitle := fmt.Sprintf("%s (%s)", title, channel)

	return &domain.TimelineRecord{
		Source:    domain.SourceYouTube,
		Title:     fullTitle,
		Timestamp: watchedAt.UTC(),
		URL:       &videoURL,
		Thumbnail: &thumbnail,
		Channel:   &channel,
	}, nil
}

func parseWatchedAt(raw string) (time.Time, error) {
	var err error
	for _, layout := range watchedAtLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func findContentCells(doc *html.Node) []*html.Node {
	var cells []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" && attrVal(n, "class") == contentCellClass {
			cells = append(cells, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return cells
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

type anchor struct {
	href string
	text string
}

func collectAnchors(n *html.Node) []anchor {
	var anchors []anchor
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			anchors = append(anchors, anchor{
				href: attrVal(n, "href"),
				text: strings.TrimSpace(nodeText(n)),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return anchors
}

// textLines returns the trimmed, non-empty text fragments of a cell in
// document order. The last line of a watch entry is its timestamp.
func textLines(n *html.Node) []string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return lines
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
