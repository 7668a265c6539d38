package rss

import (
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"go.uber.org/zap"

	"github.com/tesso57/podplay/internal/dateutil"
	"github.com/tesso57/podplay/internal/domain/podcast"
)

// Tag names are matched literally, namespace prefix included.
const (
	tagChannel     = "channel"
	tagItem        = "item"
	tagTitle       = "title"
	tagDescription = "description"
	tagGUID        = "guid"
	tagPubDate     = "pubDate"
	tagLink        = "link"
	tagEnclosure   = "enclosure"
	tagDuration    = "itunes:duration"
	tagSummary     = "itunes:summary"
)

// Walker fills a FeedAccumulator from an XML document tree.
type Walker struct {
	Now    func() time.Time
	Logger *zap.SugaredLogger
}

// Walk runs a default Walker over root.
func Walk(root *xmlquery.Node, acc *podcast.FeedAccumulator) {
	Walker{}.Walk(root, acc)
}

// Walk traverses root depth-first in document order and mutates acc.
func (w Walker) Walk(root *xmlquery.Node, acc *podcast.FeedAccumulator) {
	if root == nil || acc == nil {
		return
	}
	if w.Now == nil {
		w.Now = time.Now
	}
	if w.Logger == nil {
		w.Logger = zap.NewNop().Sugar()
	}
	s := &walkState{Walker: w, feed: acc, current: acc.CurrentEpisode()}
	s.visit(root, "", "")
}

// walkState holds the per-walk cursor. current is always the last episode of
// feed; it only changes when an <item> under <channel> is appended.
type walkState struct {
	Walker
	feed    *podcast.FeedAccumulator
	current *podcast.EpisodeAccumulator
}

func (s *walkState) visit(n *xmlquery.Node, parent, grandparent string) {
	tag := ""
	if n.Type == xmlquery.ElementNode {
		tag = tagName(n)
		if parent == tagItem && grandparent == tagChannel {
			s.episodeField(n, tag)
		}
		if parent == tagChannel {
			s.feedField(n, tag)
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		s.visit(child, tag, parent)
	}
}

func (s *walkState) episodeField(n *xmlquery.Node, tag string) {
	ep := s.current
	if ep == nil {
		return
	}
	switch tag {
	case tagTitle:
		ep.Title = textOf(n)
	case tagDescription:
		ep.Description = textOf(n)
	case tagGUID:
		ep.GUID = textOf(n)
	case tagPubDate:
		ep.PubDate = textOf(n)
	case tagLink:
		ep.Link = textOf(n)
	case tagDuration:
		ep.Duration = textOf(n)
	case tagEnclosure:
		url, hasURL := attr(n, "url")
		mediaType, hasType := attr(n, "type")
		if hasURL && hasType {
			ep.SetEnclosure(url, mediaType)
		}
	}
}

func (s *walkState) feedField(n *xmlquery.Node, tag string) {
	switch tag {
	case tagTitle:
		s.feed.Title = textOf(n)
	case tagDescription:
		s.feed.Description = textOf(n)
	case tagSummary:
		s.feed.Summary = textOf(n)
	case tagItem:
		s.current = s.feed.BeginEpisode()
	case tagPubDate:
		raw := n.InnerText()
		if _, err := dateutil.ParseRSSDate(raw); err != nil {
			s.Logger.Debugw("unparseable channel pubDate, using current time", "value", raw)
		}
		updated := dateutil.ParseFeedDate(&raw, s.Now)
		s.feed.LastUpdated = &updated
	}
}

// tagName returns the literal tag as written. An undeclared prefix is left
// in NamespaceURI by the lenient parser; a real namespace URI always
// contains a colon, a prefix never does.
func tagName(n *xmlquery.Node) string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	if ns := n.NamespaceURI; ns != "" && !strings.Contains(ns, ":") {
		return ns + ":" + n.Data
	}
	return n.Data
}

func textOf(n *xmlquery.Node) *string {
	text := n.InnerText()
	return &text
}

// attr looks up an unprefixed attribute; ok reports whether it exists.
func attr(n *xmlquery.Node, name string) (value string, ok bool) {
	for _, a := range n.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
