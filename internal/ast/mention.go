package ast

import (
	"net/url"
	"strings"
)

// MentionScheme is the URL scheme that marks a link as a Notion mention.
const MentionScheme = "notion"

var mentionTypes = map[string]bool{
	"page":     true,
	"database": true,
	"user":     true,
	"date":     true,
}

// ParseMention reads a notion://<type>/<id> link target. The label is the
// link text and becomes the mention's plain text.
func ParseMention(target, label string) (*Mention, bool) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme != MentionScheme {
		return nil, false
	}
	kind := u.Host
	if !mentionTypes[kind] {
		return nil, false
	}
	id := strings.Trim(u.Path, "/")
	if id == "" {
		return nil, false
	}
	if label == "" {
		label = id
	}
	return &Mention{Type: kind, ID: id, Label: label}, true
}
