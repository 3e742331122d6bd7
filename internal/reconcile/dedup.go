package reconcile

import "riddl/internal/compiler"

type dedupKey struct {
	line int
	col  int
	msg  string
}

// Deduper remembers raw messages by reported position and stripped text.
type Deduper struct {
	seen map[dedupKey]struct{}
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[dedupKey]struct{})}
}

// Seen reports whether an identical message was already recorded, and
// records it otherwise.
func (d *Deduper) Seen(msg compiler.Message) bool {
	key := dedupKey{
		line: msg.Location.Line,
		col:  msg.Location.Col,
		msg:  StripFormatting(msg.Message),
	}
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}
