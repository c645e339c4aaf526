package buffer

// CompletionState holds an open completion session: the candidate list
// anchored at the cursor and the optional highlighted candidate.
type CompletionState struct {
	// Candidates are the completion texts in menu order.
	Candidates []string

	// Index is the highlighted candidate, or -1 when the menu is open
	// with nothing selected.
	Index int

	// start is the rune offset where the completed word begins.
	start int

	// original is the word fragment present when the session opened,
	// used to size the replacement region as candidates are applied.
	original string
}

// Selected returns the highlighted candidate, if any.
func (cs *CompletionState) Selected() (string, bool) {
	if cs == nil || cs.Index < 0 || cs.Index >= len(cs.Candidates) {
		return "", false
	}
	return cs.Candidates[cs.Index], true
}

// HasSelection returns true when a candidate is highlighted.
func (cs *CompletionState) HasSelection() bool {
	_, ok := cs.Selected()
	return ok
}

// Completer produces completion candidates for a document position.
// Candidate ranking is the completer's concern, not the buffer's.
type Completer interface {
	Complete(doc Document) []string
}

// StartCompletion opens a completion session at the cursor. With
// selectFirst the first candidate is highlighted and applied; without
// it the menu opens with nothing selected and the text untouched.
// Does nothing when no completer is configured or it returns no
// candidates.
func (b *Buffer) StartCompletion(selectFirst bool) {
	if b.completer == nil {
		return
	}

	doc := b.Document()
	candidates := b.completer.Complete(doc)
	if len(candidates) == 0 {
		return
	}

	word, start := doc.WordBeforeCursor()
	b.completion = &CompletionState{
		Candidates: candidates,
		Index:      -1,
		start:      start,
		original:   word,
	}

	if selectFirst {
		b.applyCandidate(0)
	}
}

// CompletionState returns the open completion session, or nil.
func (b *Buffer) CompletionState() *CompletionState {
	return b.completion
}

// ClearCompletion closes the completion menu without altering text.
func (b *Buffer) ClearCompletion() {
	b.completion = nil
}

// CompleteNext advances the highlight to the next candidate, wrapping
// at the end. No-op when no session is open.
func (b *Buffer) CompleteNext() {
	if b.completion == nil {
		return
	}
	next := b.completion.Index + 1
	if next >= len(b.completion.Candidates) {
		next = 0
	}
	b.applyCandidate(next)
}

// CompletePrevious moves the highlight to the previous candidate,
// wrapping at the start. No-op when no session is open.
func (b *Buffer) CompletePrevious() {
	if b.completion == nil {
		return
	}
	prev := b.completion.Index - 1
	if prev < 0 {
		prev = len(b.completion.Candidates) - 1
	}
	b.applyCandidate(prev)
}

// applyCandidate highlights candidate i and writes its text over the
// completion region, leaving the cursor after it.
func (b *Buffer) applyCandidate(i int) {
	cs := b.completion
	if cs == nil || i < 0 || i >= len(cs.Candidates) {
		return
	}

	candidate := cs.Candidates[i]
	b.replaceRunes(cs.start, b.cursor, candidate)
	b.cursor = cs.start + len([]rune(candidate))
	cs.Index = i
}
