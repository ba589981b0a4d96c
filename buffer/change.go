package buffer

// ChangeKind identifies the operation that produced a change.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeDelete
	ChangeMove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeMove:
		return "move"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned mutation record.
//
// For inserts Text is the inserted fragment, for deletes it is the removed
// text, and for moves it is empty.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	CaretBefore   int
	CaretAfter    int
	Text          string
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	caretBefore   int
	text          string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: b.version,
		caretBefore:   b.caret,
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CaretBefore:   cb.caretBefore,
		CaretAfter:    b.caret,
		Text:          cb.text,
	}
	b.hasLastChange = true
}
