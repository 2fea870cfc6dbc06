package models

// FindRequest is a case-insensitive substring search over group and entry
// names.
type FindRequest struct {
	Query string
}

// EntryMatch pairs a matched entry with the group that owns it.
type EntryMatch struct {
	Group Group
	Entry Entry
}

// FindResult is the outcome of a name search over a safe.
type FindResult struct {
	Query   string
	Groups  []Group
	Entries []EntryMatch
}
