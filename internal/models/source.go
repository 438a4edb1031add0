package models

// SourceTable identifies the logical origin of a raw record. Values match
// the taggable_type column of the tag store, so they double as join keys.
type SourceTable string

const (
	SourcePlainEvent SourceTable = "all_events"
	SourceTradition  SourceTable = "events"
	SourceBigBoard   SourceTable = "big_board_events"
	SourceGroupEvent SourceTable = "group_events"
	SourceRecurring  SourceTable = "recurring_events"
	SourceSports     SourceTable = "sports_events"
)

// SourceOrder ranks sources for sort tie-breaking. Lower ranks first.
// Unknown sources sort last.
type SourceOrder map[SourceTable]int

// DefaultSourceOrder puts user submissions first, then curated traditions,
// then generic listings, recurring occurrences, group events and finally the
// external sports feed.
//
//nolint:gochecknoglobals //ok
var DefaultSourceOrder = SourceOrder{
	SourceBigBoard:   0,
	SourceTradition:  1,
	SourcePlainEvent: 2,
	SourceRecurring:  3,
	SourceGroupEvent: 4,
	SourceSports:     5,
}

const unknownSourceRank = 99

func (o SourceOrder) Rank(table SourceTable) int {
	rank, ok := o[table]
	if !ok {
		return unknownSourceRank
	}
	return rank
}

// Badge returns the display label shown for events of this source.
// Purely cosmetic, never used for logic.
func (t SourceTable) Badge() string {
	switch t {
	case SourceBigBoard:
		return "Submission"
	case SourceTradition:
		return "Tradition"
	case SourcePlainEvent:
		return "Listed Event"
	case SourceRecurring:
		return "Recurring"
	case SourceGroupEvent:
		return "Group Event"
	case SourceSports:
		return "Sports"
	default:
		return ""
	}
}

// TaggableTypeAliases lists every spelling of a source table seen in the tag
// store's taggable_type column. Legacy rows use singular forms.
func TaggableTypeAliases(table SourceTable) []string {
	switch table {
	case SourceTradition:
		return []string{"events", "event", "traditions", "tradition"}
	case SourceBigBoard:
		return []string{"big_board_events", "big_board_event"}
	case SourcePlainEvent:
		return []string{"all_events", "all_event"}
	case SourceGroupEvent:
		return []string{"group_events", "group_event"}
	case SourceRecurring:
		return []string{"recurring_events", "recurring_event"}
	default:
		return []string{string(table)}
	}
}
