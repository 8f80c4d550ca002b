// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// CollabParticipant is the predicate function for collabparticipant builders.
type CollabParticipant func(*sql.Selector)

// CollabSession is the predicate function for collabsession builders.
type CollabSession func(*sql.Selector)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// Discussion is the predicate function for discussion builders.
type Discussion func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MessageEvent is the predicate function for messageevent builders.
type MessageEvent func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Vote is the predicate function for vote builders.
type Vote func(*sql.Selector)

// XpLedger is the predicate function for xpledger builders.
type XpLedger func(*sql.Selector)
