// Package sources builds the viewer's sources list from source info records.
//
//	srcs, warnings, err := sources.Aggregate(items)
//
// Every record contributes one source: its first page is the main page and
// its later pages are spreads. A record whose main page matches a source
// already collected is folded into that source instead.
//
// Two match policies exist. [MatchStrict], the default, keys sources by page
// and doc id, treating a missing doc id as a value of its own. [MatchLegacy]
// lets a record without a doc id fold into the first source on its page,
// whichever document that source belongs to.
//
// Records with no keys are skipped. Each skip is returned as a [Warning]
// and logged at WARN level on the logger given with [WithLogger].
package sources
