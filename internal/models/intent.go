// ABOUTME: Query intent types produced by the intent classifier
// ABOUTME: One intent per user turn drives which answer path runs
package models

// IntentKind is the classified purpose of a user turn.
type IntentKind string

const (
	// IntentGeneral - free-text question answered via retrieval
	IntentGeneral IntentKind = "general"

	// IntentSummarizeDocument - summarize the whole document
	IntentSummarizeDocument IntentKind = "summarize_document"

	// IntentSummarizePage - summarize one page/chunk ("summary page 3")
	IntentSummarizePage IntentKind = "summarize_page"

	// IntentExtractPage - show a raw excerpt of one page ("page 5")
	IntentExtractPage IntentKind = "extract_page"

	// IntentFind - keyword search ("find: refund policy")
	IntentFind IntentKind = "find"

	// IntentHelp - show the command help
	IntentHelp IntentKind = "help"
)

// QueryIntent is the tagged result of intent classification.
// PageNumber is set for SummarizePage/ExtractPage, FindKeyword for Find.
type QueryIntent struct {
	Kind        IntentKind `json:"kind"`
	PageNumber  int        `json:"page_number,omitempty"`
	FindKeyword string     `json:"find_keyword,omitempty"`
}
