// Package assist offers optional model-backed cleanup of messy bulk item
// text. A Normalizer rewrites whatever the user pasted into plain
// "Name,Qty" lines, which then go through the regular item parser. The
// feature is strictly best-effort: when no backend is configured or a call
// fails, callers fall back to parsing the raw text.
package assist

import "context"

// NormalizePrompt is the shared instruction used by all assist backends.
const NormalizePrompt = `The following text is a messy inventory list someone pasted from notes,
a spreadsheet, or a photo caption. Rewrite it as a clean list, one item per
line, in the exact format: Name,Quantity
Use quantity 1 when none is given. Output only the list, nothing else.

Text:
`

type Normalizer interface {
	// Normalize returns cleaned "Name,Qty" lines for the given free text.
	Normalize(ctx context.Context, text string) (string, error)
}
