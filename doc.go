/*
Package ordercheck classifies words by the order of their characters.

Every input line is a word. A word whose characters never decrease (by Unicode
code point) is IN ORDER, one whose characters never increase is in REVERSE
ORDER, and anything else is NOT IN ORDER. Ascending wins ties, so the empty
word, single characters and runs of one repeated character are IN ORDER.

# Usage

	ordercheck words.txt
	cat words.txt | ordercheck --pipe

Each line produces "<word> <LABEL>" on standard output. Without a readable
path and without --pipe, ordercheck prints "No input provided" and exits 1.

The same classifier is available as an HTTP API (ordercheck serve) and as an
MCP tool server (ordercheck mcp). See packages pkg/classifier and pkg/runner
for library use.
*/
package ordercheck
