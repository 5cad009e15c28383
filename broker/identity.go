package broker

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// this file recovers the two session identifiers from what the browser had:
// the page address and a snapshot of the page's render state.

// stateChildKeys are the only attributes worth descending into when hunting
// for the person id in a page-state tree. The snapshot mixes framework nodes
// and domain structures; anything else is noise.
var stateChildKeys = []string{"children", "props", "security", "items", "childNodes"}

// reactPrefix marks the framework's internal per-element property bags.
const reactPrefix = "__reactProps"

// PortfolioID extracts the portfolio id from the transactions page address.
// Pure and synchronous: the id is the portfolioId query parameter.
func PortfolioID(page string) (string, error) {
	u, err := url.Parse(page)
	if err != nil {
		return "", fmt.Errorf("cannot parse page address %q: %w", page, err)
	}
	id := u.Query().Get("portfolioId")
	if id == "" {
		return "", fmt.Errorf("no portfolioId query parameter in page address %q", page)
	}
	return id, nil
}

// PersonID searches a decoded page-state tree for a non-empty personId
// attribute and returns the first match, depth first.
//
// Only arrays, the allow-listed child keys and the framework-prefixed
// property bags are traversed; the snapshot is acyclic by construction of
// the host page so no visited set is needed.
func PersonID(state any) (string, bool) {
	switch node := state.(type) {
	case []any:
		for _, child := range node {
			if id, ok := PersonID(child); ok {
				return id, true
			}
		}

	case map[string]any:
		if id, ok := node["personId"].(string); ok && id != "" {
			return id, true
		}
		for _, key := range childKeys(node) {
			if id, ok := PersonID(node[key]); ok {
				return id, true
			}
		}
	}
	return "", false
}

// childKeys returns the traversable keys of a state node in a stable order:
// the allow-list first, then the framework bags sorted by name.
func childKeys(node map[string]any) []string {
	var keys []string
	for _, key := range stateChildKeys {
		if _, ok := node[key]; ok {
			keys = append(keys, key)
		}
	}
	var bags []string
	for key := range node {
		if strings.HasPrefix(key, reactPrefix) {
			bags = append(bags, key)
		}
	}
	sort.Strings(bags)
	return append(keys, bags...)
}
