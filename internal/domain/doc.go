// Package domain contains the core model of the onlawthink directory client.
//
// The domain is transport- and UI-agnostic: it does not depend on net/http, JSON
// envelopes, or bubbletea. Adapters map into and out of these types, and the reducers
// in this package are pure so the directory and disclosure rules can be exercised
// without a terminal or a network.
package domain
