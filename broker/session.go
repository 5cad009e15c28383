// Package broker accesses the Scalable Capital portal API with a captured
// browser session.
//
// The portal offers no token-based API: the tool reuses the cookies and
// feature headers of an authenticated browser tab, pasted by the user at
// login time, exactly as the browser would send them.
package broker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "scx-session.json"

// DefaultSessionPath is where `scx login` stores the captured session.
func DefaultSessionPath() string {
	return filepath.Join(os.TempDir(), sessionFile)
}

// Session is the captured browser session: the raw request headers (cookies,
// feature flags), the transactions page address, and the sources of the two
// session-scoped identifiers needed to address the API.
type Session struct {
	// Headers are the raw request headers captured from the browser.
	Headers http.Header `json:"headers"`
	// Page is the address of the transactions page, its portfolioId query
	// parameter identifies the portfolio.
	Page string `json:"page,omitempty"`
	// StatePath optionally points to a captured page-state JSON snapshot
	// searched for the person id.
	StatePath string `json:"statePath,omitempty"`

	// Explicit identifiers take precedence over Page and StatePath.
	PersonID    string `json:"personId,omitempty"`
	PortfolioID string `json:"portfolioId,omitempty"`
}

// ParseHeaders turns raw "Name: value" lines, as pasted from a browser's
// copy-as-curl, into an http.Header.
func ParseHeaders(lines []string) http.Header {
	headers := make(http.Header)
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			headers.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
	}
	return headers
}

// LoadSession reads a session stored by `scx login`.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session not found, run 'scx login' first: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse session file %q: %w", path, err)
	}
	return &s, nil
}

// Save stores the session for later export runs.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("cannot save session: %w", err)
	}
	return nil
}

// Identity resolves the person and portfolio ids from the session, without
// any network call. Explicitly stored ids win; otherwise the portfolio id is
// read from the page address and the person id searched in the captured page
// state. Either one missing fails the whole resolution.
func (s *Session) Identity() (personID, portfolioID string, err error) {
	portfolioID = s.PortfolioID
	if portfolioID == "" && s.Page != "" {
		portfolioID, err = PortfolioID(s.Page)
		if err != nil {
			return "", "", err
		}
	}

	personID = s.PersonID
	if personID == "" && s.StatePath != "" {
		data, err := os.ReadFile(s.StatePath)
		if err != nil {
			return "", "", fmt.Errorf("cannot read page state %q: %w", s.StatePath, err)
		}
		var state any
		if err := json.Unmarshal(data, &state); err != nil {
			return "", "", fmt.Errorf("cannot parse page state %q: %w", s.StatePath, err)
		}
		personID, _ = PersonID(state)
	}

	switch {
	case personID == "" && portfolioID == "":
		return "", "", fmt.Errorf("could not find personId nor portfolioId, run 'scx login' with -person-id/-portfolio-id or a page address and state snapshot")
	case personID == "":
		return "", "", fmt.Errorf("could not find personId in the captured session")
	case portfolioID == "":
		return "", "", fmt.Errorf("could not find portfolioId in the captured session")
	}
	return personID, portfolioID, nil
}
