package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a mistyped reference may be from a code or name.
const maxSuggestDistance = 2

// ChartOfAccounts is a read-only catalogue of one scope's accounts, keyed by ID and code.
type ChartOfAccounts struct {
	scopeID  string
	accounts []domain.Account
	byID     map[string]int
	byCode   map[string]int
}

// NewChartOfAccounts builds a chart from the given accounts. Accounts belonging to a
// different scope are ignored.
func NewChartOfAccounts(scopeID string, accounts []domain.Account) *ChartOfAccounts {
	scoped := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.ScopeID == scopeID {
			scoped = append(scoped, acc)
		}
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Code < scoped[j].Code
	})

	c := &ChartOfAccounts{
		scopeID:  scopeID,
		accounts: scoped,
		byID:     make(map[string]int, len(scoped)),
		byCode:   make(map[string]int, len(scoped)),
	}
	for i, acc := range scoped {
		c.byID[acc.AccountID] = i
		if acc.Code != "" {
			c.byCode[acc.Code] = i
		}
	}
	return c
}

// ScopeID returns the scope the chart was built for.
func (c *ChartOfAccounts) ScopeID() string {
	return c.scopeID
}

// Len returns the number of accounts in the chart.
func (c *ChartOfAccounts) Len() int {
	return len(c.accounts)
}

// ByID looks up an account by its ID.
func (c *ChartOfAccounts) ByID(accountID string) (domain.Account, bool) {
	i, ok := c.byID[accountID]
	if !ok {
		return domain.Account{}, false
	}
	return c.accounts[i], true
}

// ByCode looks up an account by its human readable code.
func (c *ChartOfAccounts) ByCode(code string) (domain.Account, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return domain.Account{}, false
	}
	return c.accounts[i], true
}

// Resolve looks up a reference as an account ID first, then as a code.
func (c *ChartOfAccounts) Resolve(ref string) (domain.Account, bool) {
	ref = strings.TrimSpace(ref)
	if acc, ok := c.ByID(ref); ok {
		return acc, true
	}
	return c.ByCode(ref)
}

// Accounts returns a copy of the chart's accounts ordered by code.
func (c *ChartOfAccounts) Accounts() []domain.Account {
	out := make([]domain.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Suggest returns the code of the account whose code or name is closest to ref,
// if one is close enough to be a plausible typo.
func (c *ChartOfAccounts) Suggest(ref string) (string, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", false
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, acc := range c.accounts {
		for _, candidate := range []string{acc.Code, acc.Name} {
			if candidate == "" {
				continue
			}
			d := levenshtein.ComputeDistance(ref, strings.ToLower(candidate))
			if d < bestDist && d < len(ref) {
				best, bestDist = acc.Code, d
			}
		}
	}
	return best, best != ""
}
