package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Role is one entry of the job catalog: a title and its ordered
// required-skill list.
type Role struct {
	Title  string
	Skills []string
}

// Catalog is an immutable, ordered set of roles plus the per-skill weight
// table used for weighted scoring. Iteration order is significant: the
// matcher keeps it on score ties.
type Catalog struct {
	roles   []Role
	weights map[string]float64
}

// New builds a catalog from the given roles and weights. The inputs are
// copied so callers cannot mutate the catalog afterwards.
func New(roles []Role, weights map[string]float64) *Catalog {
	rs := make([]Role, len(roles))
	for i, r := range roles {
		rs[i] = Role{
			Title:  r.Title,
			Skills: append([]string(nil), r.Skills...),
		}
	}

	ws := make(map[string]float64, len(weights))
	for skill, w := range weights {
		ws[skill] = w
	}

	return &Catalog{roles: rs, weights: ws}
}

// Default returns the reference catalog: 20 roles, 10 required skills each.
func Default() *Catalog {
	return New(defaultRoles, defaultWeights)
}

// Roles returns the catalog entries in catalog order.
func (c *Catalog) Roles() []Role {
	return c.roles
}

// Len returns the number of roles.
func (c *Catalog) Len() int {
	return len(c.roles)
}

// Weight returns the scoring weight for a skill, defaulting to 1.0 when the
// skill has no explicit weight entry.
func (c *Catalog) Weight(skill string) float64 {
	if w, ok := c.weights[skill]; ok {
		return w
	}
	return 1.0
}

// Vocabulary returns the union of all roles' required skills.
func (c *Catalog) Vocabulary() []string {
	seen := make(map[string]struct{})
	var vocab []string
	for _, r := range c.roles {
		for _, s := range r.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			vocab = append(vocab, s)
		}
	}
	return vocab
}

// Filter returns a catalog restricted to the given titles, keeping catalog
// order. Titles that do not exist in the catalog are reported back so the
// caller can log them. An empty title list returns the catalog unchanged.
func (c *Catalog) Filter(titles []string) (*Catalog, []string) {
	if len(titles) == 0 {
		return c, nil
	}

	wanted := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		wanted[strings.TrimSpace(t)] = struct{}{}
	}

	var kept []Role
	for _, r := range c.roles {
		if _, ok := wanted[r.Title]; ok {
			kept = append(kept, r)
			delete(wanted, r.Title)
		}
	}

	var unknown []string
	for t := range wanted {
		unknown = append(unknown, t)
	}

	return New(kept, c.weights), unknown
}

// LoadTitles reads job titles from a CSV file with a "Job Title" column.
func LoadTitles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read job CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("job CSV %s is empty", path)
	}

	col := -1
	for i, name := range records[0] {
		if strings.TrimSpace(name) == "Job Title" {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("job CSV %s has no \"Job Title\" column", path)
	}

	var titles []string
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		if t := strings.TrimSpace(row[col]); t != "" {
			titles = append(titles, t)
		}
	}
	return titles, nil
}
