package worksheet

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Item kinds. A worksheet interleaves bundle rows with markdown blocks.
const (
	KindBundle   = "bundle"
	KindMarkdown = "markdown"
)

// Bundle states as reported by the service.
const (
	StateCreated = "created"
	StateRunning = "running"
	StateReady   = "ready"
	StateFailed  = "failed"
	StateKilled  = "killed"
)

// Item is one worksheet row: either a bundle reference or a markdown block.
// For markdown items only Kind and Text are set.
type Item struct {
	Kind       string   `json:"kind"`
	UUID       string   `json:"uuid,omitempty"`
	Name       string   `json:"name,omitempty"`
	BundleType string   `json:"bundle_type,omitempty"`
	State      string   `json:"state,omitempty"`
	DataSize   int64    `json:"data_size,omitempty"`
	Deps       []string `json:"deps,omitempty"` // uuids this bundle depends on
	Text       string   `json:"text,omitempty"` // markdown only
}

type Worksheet struct {
	Name  string `json:"name"`
	UUID  string `json:"uuid"`
	Items []Item `json:"items"`
}

func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	var ws Worksheet
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet JSON: %w", err)
	}
	for i, it := range ws.Items {
		if it.Kind == KindBundle && it.UUID == "" {
			return nil, fmt.Errorf("item %d: bundle without uuid", i)
		}
	}
	return &ws, nil
}

func Save(path string, ws *Worksheet) error {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy. All bulk effects operate on a clone so the
// caller's worksheet is never mutated.
func Clone(ws *Worksheet) *Worksheet {
	out := &Worksheet{Name: ws.Name, UUID: ws.UUID, Items: make([]Item, len(ws.Items))}
	for i, it := range ws.Items {
		cp := it
		if it.Deps != nil {
			cp.Deps = append([]string(nil), it.Deps...)
		}
		out.Items[i] = cp
	}
	return out
}

// Bundles returns the bundle items in worksheet order.
func (ws *Worksheet) Bundles() []Item {
	var out []Item
	for _, it := range ws.Items {
		if it.Kind == KindBundle {
			out = append(out, it)
		}
	}
	return out
}

// Lines renders one stable line per item. This is the text the
// confirmation preview diffs, so the format must not depend on
// anything transient.
func (ws *Worksheet) Lines() string {
	var b strings.Builder
	for _, it := range ws.Items {
		if it.Kind == KindMarkdown {
			fmt.Fprintf(&b, "## %s\n", firstLine(it.Text))
			continue
		}
		fmt.Fprintf(&b, "%s  %-20s %-8s %s\n", shortUUID(it.UUID), it.Name, it.BundleType, it.State)
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func shortUUID(u string) string {
	if len(u) > 8 {
		return u[:8]
	}
	return u
}

// Remove deletes the given bundles from the worksheet. Without force it
// refuses when a surviving bundle depends on a removed one (same contract
// as the service's delete: force means "break dependencies").
func Remove(ws *Worksheet, uuids []string, force bool) (*Worksheet, error) {
	gone := toSet(uuids)
	if !force {
		for _, it := range ws.Items {
			if it.Kind != KindBundle || gone[it.UUID] {
				continue
			}
			for _, d := range it.Deps {
				if gone[d] {
					return nil, fmt.Errorf("bundle %s depends on %s (use force to break dependencies)", shortUUID(it.UUID), shortUUID(d))
				}
			}
		}
	}
	out := Clone(ws)
	out.Items = filterItems(out.Items, func(it Item) bool {
		return it.Kind != KindBundle || !gone[it.UUID]
	})
	return out, nil
}

// Detach drops the rows from the worksheet without deleting the bundles.
func Detach(ws *Worksheet, uuids []string) *Worksheet {
	gone := toSet(uuids)
	out := Clone(ws)
	out.Items = filterItems(out.Items, func(it Item) bool {
		return it.Kind != KindBundle || !gone[it.UUID]
	})
	return out
}

// Kill marks running bundles killed. Bundles in any other state are left
// as they are; killing a finished bundle is a no-op, not an error.
func Kill(ws *Worksheet, uuids []string) *Worksheet {
	targets := toSet(uuids)
	out := Clone(ws)
	for i, it := range out.Items {
		if it.Kind == KindBundle && targets[it.UUID] && it.State == StateRunning {
			out.Items[i].State = StateKilled
		}
	}
	return out
}

// RemoveMarkdown deletes the markdown block at the given item index.
// Indices pointing at bundle rows are rejected.
func RemoveMarkdown(ws *Worksheet, index int) (*Worksheet, error) {
	if index < 0 || index >= len(ws.Items) {
		return nil, fmt.Errorf("item index %d out of range", index)
	}
	if ws.Items[index].Kind != KindMarkdown {
		return nil, fmt.Errorf("item %d is not a markdown block", index)
	}
	out := Clone(ws)
	out.Items = append(out.Items[:index], out.Items[index+1:]...)
	return out, nil
}

func toSet(uuids []string) map[string]bool {
	m := make(map[string]bool, len(uuids))
	for _, u := range uuids {
		m[u] = true
	}
	return m
}

func filterItems(items []Item, keep func(Item) bool) []Item {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
