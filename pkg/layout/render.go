package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/novafetch/novafetch/pkg/collectors"
	"github.com/novafetch/novafetch/pkg/components"
	"github.com/novafetch/novafetch/pkg/config"
	"github.com/novafetch/novafetch/pkg/theme"
)

// groupHeaderWidth is the cell width of a tree group header.
const groupHeaderWidth = 24

// Group names of the tree presentation, in display order.
const (
	GroupHardware = "Hardware"
	GroupSoftware = "Software"
	GroupStatus   = "Status"
)

var groupOrder = []string{GroupHardware, GroupSoftware, GroupStatus}

// groups assigns module keys to tree groups. Keys not listed are left out
// of the tree.
var groups = map[string]string{
	"user_host":     GroupHardware,
	"cpu":           GroupHardware,
	"gpu":           GroupHardware,
	"memory":        GroupHardware,
	"disk":          GroupHardware,
	"resolution":    GroupHardware,
	"swap":          GroupHardware,
	"os":            GroupSoftware,
	"kernel":        GroupSoftware,
	"de":            GroupSoftware,
	"shell":         GroupSoftware,
	"terminal":      GroupSoftware,
	"terminal_font": GroupSoftware,
	"packages":      GroupSoftware,
	"theme":         GroupSoftware,
	"os_age":        GroupSoftware,
	"uptime":        GroupStatus,
	"local_ip":      GroupStatus,
	"media":         GroupStatus,
	"battery":       GroupStatus,
}

// GroupOf returns the tree group of key, or "" when the key is not grouped.
func GroupOf(key string) string {
	return groups[key]
}

// Render returns the info column for rows in the configured layout mode.
func Render(rows []collectors.Row, cfg *config.Config, tm *theme.Manager) []string {
	if strings.EqualFold(strings.TrimSpace(cfg.General.LayoutMode), config.LayoutTree) {
		return Tree(rows, tm)
	}
	return Flat(rows, cfg.General, tm)
}

// Flat renders one line per row. Header rows print their value alone;
// other rows print label, separator and value. With AlignValues every
// separator starts at the column after the widest label.
func Flat(rows []collectors.Row, gen config.GeneralConfig, tm *theme.Manager) []string {
	labels := make([]string, len(rows))
	width := 0
	for i, r := range rows {
		if r.IsHeader() {
			continue
		}
		labels[i] = tm.FormatLabel(r.Key, r.Label)
		if w := components.VisibleLen(labels[i]); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		if r.IsHeader() {
			lines = append(lines, formatHeader(r, tm))
			continue
		}
		label := labels[i]
		if gen.AlignValues {
			label = components.PadRight(label, width)
		}
		lines = append(lines, label+gen.Separator+tm.FormatValue(r.Value))
	}
	return lines
}

func formatHeader(r collectors.Row, tm *theme.Manager) string {
	if r.Key == "user_host" {
		return tm.FormatHeader(r.Value)
	}
	return tm.FormatValue(r.Value)
}

type treeItem struct {
	label string
	value string
}

// Tree renders rows under Hardware, Software and Status headers. The first
// row of a group has no glyph, later rows hang off ├─ and the last off └─.
// Each group ends with a blank line; palette rows follow the groups.
func Tree(rows []collectors.Row, tm *theme.Manager) []string {
	grouped := make(map[string][]treeItem)
	var palette []string
	for _, r := range rows {
		if r.Key == "palette" {
			palette = append(palette, r.Value)
			continue
		}
		g := GroupOf(r.Key)
		if g == "" {
			continue
		}
		label := r.Label
		if label == "" {
			label = "Host"
			if r.Key != "user_host" {
				label = r.Key
			}
		}
		grouped[g] = append(grouped[g], treeItem{label: label, value: r.Value})
	}

	var lines []string
	for _, g := range groupOrder {
		items := grouped[g]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, tm.Accent(GroupHeader(g)))
		for i, it := range items {
			prefix := " "
			switch {
			case i == 0:
			case i == len(items)-1:
				prefix = tm.Accent(" └─ ")
			default:
				prefix = tm.Accent(" ├─ ")
			}
			lines = append(lines, prefix+tm.FormatLabel("", it.label)+": "+tm.FormatValue(it.value))
		}
		lines = append(lines, "")
	}
	for _, p := range palette {
		lines = append(lines, tm.FormatValue(p))
	}
	return lines
}

// GroupHeader centres name in a rule of groupHeaderWidth cells.
func GroupHeader(name string) string {
	return lipgloss.PlaceHorizontal(groupHeaderWidth, lipgloss.Center, name,
		lipgloss.WithWhitespaceChars("─"))
}
