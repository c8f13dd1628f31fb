package drac

import (
	"regexp"
	"strings"
)

// cleanOutput strips the noise racadm prints around its real output:
// certificate warnings, "Continuing execution" notices, and blank lines.
// Idempotent on already-clean input.
func cleanOutput(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "Security Alert") {
			continue
		}
		if strings.HasPrefix(line, "Continuing execution") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// parseSections parses racadm's sectioned key=value output (getsysinfo and
// friends) into section -> key -> value. A non-blank line without '=' opens
// a new section, named by stripping its trailing colon. key=value lines
// before any section header are dropped. A duplicate key within a section
// overwrites the earlier value; downstream consumers depend on
// last-occurrence-wins.
func parseSections(output string) map[string]map[string]string {
	sections := make(map[string]map[string]string)
	section := ""

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" && strings.Contains(line, "=") {
			if m, ok := sections[section]; ok {
				key, val, _ := strings.Cut(line, "=")
				m[strings.TrimSpace(key)] = strings.TrimSpace(val)
			}
		} else {
			section = strings.TrimSuffix(strings.TrimSpace(line), ":")
			if section != "" {
				if _, ok := sections[section]; !ok {
					sections[section] = make(map[string]string)
				}
			}
		}
	}
	return sections
}

// inventoryBlocks maps getversion's tag headers to the block kind and the
// ordered column names of that block's rows.
var inventoryBlocks = []struct {
	tag    string
	kind   string
	fields []string
}{
	{"<Server>", "server", []string{"name", "idrac_version", "blade_type", "gen", "updateable"}},
	{"<Switch>", "switch", []string{"name", "model_name", "hw_version", "fw_version"}},
	{"<CMC>", "cmc", []string{"name", "cmc_version", "updateable"}},
	{"<Chassis Infrastructure>", "chassis", []string{"name", "fw_version", "fqdd"}},
}

var columnSplit = regexp.MustCompile(`  +`)

// parseInventory parses getversion output. Tag headers switch the active
// block; rows are split on runs of two or more spaces and zipped against the
// block's column names, stopping at the shorter of the two. Records are
// keyed by their first column. Rows before the first tag are ignored.
func parseInventory(output string) map[string]map[string]map[string]string {
	ret := make(map[string]map[string]map[string]string, len(inventoryBlocks))
	for _, b := range inventoryBlocks {
		ret[b.kind] = make(map[string]map[string]string)
	}

	active := -1
	for _, line := range strings.Split(output, "\n") {
		tagged := false
		for i, b := range inventoryBlocks {
			if strings.HasPrefix(line, b.tag) {
				active = i
				tagged = true
				break
			}
		}
		if tagged || len(line) < 1 || active < 0 {
			continue
		}

		cols := columnSplit.Split(strings.TrimSpace(line), -1)
		if cols[0] == "" {
			continue
		}
		block := inventoryBlocks[active]
		rec := make(map[string]string, len(block.fields))
		for i, name := range block.fields {
			if i >= len(cols) {
				break
			}
			rec[name] = cols[i]
		}
		ret[block.kind][cols[0]] = rec
	}
	return ret
}

// Slot is one physical bay in a chassis as reported by getslotname.
type Slot struct {
	Slot     string `json:"slot"`
	Name     string `json:"slotname"`
	Hostname string `json:"hostname"`
}

// parseSlotNames parses getslotname output. Everything up to and including
// the first line starting with '<' is header; each following row is
// whitespace-split into slot id, slot name, and hostname, with missing
// columns left empty.
func parseSlotNames(output string) map[string]Slot {
	slots := make(map[string]Slot)
	header := true
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "<") {
			header = false
			continue
		}
		if header {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		s := Slot{Slot: fields[0]}
		if len(fields) > 1 {
			s.Name = fields[1]
		}
		if len(fields) > 2 {
			s.Hostname = fields[2]
		}
		slots[s.Slot] = s
	}
	return slots
}
