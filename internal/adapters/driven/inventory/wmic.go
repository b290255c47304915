package inventory

import (
	"strings"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
)

// pnpEntityColumns is the wmic column list for Win32_PnPEntity.
const pnpEntityColumns = "DeviceID,Name"

// descriptorsFromWMIC converts `wmic path Win32_PnPEntity get DeviceID,Name`
// output into raw descriptors.
func descriptorsFromWMIC(output string) []domain.RawDescriptor {
	rows := parseWMICTable(decodeWMICOutput(output))

	out := make([]domain.RawDescriptor, 0, len(rows))
	for _, row := range rows {
		id := cleanWMIValue(row["DeviceID"])
		if id == "" {
			continue
		}
		out = append(out, domain.RawDescriptor{
			ID:   id,
			Name: cleanWMIValue(row["Name"]),
		})
	}
	return out
}

// decodeWMICOutput drops the NUL bytes left when wmic writes UTF-16 to a pipe.
func decodeWMICOutput(s string) string {
	s = strings.TrimPrefix(s, "\xff\xfe")
	return strings.ReplaceAll(s, "\x00", "")
}

// parseWMICTable parses wmic table output into one map per row.
// The first line is the header; columns are separated by two or more spaces.
func parseWMICTable(output string) []map[string]string {
	lines := splitNonEmptyLines(output)
	if len(lines) < 2 {
		return nil
	}

	colNames := splitWMICColumns(lines[0])
	if len(colNames) == 0 {
		return nil
	}

	var rows []map[string]string
	for _, line := range lines[1:] {
		values := splitWMICColumns(line)
		if len(values) == 0 {
			continue
		}
		// Extra values are ignored, missing ones left empty.
		row := make(map[string]string, len(colNames))
		for i, col := range colNames {
			if i < len(values) {
				row[col] = values[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// splitWMICColumns splits on runs of two or more blanks, keeping single
// spaces inside values such as device names.
func splitWMICColumns(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var cols []string
	var cur strings.Builder
	spaceRun := 0
	for _, r := range line {
		if r == ' ' || r == '\t' || r == '\r' {
			spaceRun++
			if spaceRun >= 2 || r == '\t' {
				if cur.Len() > 0 {
					cols = append(cols, strings.TrimSpace(cur.String()))
					cur.Reset()
				}
				continue
			}
			cur.WriteRune(' ')
			continue
		}
		spaceRun = 0
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		cols = append(cols, strings.TrimSpace(cur.String()))
	}
	return cols
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// wmic prints "No Instance(s) Available." for empty result sets
		if strings.Contains(strings.ToLower(line), "no instance") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func cleanWMIValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\u0000")
	return strings.TrimSpace(s)
}

// cleanDeviceDesc strips the INF reference from a registry DeviceDesc,
// e.g. "@oem12.inf,%nvidia%;NVIDIA GeForce RTX 2080 Ti".
func cleanDeviceDesc(s string) string {
	if i := strings.LastIndex(s, ";"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
