package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/herohde/kinolattice/pkg/typegraph"
)

// LoadTypeInfo decodes the type-table record format from §6.
func LoadTypeInfo(r io.Reader, angleNum, maxTypes int) (*typegraph.TypeInfo, error) {
	ti := typegraph.New(angleNum, maxTypes)
	seen := map[string]int{}

	scanner := bufio.NewScanner(r)
	var (
		inSuccessors bool
		successorTyp int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch {
		case strings.HasPrefix(line, "control-set-start"):
			theta, typ, err := parseThetaAndTrailingType(fields)
			if err != nil {
				return nil, fmt.Errorf("loader: type-table control-set-start: %w", err)
			}
			ti.StartTypeByTheta[theta] = typ
			inSuccessors = false

		case strings.HasPrefix(line, "in goal type"):
			typ, thetas, err := parseGoalTypeLine(line)
			if err != nil {
				return nil, fmt.Errorf("loader: type-table goal type: %w", err)
			}
			for _, theta := range thetas {
				ti.MarkGoal(theta, typ)
			}
			inSuccessors = false

		case strings.HasPrefix(line, "start type is"):
			v, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				return nil, fmt.Errorf("loader: type-table start type is: %w", err)
			}
			successorTyp = v
			inSuccessors = true

		case strings.HasPrefix(line, "add_info for type"):
			typ, info, err := parseAddInfoLine(line)
			if err != nil {
				return nil, fmt.Errorf("loader: type-table add_info: %w", err)
			}
			id, ok := seen[info]
			if !ok {
				id = len(seen)
				if id >= maxTypes {
					return nil, fmt.Errorf("loader: type-table add_info string count exceeds MAX_INFO (%d)", maxTypes)
				}
				seen[info] = id
			}
			ti.AddInfoByType[typ] = id
			inSuccessors = false

		case strings.HasPrefix(line, "---"):
			inSuccessors = false

		case inSuccessors:
			if len(fields) < 3 {
				return nil, fmt.Errorf("loader: type-table successor line malformed: %q", line)
			}
			di, err1 := strconv.Atoi(fields[0])
			dj, err2 := strconv.Atoi(fields[1])
			t2, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("loader: type-table successor line malformed: %q", line)
			}
			ti.AddSuccessor(successorTyp, typegraph.Successor{DI: di, DJ: dj, Type: t2})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read type-table: %w", err)
	}
	return ti, nil
}

// parseThetaAndTrailingType handles "control-set-start with theta: <θ> ... <type>":
// theta immediately follows the "theta:" token, type is the line's last field.
func parseThetaAndTrailingType(fields []string) (theta, typ int, err error) {
	for i, f := range fields {
		if f == "theta:" && i+1 < len(fields) {
			theta, err = strconv.Atoi(fields[i+1])
			if err != nil {
				return 0, 0, err
			}
			typ, err = strconv.Atoi(fields[len(fields)-1])
			return theta, typ, err
		}
	}
	return 0, 0, fmt.Errorf("missing \"theta:\" token")
}

// parseGoalTypeLine handles "in goal type: <type> ... : <θ>*": the type
// follows the first colon, the heading list follows the final colon.
func parseGoalTypeLine(line string) (typ int, thetas []int, err error) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return 0, nil, fmt.Errorf("missing colon-delimited fields: %q", line)
	}
	typeField := strings.Fields(parts[1])
	if len(typeField) == 0 {
		return 0, nil, fmt.Errorf("missing type value: %q", line)
	}
	typ, err = strconv.Atoi(typeField[0])
	if err != nil {
		return 0, nil, err
	}

	last := strings.Fields(parts[len(parts)-1])
	for _, f := range last {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, err
		}
		thetas = append(thetas, v)
	}
	return typ, thetas, nil
}

// parseAddInfoLine handles "add_info for type: <type> <arbitrary string>".
func parseAddInfoLine(line string) (typ int, info string, err error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("missing colon: %q", line)
	}
	rest := strings.TrimSpace(parts[1])
	fields := strings.SplitN(rest, " ", 2)
	typ, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, "", err
	}
	if len(fields) > 1 {
		info = strings.TrimSpace(fields[1])
	}
	return typ, info, nil
}
