package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/herohde/kinolattice/pkg/primitive"
)

// LoadControlSet decodes the control-set record format from §6 into a
// ControlSet with angleNum heading buckets.
func LoadControlSet(r io.Reader, angleNum int) (*primitive.ControlSet, error) {
	cs := primitive.NewControlSet(angleNum)

	scanner := bufio.NewScanner(r)
	var (
		inRecord                bool
		startTheta              int
		goal                    primitive.Offset
		length                  float64
		turning                 int
		trace                   []primitive.Cell
		inTrajectory, inCollide bool
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch {
		case line == "===== prim description: =====":
			inRecord = true
			startTheta, goal, length, turning = 0, primitive.Offset{}, 0, 0
			trace = nil
			inTrajectory, inCollide = false, false
			continue
		case !inRecord:
			continue
		case strings.HasPrefix(line, "start heading"):
			v, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("loader: control-set start heading: %w", err)
			}
			startTheta = v
		case strings.HasPrefix(line, "goal state"):
			di, err1 := strconv.Atoi(fields[6])
			dj, err2 := strconv.Atoi(fields[7])
			theta, err3 := strconv.Atoi(fields[8])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("loader: control-set goal state: malformed tokens")
			}
			goal = primitive.Offset{DI: di, DJ: dj, Theta: theta}
		case strings.HasPrefix(line, "length is"):
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("loader: control-set length: %w", err)
			}
			length = v
		case strings.HasPrefix(line, "turning on"):
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("loader: control-set turning: %w", err)
			}
			turning = v
		case line == "trajectory is:":
			inTrajectory, inCollide = true, false
		case line == "collision is:":
			inTrajectory, inCollide = false, true
		case strings.HasPrefix(line, "---"):
			inTrajectory, inCollide = false, false
		case line == "prim end":
			cs.Add(primitive.NewPrimitive(startTheta, goal, trace, length, turning))
			inRecord = false
		case inCollide:
			if len(fields) < 2 {
				return nil, fmt.Errorf("loader: control-set collision line malformed: %q", line)
			}
			i, err1 := strconv.Atoi(fields[0])
			j, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("loader: control-set collision line malformed: %q", line)
			}
			trace = append(trace, primitive.Cell{I: i, J: j})
		case inTrajectory:
			// consumed but ignored, per §6.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read control-set: %w", err)
	}
	return cs, nil
}
