package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// MarshalCommit produces the canonical byte encoding of a commit:
//
//	timestamp T
//	parent H        (zero, one, or two lines)
//	track H PATH    (one line per tracked path, sorted by PATH)
//
//	MESSAGE
//
// Field order is fixed and the tracked map is rendered sorted by path, so
// two commits with the same logical content always serialize to the same
// bytes (spec §4.1, §8 property 2).
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "timestamp %d\n", c.TimestampMS)
	for _, p := range c.Parents {
		fmt.Fprintf(&buf, "parent %s\n", string(p))
	}
	for _, path := range c.SortedPaths() {
		fmt.Fprintf(&buf, "track %s %s\n", string(c.Tracked[path]), path)
	}
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// UnmarshalCommit parses the encoding produced by MarshalCommit.
func UnmarshalCommit(data []byte) (*Commit, error) {
	idx := bytes.Index(data, []byte("\n\n"))
	if idx < 0 {
		return nil, fmt.Errorf("unmarshal commit: missing header/message separator")
	}
	header := string(data[:idx])
	message := string(data[idx+2:])

	c := &Commit{Message: message, Tracked: make(map[string]Hash)}
	if header == "" {
		return c, nil
	}
	for _, line := range strings.Split(header, "\n") {
		key, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("unmarshal commit: malformed header line %q", line)
		}
		switch key {
		case "timestamp":
			ts, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("unmarshal commit: bad timestamp %q: %w", rest, err)
			}
			c.TimestampMS = ts
		case "parent":
			c.Parents = append(c.Parents, Hash(rest))
		case "track":
			hashStr, path, ok := strings.Cut(rest, " ")
			if !ok {
				return nil, fmt.Errorf("unmarshal commit: malformed track line %q", line)
			}
			c.Tracked[path] = Hash(hashStr)
		default:
			return nil, fmt.Errorf("unmarshal commit: unknown header key %q", key)
		}
	}
	return c, nil
}
