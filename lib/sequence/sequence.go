package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ParseInts converts each field to an integer. The first field that fails
// to parse aborts the whole conversion.
func ParseInts(fields []string) ([]int, error) {
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "not an integer: %q", field)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadInts parses whitespace-separated integers from r until EOF.
func ReadInts(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	fields := make([]string, 0)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return ParseInts(fields)
}

// Format writes one value per line.
func Format(values []int, w io.Writer) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
