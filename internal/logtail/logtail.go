package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. maxLines of
// zero or less reads every line.
func Read(path string, maxLines int) ([]string, error) {
	lines, _, err := ReadTail(path, maxLines)
	return lines, err
}

// ReadTail is Read that also reports the byte offset of the end of the data
// read, which is where Follow should start.
func ReadTail(path string, maxLines int) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var (
		ring   []string
		count  int
		idx    int
		offset int64
	)
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}
	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		line, n, _, err := readLine(reader)
		if n > 0 {
			offset += int64(n)
			if maxLines > 0 {
				ring[idx] = line
				idx = (idx + 1) % maxLines
				if count < maxLines {
					count++
				}
			} else {
				ring = append(ring, line)
				count++
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("read log: %w", err)
		}
	}

	if count == 0 {
		return nil, offset, nil
	}
	if maxLines <= 0 {
		return ring, offset, nil
	}
	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, nil
}

// readLine reads one line without its terminator. complete is false when the
// data ended at EOF before a newline.
func readLine(r *bufio.Reader) (line string, n int, complete bool, err error) {
	raw, err := r.ReadString('\n')
	return strings.TrimRight(raw, "\r\n"), len(raw), strings.HasSuffix(raw, "\n"), err
}
