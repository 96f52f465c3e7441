package main

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var commentRe = regexp.MustCompile(`(#[\s\S]*)`)

// ParseAddressList reads one IP address or domain name per line. Anything
// after a # is a comment, and blank lines are skipped.
func ParseAddressList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	entries := []string{}

	for scanner.Scan() {
		line := strings.TrimSpace(commentRe.ReplaceAllLiteralString(scanner.Text(), ""))

		if len(line) == 0 {
			continue
		}

		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
