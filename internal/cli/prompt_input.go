package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func promptYesNoIO(in *bufio.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}

// readPromptLine reads until LF, CR or CRLF so Enter works in normal and raw
// terminal modes as well as with piped input.
func readPromptLine(in *bufio.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	for {
		b, err := in.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}

		switch b {
		case '\n':
			return string(buf), nil
		case '\r':
			if next, err := in.Peek(1); err == nil && next[0] == '\n' {
				_, _ = in.ReadByte()
			}
			return string(buf), nil
		default:
			buf = append(buf, b)
		}
	}
}
