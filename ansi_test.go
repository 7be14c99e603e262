package ascii

import (
	"bytes"
	"testing"
)

func TestAnsiPrimitives(t *testing.T) {
	var buf bytes.Buffer

	clearAll(&buf)
	moveToRow(&buf, 0)
	moveToColumn(&buf, 9)
	setForeground(&buf, RGB{1, 2, 3})
	ResetColor(&buf)

	want := "\x1b[2J" + "\x1b[1d" + "\x1b[10G" + "\x1b[38;2;1;2;3m" + "\x1b[0m"
	if buf.String() != want {
		t.Errorf("primitive sequence mismatch:\n got %q\nwant %q", buf.String(), want)
	}
}
