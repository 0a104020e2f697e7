// Package level assembles and serializes the output document: a zeroed
// angle array, the settings block, the ordered action list and an empty
// decorations list.
package level

import (
	"bufio"
	"bytes"
	"io"
)

// Document is a fully planned level ready to serialize.
type Document struct {
	Floors   int
	Settings []Field
	Actions  []Action
}

// New builds a document from the layout engine's output.
func New(floors int, o Overrides, actions []Action) *Document {
	return &Document{
		Floors:   floors,
		Settings: SettingsFields(o),
		Actions:  actions,
	}
}

// Write streams the document to w: head, one action per line, tail.
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriterSize(w, 64*1024)

	// angleData: one zero per floor-to-floor link
	bw.WriteString("{\n\t\"angleData\": [")
	for i := 0; i < d.Floors-1; i++ {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteByte('0')
	}
	bw.WriteString("], \n")

	bw.WriteString("\t\"settings\":\n\t{\n")
	for i, f := range d.Settings {
		bw.WriteString("\t\t\"")
		bw.WriteString(f.Key)
		bw.WriteString("\": ")
		bw.WriteString(formatValue(f.Value))
		if i < len(d.Settings)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("\t},\n")

	bw.WriteString("\t\"actions\":\n\t[\n")
	var line []byte
	for i, a := range d.Actions {
		line = a.appendLiteral(line[:0])
		bw.WriteString("\t\t")
		bw.Write(line)
		if i < len(d.Actions)-1 {
			bw.WriteByte(',')
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("\t],\n")

	bw.WriteString("\t\"decorations\":\n\t[\n\t]\n}")
	return bw.Flush()
}

// Bytes renders the whole document in memory, mostly for tests.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
