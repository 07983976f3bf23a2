package stack

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/raulgarciaph/jgrapht/internal/xstring"
)

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record renders the call as "pkgPath.funcName(file:line)".
func (c call) Record() string {
	name := runtime.FuncForPC(c.function).Name()
	name = strings.ReplaceAll(name, "[...]", "")
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	buffer := xstring.Buffer()
	defer buffer.Free()
	buffer.WriteString(name)
	buffer.WriteByte('(')
	buffer.WriteString(file)
	buffer.WriteByte(':')
	fmt.Fprintf(buffer, "%d", c.line)
	buffer.WriteByte(')')

	return buffer.String()
}

func Record(depth int) string {
	return Call(depth + 1).Record()
}
