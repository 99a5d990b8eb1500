package token

import "fmt"

// Location is a source position for diagnostics. Row is a zero-based line
// index and Col is a zero-based byte offset within that line.
type Location struct {
	Filepath string
	Row      int
	Col      int
}

// String renders the location one-based, in the file:row:col form editors
// understand.
func (l Location) String() string {
	return fmt.Sprintf("%v:%v:%v", l.Filepath, l.Row+1, l.Col+1)
}
