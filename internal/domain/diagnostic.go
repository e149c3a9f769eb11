package domain

import "fmt"

// Class categorizes a recoverable failure by the scope it affected.
type Class string

const (
	ClassFile     Class = "file"     // the whole file was skipped
	ClassDocument Class = "document" // the file parsed but had no timeline
	ClassRecord   Class = "record"   // a single timeline item was skipped
)

// Diagnostic records one recoverable failure. Item is the zero-based index
// of the timeline item for ClassRecord and -1 otherwise.
type Diagnostic struct {
	File  string
	Item  int
	Class Class
	Err   error
}

func (d Diagnostic) String() string {
	if d.Class == ClassRecord {
		return fmt.Sprintf("%s[%d]: %v", d.File, d.Item, d.Err)
	}
	return fmt.Sprintf("%s: %v", d.File, d.Err)
}
