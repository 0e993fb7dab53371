package validator

import "strconv"

// Path addresses a field inside a request document using the
// JSON-path-with-bracket-index convention, e.g. "options.fields[3]".
// The zero value is the document root.
type Path string

// Key returns the location of the object field key under p.
func (p Path) Key(key string) Path {
	return AppendKey(p, key)
}

// Index returns the location of the array element i under p.
func (p Path) Index(i int) Path {
	return AppendIndex(p, i)
}

func (p Path) String() string {
	return string(p)
}

// AppendKey joins parent and key with a dot. An empty parent is the
// document root, so AppendKey("", "name") yields "name".
func AppendKey(parent Path, key string) Path {
	if parent == "" {
		return Path(key)
	}
	return parent + "." + Path(key)
}

// AppendIndex appends an array index in brackets: AppendIndex("tags", 2) yields "tags[2]".
func AppendIndex(parent Path, index int) Path {
	return parent + "[" + Path(strconv.Itoa(index)) + "]"
}
