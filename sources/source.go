package sources

import (
	"fmt"
	"net/url"
	"strings"
)

type Kind uint8

const (
	KindFile Kind = iota + 1
	KindStdin
	KindInline
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindStdin:
		return "stdin"
	case KindInline:
		return "inline"
	case KindURL:
		return "url"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Source is a location of program bytes
type Source struct {
	Kind Kind
	// path, url, or the program text for inline sources
	Location string
}

func (s Source) String() string {
	switch s.Kind {
	case KindStdin:
		return "-"
	case KindInline:
		return "-e"
	}
	return s.Location
}

// Parse classifies a -file argument: "-" is stdin, http and https urls are fetched,
// anything else is a file path
func Parse(arg string) Source {
	if arg == "-" {
		return Source{
			Kind: KindStdin,
		}
	}
	if u, err := url.Parse(arg); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return Source{
				Kind:     KindURL,
				Location: arg,
			}
		}
	}
	return Source{
		Kind:     KindFile,
		Location: arg,
	}
}

func Inline(text string) Source {
	return Source{
		Kind:     KindInline,
		Location: text,
	}
}
