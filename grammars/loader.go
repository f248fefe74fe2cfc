package grammars

import (
	"errors"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrGrammarNotFound = errors.New("grammar not found")

// Schema constrains grammar definition files. Rules are ordered: the first
// matching rule wins at scan time, so more specific patterns go first.
const Schema = `
grammars: [string]: {
	rules: [...{
		state?:   string
		pattern!: string
		type!:    string
		goto?:    string
		push?:    string
		pop?:     bool
	}]
}
`

// Loader reads grammar definitions from CUE files, validated against Schema.
// Files are loaded lazily, once.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {

			ctx := cuecontext.New()
			schema := ctx.CompileString("close({" + Schema + "})")
			if err := schema.Err(); err != nil {
				return nil, err
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if err := schema.Unify(value).Validate(); err != nil {
					return nil, err
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

func (l Loader) lookupFirst(path string, target any) error {
	roots, err := l.getRoots()
	if err != nil {
		return err
	}

	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if err := value.Err(); err == nil {
			return value.Decode(target)
		}
	}

	return ErrGrammarNotFound
}
