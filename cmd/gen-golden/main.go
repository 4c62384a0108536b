package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pamflet"
)

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".pamflet") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no pamflets found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		elements, err := pamflet.ParseReader(bytes.NewReader(src),
			pamflet.WithIDGenerator(pamflet.NewSequenceIDs()),
			pamflet.WithSeparator(separatorFor(path)),
		)
		if err != nil {
			fatalf("parse %s: %v", path, err)
		}
		if elements == nil {
			elements = []pamflet.Element{}
		}
		out, err := json.MarshalIndent(elements, "", "  ")
		if err != nil {
			fatalf("encode %s: %v", path, err)
		}
		goldenPath := goldenPath(path)
		if err := os.WriteFile(goldenPath, append(out, '\n'), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

// separatorFor picks the dialect from the fixture name: *.equals.pamflet
// fixtures use the older `.name = value` form.
func separatorFor(path string) pamflet.Separator {
	if strings.HasSuffix(path, ".equals.pamflet") {
		return pamflet.SeparatorEquals
	}
	return pamflet.SeparatorEither
}

func goldenPath(path string) string {
	return strings.TrimSuffix(path, ".pamflet") + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
