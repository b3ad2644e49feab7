package scene

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed scenes/*.yaml
var builtinFS embed.FS

// BuiltinNames returns the names of the embedded scenes, sorted.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("scenes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// BuiltinSource returns the raw YAML of an embedded scene.
func BuiltinSource(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile(path.Join("scenes", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("scene: no built-in scene %q", name)
	}
	return data, nil
}

// Builtin parses an embedded scene.
func Builtin(name string) (*Scene, error) {
	data, err := BuiltinSource(name)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
