package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	tomlv1 "github.com/pelletier/go-toml"

	"github.com/conn-castle/lvenv/internal/fsutil"
	"github.com/conn-castle/lvenv/internal/messages"
)

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
)

// settableKeys lists every key Set accepts with the TOML type it is stored as.
var settableKeys = map[string]keyKind{
	"python.interpreter": kindString,
	"python.name":        kindString,
	"create.prompt":      kindBool,
	"create.diff_lines":  kindInt,
}

// Keys returns the dotted keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for key := range settableKeys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Set returns content with the dotted key set to value. source names content
// in errors. The result is validated before it is returned; comments in
// content are not preserved.
func Set(content []byte, source string, key string, value string) ([]byte, error) {
	kind, ok := settableKeys[key]
	if !ok {
		return nil, fmt.Errorf(messages.ConfigUnknownKeyFmt, key, strings.Join(Keys(), ", "))
	}
	typed, err := parseValue(kind, key, value)
	if err != nil {
		return nil, err
	}

	tree, err := tomlv1.LoadBytes(content)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	tree.SetPath(strings.Split(key, "."), typed)
	out, err := tree.Marshal()
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigEncodeFmt, err)
	}
	if _, err := Parse(out, source); err != nil {
		return nil, err
	}
	return out, nil
}

func parseValue(kind keyKind, key string, value string) (any, error) {
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigValueTypeFmt, key, "a boolean", value)
		}
		return b, nil
	case kindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigValueTypeFmt, key, "an integer", value)
		}
		return n, nil
	default:
		return value, nil
	}
}

// SetFile applies Set to the config file at path, creating it when missing.
func SetFile(path string, key string, value string) error {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	out, err := Set(content, path, key, value)
	if err != nil {
		return err
	}
	return writeConfig(path, out)
}

// WriteDefault writes the embedded default config to path unless a file exists.
// It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	data, err := defaultTemplate()
	if err != nil {
		return false, err
	}
	if err := writeConfig(path, data); err != nil {
		return false, err
	}
	return true, nil
}

func writeConfig(path string, data []byte) error {
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf(messages.ConfigWriteFailedFmt, path, err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFailedFmt, path, err)
	}
	return nil
}
