package projectconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-fieldconnector/pkg/host"
)

const (
	fieldsDir   = "fields"
	projectFile = "project"
)

// LoadDir loads field definitions from a project config directory on disk.
func LoadDir(dir string) ([]host.Field, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, errors.New("projectconfig: directory is required")
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		return nil, fmt.Errorf("projectconfig: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("projectconfig: %s is not a directory", trimmed)
	}
	return LoadFS(os.DirFS(trimmed))
}

// LoadFS loads field definitions from a project config root: the aggregate
// project.yaml (its `fields` map keyed by uid) and every file under fields/.
// Results are sorted by handle. A nil filesystem yields no fields.
func LoadFS(fsys fs.FS) ([]host.Field, error) {
	if fsys == nil {
		return nil, nil
	}
	loader := newCollector()

	for _, name := range []string{projectFile + ".yaml", projectFile + ".yml", projectFile + ".json"} {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("projectconfig: read %s: %w", name, err)
		}
		if err := loader.addProject(data, name); err != nil {
			return nil, err
		}
	}

	if _, err := fs.Stat(fsys, fieldsDir); err == nil {
		sub, err := fs.Sub(fsys, fieldsDir)
		if err != nil {
			return nil, fmt.Errorf("projectconfig: open %s: %w", fieldsDir, err)
		}
		if err := loader.walk(sub, fieldsDir); err != nil {
			return nil, err
		}
	}

	return loader.sorted(), nil
}

// LoadFieldsFS treats the root of fsys as the fields directory itself.
func LoadFieldsFS(fsys fs.FS) ([]host.Field, error) {
	if fsys == nil {
		return nil, nil
	}
	loader := newCollector()
	if err := loader.walk(fsys, "."); err != nil {
		return nil, err
	}
	return loader.sorted(), nil
}

type collector struct {
	fields  map[string]host.Field
	sources map[string]string
}

func newCollector() *collector {
	return &collector{
		fields:  make(map[string]host.Field),
		sources: make(map[string]string),
	}
}

func (c *collector) walk(fsys fs.FS, prefix string) error {
	return fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("projectconfig: read %s: %w", path.Join(prefix, p), err)
		}
		return c.addFile(data, path.Join(prefix, p))
	})
}

func (c *collector) addFile(data []byte, source string) error {
	def, err := parseDefinition(data, source)
	if err != nil {
		return err
	}
	if def.UID == "" {
		def.UID = uidFromFilename(source)
	}
	return c.add(def, source)
}

func (c *collector) addProject(data []byte, source string) error {
	defs, err := parseProject(data, source)
	if err != nil {
		return err
	}
	uids := make([]string, 0, len(defs))
	for uid := range defs {
		uids = append(uids, uid)
	}
	sort.Strings(uids)
	for _, uid := range uids {
		def := defs[uid]
		if def.UID == "" {
			def.UID = uid
		}
		if err := c.add(def, source); err != nil {
			return err
		}
	}
	return nil
}

func (c *collector) add(def definition, source string) error {
	handle := strings.TrimSpace(def.Handle)
	if handle == "" {
		return fmt.Errorf("projectconfig: file %s defines a field without a handle", source)
	}
	if strings.TrimSpace(def.Type) == "" {
		return fmt.Errorf("projectconfig: field %q (file %s) has no type", handle, source)
	}
	if existing, ok := c.sources[handle]; ok {
		return fmt.Errorf("projectconfig: duplicate field handle %q (files %s and %s)", handle, existing, source)
	}

	uid, err := normalizeUID(def.UID)
	if err != nil {
		return fmt.Errorf("projectconfig: field %q (file %s): %w", handle, source, err)
	}

	base := host.Base{
		UID:               uid,
		Handle:            handle,
		Name:              strings.TrimSpace(def.Name),
		Instructions:      strings.TrimSpace(def.Instructions),
		Searchable:        def.Searchable,
		TranslationMethod: def.TranslationMethod,
	}
	field, err := host.Build(def.Type, base, def.decode)
	if err != nil {
		return fmt.Errorf("projectconfig: field %q (file %s): %w", handle, source, err)
	}
	c.fields[handle] = field
	c.sources[handle] = source
	return nil
}

func (c *collector) sorted() []host.Field {
	handles := make([]string, 0, len(c.fields))
	for handle := range c.fields {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	out := make([]host.Field, 0, len(handles))
	for _, handle := range handles {
		out = append(out, c.fields[handle])
	}
	return out
}

func normalizeUID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid uid %q: %w", trimmed, err)
	}
	return parsed.String(), nil
}

// uidFromFilename extracts the uid from names such as heroImage--<uid>.yaml.
func uidFromFilename(source string) string {
	base := path.Base(source)
	base = strings.TrimSuffix(base, path.Ext(base))
	idx := strings.LastIndex(base, "--")
	if idx < 0 {
		return ""
	}
	candidate := base[idx+2:]
	if _, err := uuid.Parse(candidate); err != nil {
		return ""
	}
	return candidate
}

func isDefinitionFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
