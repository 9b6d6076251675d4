package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"regexp"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/oj"
	"github.com/ohler55/ojg/sen"

	"github.com/agentic-research/acfkit/internal/rekey"
)

// SettingsPath is the workspace settings file of the editor.
const SettingsPath = ".vscode/settings.json"

// FileSettings is a Store over a flat JSON settings file. Comments and
// trailing commas are accepted. Set edits only the property it changes, so
// the rest of the file keeps its bytes.
type FileSettings struct {
	FS   billy.Filesystem
	Path string

	// inserted remembers the file before Set added a missing property, so
	// removing that property again restores it exactly.
	inserted *insertion
}

type insertion struct {
	existed bool
	before  string
	after   string
}

// NewFileSettings returns a FileSettings for the workspace settings file of fs.
func NewFileSettings(fs billy.Filesystem) *FileSettings {
	return &FileSettings{FS: fs, Path: SettingsPath}
}

func (f *FileSettings) read() (string, bool, error) {
	content, err := util.ReadFile(f.FS, f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return string(content), true, nil
}

func parseSettings(name, text string) (map[string]any, error) {
	parsed, err := sen.Parse([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: settings must be an object", name)
	}
	return doc, nil
}

// Get implements Store.
func (f *FileSettings) Get(key string) (any, bool, error) {
	text, exists, err := f.read()
	if err != nil || !exists {
		return nil, false, err
	}
	doc, err := parseSettings(f.Path, text)
	if err != nil {
		return nil, false, err
	}
	v, ok := doc[key]
	return v, ok, nil
}

// Set implements Store.
func (f *FileSettings) Set(key string, value any, present bool) error {
	text, exists, err := f.read()
	if err != nil {
		return err
	}
	if !present {
		return f.remove(key, text, exists)
	}

	encoded := oj.JSON(value)
	if !exists {
		out := fmt.Sprintf("{\n    %s: %s\n}\n", oj.JSON(key), encoded)
		if err := f.FS.MkdirAll(path.Dir(f.Path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", path.Dir(f.Path), err)
		}
		if err := util.WriteFile(f.FS, f.Path, []byte(out), 0o644); err != nil {
			return err
		}
		f.inserted = &insertion{after: out}
		return nil
	}

	doc, err := parseSettings(f.Path, text)
	if err != nil {
		return err
	}
	prop, ok, err := findProperty(text, key)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	if ok {
		return f.write(text, rekey.Edit{Start: prop.valueStart, End: prop.valueEnd, Text: encoded})
	}

	brace := strings.IndexByte(text, '{')
	if brace < 0 {
		return fmt.Errorf("%s: settings must be an object", f.Path)
	}
	member := oj.JSON(key) + ": " + encoded
	if len(doc) > 0 {
		member = "\n" + indentAfter(text, brace) + member + ","
	}
	edit := rekey.Edit{Start: brace + 1, End: brace + 1, Text: member}
	if err := f.write(text, edit); err != nil {
		return err
	}
	after, _ := rekey.Apply(text, []rekey.Edit{edit})
	f.inserted = &insertion{existed: true, before: text, after: after}
	return nil
}

func (f *FileSettings) remove(key, text string, exists bool) error {
	ins := f.inserted
	f.inserted = nil
	if ins != nil && exists && text == ins.after {
		if !ins.existed {
			return f.FS.Remove(f.Path)
		}
		return util.WriteFile(f.FS, f.Path, []byte(ins.before), 0o644)
	}
	if !exists {
		return nil
	}

	prop, ok, err := findProperty(text, key)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Path, err)
	}
	if !ok {
		return nil
	}
	start, end := prop.keyStart, prop.valueEnd
	if j := skipSpace(text, end); j < len(text) && text[j] == ',' {
		end = skipSpace(text, j+1)
	} else if i := skipSpaceBack(text, start); i >= 0 && text[i] == ',' {
		start = i
	} else if i >= 0 && text[i] == '{' {
		start = i + 1
	}
	return f.write(text, rekey.Edit{Start: start, End: end})
}

func (f *FileSettings) write(text string, edit rekey.Edit) error {
	out, err := rekey.Apply(text, []rekey.Edit{edit})
	if err != nil {
		return err
	}
	if _, err := parseSettings(f.Path, out); err != nil {
		return fmt.Errorf("refusing to write: %w", err)
	}
	return util.WriteFile(f.FS, f.Path, []byte(out), 0o644)
}

type property struct {
	keyStart   int
	valueStart int
	valueEnd   int
}

// findProperty locates "key": <scalar> in text, skipping matches on lines
// commented out with //.
func findProperty(text, key string) (property, bool, error) {
	re := regexp.MustCompile(regexp.QuoteMeta(oj.JSON(key)) + `\s*:\s*`)
	for _, m := range re.FindAllStringIndex(text, -1) {
		lineStart := strings.LastIndexByte(text[:m[0]], '\n') + 1
		if strings.Contains(text[lineStart:m[0]], "//") {
			continue
		}
		end, err := scalarEnd(text, m[1])
		if err != nil {
			return property{}, false, err
		}
		return property{keyStart: m[0], valueStart: m[1], valueEnd: end}, true, nil
	}
	return property{}, false, nil
}

func scalarEnd(text string, i int) (int, error) {
	if i >= len(text) {
		return 0, errors.New("property without a value")
	}
	switch text[i] {
	case '"':
		for j := i + 1; j < len(text); j++ {
			switch text[j] {
			case '\\':
				j++
			case '"':
				return j + 1, nil
			}
		}
		return 0, errors.New("unterminated string value")
	case '{', '[':
		return 0, errors.New("only scalar settings can be edited")
	}
	j := i
	for j < len(text) && !strings.ContainsRune(" \t\r\n,}/", rune(text[j])) {
		j++
	}
	return j, nil
}

// indentAfter returns the indentation of the line following the brace at i.
func indentAfter(text string, i int) string {
	nl := strings.IndexByte(text[i:], '\n')
	if nl < 0 {
		return "    "
	}
	rest := text[i+nl+1:]
	n := len(rest) - len(strings.TrimLeft(rest, " \t"))
	if n == 0 {
		return "    "
	}
	return rest[:n]
}

func skipSpace(text string, i int) int {
	for i < len(text) && strings.ContainsRune(" \t\r\n", rune(text[i])) {
		i++
	}
	return i
}

func skipSpaceBack(text string, i int) int {
	i--
	for i >= 0 && strings.ContainsRune(" \t\r\n", rune(text[i])) {
		i--
	}
	return i
}

// CommandOpener opens files by running an editor command with the path
// appended to Args.
type CommandOpener struct {
	Name string
	Args []string
}

// DefaultOpener opens files in the current VS Code window.
func DefaultOpener() *CommandOpener {
	return &CommandOpener{Name: "code", Args: []string{"--reuse-window"}}
}

// Open implements Opener.
func (o *CommandOpener) Open(ctx context.Context, p string) error {
	args := append(append([]string(nil), o.Args...), p)
	cmd := exec.CommandContext(ctx, o.Name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", o.Name, p, err, out)
	}
	return nil
}
