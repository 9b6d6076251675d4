package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/acfkit/internal/theme"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// workspace is what one walk of the filesystem finds.
type workspace struct {
	fieldGroups []string           // acf-json/*.json paths
	sheets      []theme.Stylesheet // theme folders, with or without style.css
	rootFolder  string             // folder name when the workspace root is itself a theme
}

// IsFieldGroupPath reports whether p is a .json file directly inside an acf-json directory.
func IsFieldGroupPath(p string) bool {
	p = filepath.ToSlash(p)
	if !strings.HasSuffix(p, ".json") {
		return false
	}
	dir := pathDir(p)
	return pathBase(dir) == theme.AcfDir
}

// ThemeFolder returns the directory name immediately preceding acf-json in p,
// or "" when p has no parent above acf-json.
func ThemeFolder(p string) string {
	p = filepath.ToSlash(p)
	acf := pathDir(p)
	if pathBase(acf) != theme.AcfDir {
		return ""
	}
	parent := pathDir(acf)
	if parent == "." || parent == "/" || parent == "" {
		return ""
	}
	return pathBase(parent)
}

// folderName is the base name of dir resolved against the filesystem root,
// so a workspace opened at a theme directory still yields the theme's name.
func folderName(fs billy.Filesystem, dir string) string {
	name := filepath.Base(filepath.Join(fs.Root(), dir))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func pathDir(p string) string {
	i := strings.LastIndexByte(p, '/')
	switch {
	case i < 0:
		return "."
	case i == 0:
		return "/"
	}
	return p[:i]
}

func pathBase(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

// discover walks fs once, collecting field-group files and theme stylesheets.
// A style.css counts when it declares a Theme Name or sits next to acf-json.
func discover(ctx context.Context, fs billy.Filesystem) (*workspace, error) {
	ws := &workspace{}
	themeDirs := make(map[string]bool)
	styled := make(map[string]bool)
	var candidates []theme.Stylesheet

	err := util.Walk(fs, "", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			if info.Name() == theme.AcfDir {
				themeDirs[filepath.Dir(p)] = true
			}
			return nil
		}
		switch {
		case IsFieldGroupPath(p):
			ws.fieldGroups = append(ws.fieldGroups, p)
		case info.Name() == "style.css":
			text, err := util.ReadFile(fs, p)
			if err != nil {
				return err
			}
			candidates = append(candidates, theme.Stylesheet{Dir: filepath.Dir(p), Text: text})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, s := range candidates {
		if themeDirs[s.Dir] || theme.ParseHeader(s.Text).Name != "" {
			s.Folder = folderName(fs, s.Dir)
			if s.Folder == "" {
				continue
			}
			ws.sheets = append(ws.sheets, s)
			styled[s.Dir] = true
			if s.Dir == "." {
				ws.rootFolder = s.Folder
			}
		}
	}
	for dir := range themeDirs {
		// A bare acf-json at the root belongs to the workspace, not a theme.
		if styled[dir] || dir == "." {
			continue
		}
		if folder := folderName(fs, dir); folder != "" {
			ws.sheets = append(ws.sheets, theme.Stylesheet{Dir: dir, Folder: folder})
		}
	}
	sort.Slice(ws.sheets, func(i, j int) bool { return ws.sheets[i].Dir < ws.sheets[j].Dir })
	return ws, nil
}
