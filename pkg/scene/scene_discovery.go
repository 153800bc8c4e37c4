package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// SceneInfo describes a built-in scene or a scene file
type SceneInfo struct {
	Name        string // Identifier accepted by Create, or the file's own name
	Description string // One-line summary for help output
	Path        string // Scene file path (file scenes only)
}

type builtinScene struct {
	info    SceneInfo
	factory func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info:    SceneInfo{Name: "default", Description: "Sphere resting on a large ground sphere"},
		factory: func() *Scene { return NewDefaultScene() },
	},
	"single": {
		info:    SceneInfo{Name: "single", Description: "One sphere floating in the sky"},
		factory: func() *Scene { return NewSingleSphereScene() },
	},
	"spheregrid": {
		info:    SceneInfo{Name: "spheregrid", Description: "Rows of small spheres on the ground"},
		factory: func() *Scene { return NewSphereGridScene() },
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Create builds the built-in scene with the given name
func Create(name string) (*Scene, error) {
	s, ok := builtinScenes[name]
	if !ok {
		return nil, xerrors.Errorf("unknown scene %q", name)
	}
	return s.factory(), nil
}

// ListSceneFiles scans dir for .yaml and .yml scene files and returns their
// metadata sorted by name. A missing directory yields an empty list; files
// whose metadata cannot be read are skipped with a warning.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, xerrors.Errorf("while scanning %s: %w", dir, err)
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, path := range files {
		info, err := ParseSceneFileMetadata(path)
		if err != nil {
			glog.Warningf("Skipping scene file %s: %v", path, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneFileMetadata reads the top-level name and description of a scene
// file. The name falls back to the file name without extension and the
// description to the leading comment block.
func ParseSceneFileMetadata(path string) (SceneInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneInfo{}, xerrors.Errorf("while reading scene file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SceneInfo{}, xerrors.Errorf("while decoding %s: %w", path, err)
	}

	var meta struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if len(doc.Content) > 0 {
		if err := doc.Content[0].Decode(&meta); err != nil {
			return SceneInfo{}, xerrors.Errorf("while decoding %s: %w", path, err)
		}
	}

	info := SceneInfo{Name: meta.Name, Description: meta.Description, Path: path}
	if info.Name == "" {
		base := filepath.Base(path)
		info.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if info.Description == "" {
		info.Description = leadingComment(&doc)
	}
	return info, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	return append(ListScenes(), files...), nil
}

// leadingComment returns the first paragraph of the comment block at the top
// of the document, joined into one line. yaml.v3 attaches it to the document,
// the root mapping, or the first key depending on the blank lines around it.
func leadingComment(doc *yaml.Node) string {
	candidates := []*yaml.Node{doc}
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		candidates = append(candidates, root)
		if root.Kind == yaml.MappingNode && len(root.Content) > 0 {
			candidates = append(candidates, root.Content[0])
		}
	}

	for _, node := range candidates {
		if node.HeadComment == "" {
			continue
		}
		paragraph := strings.SplitN(node.HeadComment, "\n\n", 2)[0]
		var words []string
		for _, line := range strings.Split(paragraph, "\n") {
			if line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#")); line != "" {
				words = append(words, line)
			}
		}
		return strings.Join(words, " ")
	}
	return ""
}
