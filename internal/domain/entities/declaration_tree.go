package entities

type nodeKind int

const (
	folderNode nodeKind = iota
	repoNode
)

const (
	rootIndex  = 0
	rootIndent = -2
	noNode     = -1
)

// declarationNode is one bullet of the dependencies section. Folder nodes use
// folders and repos, repo nodes use url, version and active.
type declarationNode struct {
	kind   nodeKind
	name   string
	indent int
	parent int

	folders []int
	repos   []int

	url     string
	version string
	active  bool
}

// declarationTree keeps every node in one slice and links parents by index.
// Index 0 is the implicit ROOT folder.
type declarationTree struct {
	nodes []declarationNode
}

func newDeclarationTree() *declarationTree {
	return &declarationTree{
		nodes: []declarationNode{{kind: folderNode, name: "ROOT", indent: rootIndent, parent: noNode}},
	}
}

func (t *declarationTree) addFolder(name string, indent, parent int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, declarationNode{kind: folderNode, name: name, indent: indent, parent: parent})
	t.nodes[parent].folders = append(t.nodes[parent].folders, idx)
	return idx
}

func (t *declarationTree) addRepo(name, url, version string, active bool, indent, folder int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, declarationNode{
		kind:    repoNode,
		name:    name,
		indent:  indent,
		parent:  folder,
		url:     url,
		version: version,
		active:  active,
	})
	t.nodes[folder].repos = append(t.nodes[folder].repos, idx)
	return idx
}

// enclosingFolder returns the nearest folder, starting at folder and walking
// up, whose indent is strictly less than indent. Handles any dedent depth.
func (t *declarationTree) enclosingFolder(folder, indent int) int {
	for folder != rootIndex && indent <= t.nodes[folder].indent {
		folder = t.nodes[folder].parent
	}
	return folder
}

// depth is the number of ".." steps leading from a repo inside folder back
// to the directory ROOT stands for: 1 for ROOT itself, plus one per folder.
func (t *declarationTree) depth(folder int) int {
	levels := 1
	for f := folder; f != rootIndex; f = t.nodes[f].parent {
		levels++
	}
	return levels
}

// folderPath lists folder names from just below ROOT down to folder.
func (t *declarationTree) folderPath(folder int) []string {
	var reversed []string
	for f := folder; f != rootIndex; f = t.nodes[f].parent {
		reversed = append(reversed, t.nodes[f].name)
	}

	segments := make([]string, len(reversed))
	for i, name := range reversed {
		segments[len(reversed)-1-i] = name
	}
	return segments
}
