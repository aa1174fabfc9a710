package entities

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
)

const (
	sectionMarker = "#dependencies"
	headingPrefix = "#"
	bulletMarker  = "*"
	boldMarker    = "**"
	maxLineBytes  = 1024 * 1024
)

var (
	repoNamePattern   = regexp.MustCompile(`\[([^\]]+)]`)
	parenGroupPattern = regexp.MustCompile(`\(([^)]+)\)`)
	versionPattern    = regexp.MustCompile(`^[0-9.]+`)
)

// ParseDeclaration extracts the dependency list from the lines of a README.
//
// Only the section that follows a "# Dependencies" heading is read, up to the
// next line starting with "#". Inside it, every bullet ("*") is either a
// folder or, when it contains "[name](url)(version)", a repository. Nesting is
// given by the column of the "*". Exactly one repository must be written in
// bold ("[**name**](url)"): it is the active repository, and every other
// repository is returned with a path relative to it, in declaration order.
//
// Example:
//
//	# Dependencies
//	* Libraries
//	  * Common
//	    * [some\_lib](https://example.com/some_lib) (1.0.0 or higher)
//	  * [**this\_lib**](https://example.com/this_lib)
//
// yields some_lib at "../../Libraries/Common/some_lib".
func ParseDeclaration(lines []string) ([]Dependency, error) {
	parser := newDeclarationParser()
	for i, line := range lines {
		done, err := parser.consume(i+1, line)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	return parser.dependencies()
}

// ParseDeclarationReader reads r line by line and parses it with ParseDeclaration.
func ParseDeclarationReader(r io.Reader) ([]Dependency, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return ParseDeclaration(lines)
}

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

type declarationParser struct {
	tree       *declarationTree
	started    bool
	lastFolder int   // only ever a folder, never a repo
	repos      []int // in declaration order
	active     int
}

func newDeclarationParser() *declarationParser {
	return &declarationParser{
		tree:       newDeclarationTree(),
		lastFolder: rootIndex,
		active:     noNode,
	}
}

// consume handles one line and reports whether the section has ended.
func (p *declarationParser) consume(lineNo int, raw string) (bool, error) {
	line := strings.TrimRight(raw, "\r\n")

	if !p.started {
		p.started = strings.Contains(strings.ToLower(removeWhitespace(line)), sectionMarker)
		return false, nil
	}
	if strings.HasPrefix(line, headingPrefix) {
		return true, nil
	}
	if !strings.HasPrefix(removeWhitespace(line), bulletMarker) {
		return false, nil
	}

	indent := strings.Index(line, bulletMarker)
	text := line[indent+len(bulletMarker):]

	if strings.Contains(text, "[") {
		return false, p.addRepo(lineNo, indent, text)
	}

	// Spaces are dropped inside names too: "* A folder" is the directory "Afolder".
	name := strings.TrimSpace(strings.ReplaceAll(text, " ", ""))
	if name == "" {
		return false, nil
	}
	parent := p.tree.enclosingFolder(p.lastFolder, indent)
	p.lastFolder = p.tree.addFolder(name, indent, parent)
	return false, nil
}

func (p *declarationParser) addRepo(lineNo, indent int, text string) error {
	compact := strings.ReplaceAll(text, " ", "")

	nameLoc := repoNamePattern.FindStringSubmatchIndex(compact)
	if nameLoc == nil {
		return &DeclarationError{Line: lineNo, Reason: "repository name not found in " + strings.TrimSpace(text)}
	}
	name := strings.ReplaceAll(compact[nameLoc[2]:nameLoc[3]], `\`, "")

	groups := parenGroupPattern.FindAllStringSubmatch(compact[nameLoc[1]:], -1)
	if len(groups) == 0 {
		return &DeclarationError{Line: lineNo, Reason: "repository URL not found for " + name}
	}
	url := groups[0][1]

	active := strings.HasPrefix(name, boldMarker)
	version := NoVersionRequired
	if active {
		name = strings.TrimSuffix(strings.TrimPrefix(name, boldMarker), boldMarker)
		if p.active != noNode {
			return &DeclarationError{
				Line:   lineNo,
				Reason: fmt.Sprintf("multiple active repositories marked (%s and %s)", p.tree.nodes[p.active].name, name),
			}
		}
	} else {
		if len(groups) < 2 { //nolint:mnd // url group + version group
			return &DeclarationError{Line: lineNo, Reason: "minimum version not found for " + name}
		}
		version = versionPattern.FindString(groups[1][1])
		if version == "" {
			return &DeclarationError{Line: lineNo, Reason: "minimum version not found for " + name}
		}
	}

	folder := p.tree.enclosingFolder(p.lastFolder, indent)
	idx := p.tree.addRepo(name, url, version, active, indent, folder)
	if active {
		p.active = idx
	}
	p.repos = append(p.repos, idx)
	return nil
}

func (p *declarationParser) dependencies() ([]Dependency, error) {
	if p.active == noNode {
		return nil, &DeclarationError{Reason: "active repository not marked"}
	}

	levels := p.tree.depth(p.tree.nodes[p.active].parent)
	prefix := strings.TrimSuffix(strings.Repeat("../", levels), "/")

	deps := make([]Dependency, 0, len(p.repos))
	for _, idx := range p.repos {
		if idx == p.active {
			continue
		}
		repo := p.tree.nodes[idx]

		segments := []string{prefix}
		segments = append(segments, p.tree.folderPath(repo.parent)...)
		segments = append(segments, repo.name)

		deps = append(deps, Dependency{
			Name:         repo.name,
			URL:          repo.url,
			RelativePath: strings.Join(segments, "/"),
			MinVersion:   repo.version,
		})
	}
	return deps, nil
}

func removeWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
