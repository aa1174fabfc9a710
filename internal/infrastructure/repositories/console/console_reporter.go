package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gitdeps/internal/domain/entities"
	"github.com/rios0rios0/gitdeps/internal/domain/repositories"
)

const yamlIndent = 2

// Color palette.
var (
	successColor = lipgloss.Color("#10B981") //nolint:gochecknoglobals // palette
	warningColor = lipgloss.Color("#F59E0B") //nolint:gochecknoglobals // palette
	errorColor   = lipgloss.Color("#EF4444") //nolint:gochecknoglobals // palette
	mutedColor   = lipgloss.Color("#6B7280") //nolint:gochecknoglobals // palette
)

// Reporter prints reports as plain lines, colored when out is a terminal.
type Reporter struct {
	out io.Writer

	sectionStyle lipgloss.Style
	headerStyle  lipgloss.Style
	okStyle      lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

var _ repositories.ReporterRepository = (*Reporter)(nil)

// NewReporter creates a Reporter writing to standard output.
func NewReporter() *Reporter {
	return NewReporterTo(os.Stdout)
}

// NewReporterTo creates a Reporter writing to out. Colors are only emitted
// when out is a terminal.
func NewReporterTo(out io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(out)
	return &Reporter{
		out:          out,
		sectionStyle: renderer.NewStyle().Bold(true),
		headerStyle:  renderer.NewStyle().Bold(true),
		okStyle:      renderer.NewStyle().Foreground(successColor),
		warningStyle: renderer.NewStyle().Foreground(warningColor),
		errorStyle:   renderer.NewStyle().Foreground(errorColor).Bold(true),
		mutedStyle:   renderer.NewStyle().Foreground(mutedColor),
	}
}

func (it *Reporter) Section(title string) {
	it.println(it.sectionStyle.Render(fmt.Sprintf("*** %s ***", title)))
}

func (it *Reporter) Dependencies(deps []entities.Dependency, format string) error {
	switch format {
	case entities.OutputYAML:
		encoder := yaml.NewEncoder(it.out)
		encoder.SetIndent(yamlIndent)
		if deps == nil {
			deps = []entities.Dependency{}
		}
		if err := encoder.Encode(deps); err != nil {
			return fmt.Errorf("failed to encode dependencies: %w", err)
		}
		return encoder.Close()
	case entities.OutputText, "":
		for _, dep := range deps {
			it.println(fmt.Sprintf("%s - %s - %s", dep.Name, dep.URL, dep.MinVersion))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func (it *Reporter) Dependency(dep entities.Dependency) {
	it.println(it.headerStyle.Render(fmt.Sprintf("-- %s --", dep.Name)))
}

func (it *Reporter) CheckResult(result entities.CheckResult) {
	switch result.Status {
	case entities.StatusOK:
		it.println(it.okStyle.Render(fmt.Sprintf("OK (%s)", result.Found)))
	case entities.StatusMajorMismatch:
		it.println(it.warningStyle.Render("WARNING: " + result.Err.Error()))
	case entities.StatusBelowMinimum:
		it.println(it.errorStyle.Render("ERROR: " + result.Err.Error()))
	case entities.StatusMissing:
		it.println(it.errorStyle.Render(
			fmt.Sprintf("ERROR: Dependency %s does not exist", result.Dependency.RelativePath),
		))
	case entities.StatusUnknown:
		it.println(it.warningStyle.Render("WARNING: cannot determine version: " + errorText(result.Err)))
	}
}

func (it *Reporter) Skipped(_ entities.Dependency) {
	it.println(it.mutedStyle.Render("> skipped, already exists, checking version"))
}

func (it *Reporter) CheckingOut(dep entities.Dependency, url string, dryRun bool) {
	if dryRun {
		it.println(fmt.Sprintf("> [DRY RUN] would checkout %s from %s", dep.RelativePath, url))
		return
	}
	it.println(fmt.Sprintf("> checkout %s", dep.RelativePath))
}

func (it *Reporter) CheckedOut(_ entities.Dependency, revision string) {
	it.println(it.mutedStyle.Render(fmt.Sprintf("> checked out %s", revision)))
}

func (it *Reporter) Warning(message string) {
	it.println(it.warningStyle.Render("WARNING: " + message))
}

func (it *Reporter) println(line string) {
	_, _ = fmt.Fprintln(it.out, line)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
