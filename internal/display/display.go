// Package display renders inventory reports for the terminal. It is a pure
// presentation layer: all reconciliation happens in inspect, and everything
// here consumes plain report data.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mlatman/mcpls/internal/inspect"
	"github.com/mlatman/mcpls/internal/model"
	"github.com/mlatman/mcpls/internal/registry"
)

var (
	headerStyle       = lipgloss.NewStyle().Bold(true)
	unrecognizedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	descriptionStyle  = lipgloss.NewStyle().Faint(true)
)

// Renderer writes reports and catalogs to a writer. With styling disabled
// it emits plain text, which is also what tests capture.
type Renderer struct {
	w       io.Writer
	reg     *registry.Registry
	colored bool
}

// New creates a Renderer. Styling is applied only when enabled by the
// caller and the writer's terminal supports it.
func New(w io.Writer, reg *registry.Registry, color bool) *Renderer {
	colored := color && termenv.NewOutput(w).ColorProfile() != termenv.Ascii
	if !colored {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{w: w, reg: reg, colored: colored}
}

// Report prints one section per client, each entry on a tree connector line.
// Unrecognized entries are called out so manual installs stay visible.
func (r *Renderer) Report(rep inspect.Report) {
	for _, sec := range rep.Sections {
		if len(sec.Entries) == 0 {
			continue
		}
		fmt.Fprintln(r.w, r.styled(headerStyle, sec.Client.DisplayName()))
		for i, entry := range sec.Entries {
			connector := "├──"
			if i == len(sec.Entries)-1 {
				connector = "└──"
			}
			fmt.Fprintf(r.w, "%s %s\n", connector, r.entryLabel(entry))
		}
		fmt.Fprintln(r.w)
	}
	if !rep.FoundAny {
		fmt.Fprintln(r.w, "No MCP servers found. Run `mcpls servers` to see the known catalog.")
	}
}

// Catalog prints the known-server catalog as an aligned table.
func (r *Renderer) Catalog(servers []model.RegistryServer) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, s := range servers {
		fmt.Fprintf(tw, "%s\t%s\n", r.linked(s.ID, s.Homepage), r.styled(descriptionStyle, s.Description))
	}
	tw.Flush()
}

func (r *Renderer) entryLabel(entry model.InstalledEntry) string {
	if !entry.Recognized {
		return r.styled(unrecognizedStyle, entry.ServerID+" (unrecognized)")
	}
	if s, ok := r.reg.Get(entry.ServerID); ok {
		return r.linked(entry.ServerID, s.Homepage)
	}
	return entry.ServerID
}

// linked wraps text in an OSC 8 hyperlink when styling is on and a target
// URL exists.
func (r *Renderer) linked(text, url string) string {
	if !r.colored || url == "" {
		return text
	}
	return termenv.Hyperlink(url, text)
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if !r.colored {
		return s
	}
	return style.Render(s)
}
