package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/chatping/internal/config"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const renderWrap = 80

// Reporter prints check results.
type Reporter struct {
	format string
	render bool
}

// NewReporter constructs a reporter from output configuration.
func NewReporter(cfg config.Config) *Reporter {
	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if format == "" {
		format = config.FormatText
	}
	return &Reporter{format: format, render: cfg.Output.Render}
}

// report is the machine-readable form of a Result.
type report struct {
	OK         bool   `json:"ok"                    yaml:"ok"`
	Kind       string `json:"kind"                  yaml:"kind"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Content    string `json:"content,omitempty"     yaml:"content,omitempty"`
	Body       string `json:"body,omitempty"        yaml:"body,omitempty"`
	Error      string `json:"error,omitempty"       yaml:"error,omitempty"`
}

func newReport(res Result) report {
	r := report{
		OK:         res.OK(),
		Kind:       res.Kind.String(),
		StatusCode: res.StatusCode,
		Content:    res.Content,
		Body:       res.Body,
	}
	if res.Err != nil {
		r.Error = res.Err.Error()
	}
	return r
}

// Write prints res to w in the configured format.
func (p *Reporter) Write(w io.Writer, res Result) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(res)); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(res)); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case config.FormatText:
		return p.writeText(w, res)
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
}

func (p *Reporter) writeText(w io.Writer, res Result) error {
	renderer := lipgloss.NewRenderer(w)
	ok := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	fail := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

	var b strings.Builder
	switch res.Kind {
	case KindSuccess:
		b.WriteString(ok.Render("✅ API test successful!") + "\n")
		b.WriteString("Response: " + p.content(res.Content) + "\n")
	case KindHTTPFailure:
		b.WriteString(fail.Render(fmt.Sprintf("❌ API request failed with status code: %d", res.StatusCode)) + "\n")
		b.WriteString("Response: " + res.Body + "\n")
	default:
		b.WriteString(fail.Render(fmt.Sprintf("❌ Error: %v", res.Err)) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *Reporter) content(s string) string {
	if !p.render {
		return s
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWrap),
	)
	if err != nil {
		log.Debug().Err(err).Msg("markdown renderer unavailable")
		return s
	}
	out, err := r.Render(s)
	if err != nil {
		log.Debug().Err(err).Msg("render markdown")
		return s
	}
	return "\n" + strings.TrimRight(out, "\n")
}
