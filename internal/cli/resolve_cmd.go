package cli

import (
	"strings"

	"github.com/benedict2310/robotsctl/internal/generate"
	"github.com/benedict2310/robotsctl/internal/output"
	"github.com/benedict2310/robotsctl/pkg/model"
	"github.com/spf13/cobra"
)

type resolveView struct {
	RunID       string             `json:"runId" yaml:"runId"`
	Environment string             `json:"environment" yaml:"environment"`
	Path        string             `json:"path" yaml:"path"`
	Output      string             `json:"output" yaml:"output"`
	Query       string             `json:"query" yaml:"query"`
	ConfigFile  string             `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Policy      []model.PolicyRule `json:"policy,omitempty" yaml:"policy,omitempty"`
	Host        *string            `json:"host" yaml:"host"`
	Sitemap     *string            `json:"sitemap" yaml:"sitemap"`
}

func newResolveView(res generate.Result) resolveView {
	return resolveView{
		RunID:       res.RunID,
		Environment: res.Environment,
		Path:        res.Path,
		Output:      res.Options.Output,
		Query:       res.Options.Query,
		ConfigFile:  res.Options.ConfigFile,
		Policy:      res.Options.Policy,
		Host:        fieldPtr(res.URLs.Host),
		Sitemap:     fieldPtr(res.URLs.Sitemap),
	}
}

func (v resolveView) Table() ([]string, [][]string) {
	return []string{"KEY", "VALUE"}, [][]string{
		{"environment", v.Environment},
		{"path", v.Path},
		{"host", output.OrNone(v.Host)},
		{"sitemap", output.OrNone(v.Sitemap)},
		{"policy groups", policySummary(v.Policy)},
		{"config file", output.OrNone(&v.ConfigFile)},
		{"query", output.Cell(v.Query, 60)},
	}
}

// fieldPtr maps a disabled field to nil so it encodes as null.
func fieldPtr(f model.Field) *string {
	v, ok := f.Get()
	if !ok {
		return nil
	}
	return &v
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	flags := &siteFlags{}
	var format string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved options and URLs without writing robots.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return exitCodeError(exitUsage, err)
			}
			raw, err := flags.rawOptions(cmd)
			if err != nil {
				return err
			}
			runner, err := flags.runner(cmd, root)
			if err != nil {
				return err
			}

			res, err := runner.Resolve(cmd.Context(), flags.site(), raw)
			if err != nil {
				return classify(err)
			}

			return output.Write(cmd.OutOrStdout(), outFormat, newResolveView(res))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format (table|json|yaml)")

	return cmd
}

func policySummary(policy []model.PolicyRule) string {
	if len(policy) == 0 {
		return "<default>"
	}
	agents := make([]string, 0, len(policy))
	for _, rule := range policy {
		agents = append(agents, strings.Join(rule.UserAgents, ","))
	}
	return strings.Join(agents, " | ")
}
