// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	BenchmarkInterruptedId
	WorkloadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page with the named glamour style ("auto", "dark",
// "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	if len(i.extLinks) > 0 {
		md += "\n\n## See also\n"
		for _, link := range i.extLinks {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Could not load the langbench configuration

The benchmark still runs, using the default configuration.

## Configuration file locations
- ` + "`--config <file>`" + ` when given
- Linux: ~/.config/langbench/config.cue
- macOS: ~/Library/Application Support/langbench/config.cue
- Windows: %AppData%\langbench\config.cue
- ./config.cue in the working directory

## Things you can try
- Create a default configuration:
~~~
$ langbench config init
~~~
- Print the effective configuration:
~~~
$ langbench config show
~~~

## Example configuration
~~~cue
ui: {
  verbose: false
  color_scheme: "auto"
}
log: level: "info"
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	benchmarkInterruptedIssue = &Issue{
		id: BenchmarkInterruptedId,
		mdMsg: `
# Benchmark interrupted

The run was cancelled between two workloads. Measurements printed so far are
complete; the remaining workloads were not started.

A workload that is already running is never interrupted, so a cancel request
can take as long as the slowest workload to be honored.`,
	}

	workloadFailedIssue = &Issue{
		id: WorkloadFailedId,
		mdMsg: `
# A workload failed

A workload returned an error, so the run stopped and no timing was printed
for it. Workload inputs are fixed, so this points at a defect rather than
at your environment.

## Things you can try
- Re-run with ` + "`--verbose`" + ` to see per-workload debug records
- Report the error message together with ` + "`langbench --version`" + ``,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		benchmarkInterruptedIssue.Id(): benchmarkInterruptedIssue,
		workloadFailedIssue.Id():       workloadFailedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
