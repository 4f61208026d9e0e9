package subcommands

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type dumpWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Weeks int    `yaml:"weeks"`
}

type dumpDay struct {
	Date    string         `yaml:"date"`
	Commits map[string]int `yaml:"commits"`
}

type dumpAuthor struct {
	Author string    `yaml:"author"`
	Days   []dumpDay `yaml:"days"`
}

type dumpDoc struct {
	Window   dumpWindow   `yaml:"window"`
	Activity []dumpAuthor `yaml:"activity"`
}

// Just prints the aggregated activity as YAML, for debugging. Days without
// commits are left out.
func Dump(
	ctx context.Context,
	out io.Writer,
	src Source,
	opts Options,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"dump\": %w", err)
		}
	}()

	logger().Debug("called dump()", "opts", opts)

	if err := opts.Validate(); err != nil {
		return err
	}

	data, err := collect(ctx, src, opts)
	if err != nil {
		return err
	}

	doc := dumpDoc{
		Window: dumpWindow{
			Start: data.window.Start().String(),
			End:   data.window.End().String(),
			Weeks: len(data.window),
		},
		Activity: []dumpAuthor{},
	}

	for _, ag := range data.activity {
		author := dumpAuthor{Author: ag.Author, Days: []dumpDay{}}
		for _, week := range ag.Grid {
			for _, gad := range week {
				if gad.Counts.Total() == 0 {
					continue
				}

				commits := map[string]int{}
				for repo, n := range gad.Counts {
					commits[string(repo)] = n
				}

				author.Days = append(
					author.Days,
					dumpDay{Date: gad.Date.String(), Commits: commits},
				)
			}
		}

		doc.Activity = append(doc.Activity, author)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding activity: %w", err)
	}

	return enc.Close()
}
