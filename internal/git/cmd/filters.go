package cmd

type LogFilters struct {
	Since   string
	Authors []string
}

// Turn into CLI args we can pass to `git log`
func (f LogFilters) ToArgs() []string {
	args := []string{}

	if f.Since != "" {
		args = append(args, "--since", f.Since)
	}

	for _, author := range f.Authors {
		args = append(args, "--author", author)
	}

	return args
}
