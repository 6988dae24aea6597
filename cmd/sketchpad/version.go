package main

import (
	"flag"
	"fmt"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.r.out, "%s version %s", v.r.program, version)
	if commit != "" {
		fmt.Fprintf(v.r.out, " (%s", commit)
		if date != "" {
			fmt.Fprintf(v.r.out, ", %s", date)
		}
		fmt.Fprint(v.r.out, ")")
	}
	fmt.Fprintln(v.r.out)
	return nil
}

func (v *versionCmd) Program() string { return v.r.program + " version" }

func (v *versionCmd) FlagSet() *flag.FlagSet { return nil }
