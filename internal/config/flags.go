package config

import (
	"io"

	"github.com/spf13/pflag"
)

// Flags holds the command-line settings of the checkin-config command.
type Flags struct {
	// ConfigPath overrides the configuration file location.
	ConfigPath string
	// Print writes the normalized configuration, passwords redacted, to
	// standard output.
	Print bool
	// Verbose enables debug logging.
	Verbose bool
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-c/--config  path to the JSON config file
//	--print      print the normalized configuration
//	-v/--verbose enable debug logging
//
// Usage and parse errors are written to output.
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	var f Flags

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path (default: "+FileName+" in the installation root)")
	fs.BoolVar(&f.Print, "print", false, "Print the normalized configuration with passwords redacted")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &f, nil
}
