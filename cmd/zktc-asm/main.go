package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kkinos/zktc-asm/assembler"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "zktc-asm <file.asm>",
	Short:   "Assembler for the ZKTC instruction set",
	Long:    "zktc-asm translates ZKTC assembly source into a textual memory image,\none lowercase hex byte per line, loadable by the ZKTC core.",
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	// Errors are reported once, through logrus in main.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "a.mem", "output file name")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", args[0], err)
	}

	start := time.Now()
	asm := assembler.New()
	image, err := asm.Assemble(string(src))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logrus.Debugf("assembled %d bytes, %d labels, in %s", len(image), asm.Symbols().Len(), time.Since(start))

	// The output file is only created once assembly has fully succeeded,
	// so a failed run never leaves a partial image behind.
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not create file %q: %w", outputPath, err)
	}
	if err := assembler.WriteImage(out, image); err != nil {
		out.Close()
		return fmt.Errorf("could not write %q: %w", outputPath, err)
	}
	return out.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
