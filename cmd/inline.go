package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/lifo-cli/lifo/command"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/inline"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("file", "f", "", `Read steps from a script file, one per line ("-" for stdin)`)
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("strict", "s", false, "Stop at the first failing step and exit with an error")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	lo.Must0(viper.BindPFlag(key.InlineStrict, inlineCmd.Flags().Lookup("strict")))

	inlineCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return command.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// inlineCmd executes a stack script non-interactively.
var inlineCmd = &cobra.Command{
	Use:   "inline [steps...]",
	Short: "Execute stack operations non-interactively",
	Long: `Execute stack operations given as arguments or read from a script file.

Each argument is one step, so values containing spaces need quoting:
  lifo inline "push hello world" pop

Operations:
` + command.HelpText(),
	Example: `  lifo inline "push 1" "push 2" pop size
  lifo inline -f script.lifo --json`,
	Run: func(cmd *cobra.Command, args []string) {
		steps := args

		if file := lo.Must(cmd.Flags().GetString("file")); file != "" {
			fromFile, err := inline.ReadScript(file)
			handleErr(err)
			steps = append(fromFile, steps...)
		}

		if len(steps) == 0 {
			handleErr(errors.New("no steps given, pass them as arguments or with --file"))
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		handleErr(inline.Run(&inline.Options{
			Out:      writer,
			Steps:    steps,
			Capacity: viper.GetInt(key.StackCapacity),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Strict:   viper.GetBool(key.InlineStrict),
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of inline --json output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
