package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sqlfmt-go/sqlformat"
)

// newFormatCommand builds "sqlformat format [file]". A bare "-" or an
// omitted path both mean stdin; --inline treats the positional argument
// as the SQL text itself rather than a path.
func newFormatCommand() *cobra.Command {
	var (
		flagLanguage            string
		flagIndent              string
		flagUppercase           bool
		flagKeywordPosition     string
		flagNewline             string
		flagBreakBeforeBoolean  bool
		flagAliasAs             string
		flagTabulateAlias       bool
		flagCommaPosition       string
		flagOpenParenNewline    bool
		flagCloseParenNewline   bool
		flagLineWidth           int
		flagLinesBetweenQueries int
		flagDenseOperators      bool
		flagSemicolonNewline    bool
		flagParamsFile          string
		flagInline              bool
		flagOut                 string
	)

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Format a SQL file, stdin, or inline string",
		Example: `  sqlformat format query.sql
  cat query.sql | sqlformat format -
  sqlformat format --inline "select a,b from t"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, source, err := readQuery(args, flagInline)
			if err != nil {
				return errors.Wrapf(err, "reading query")
			}

			overrides := map[string]any{
				"language":                   flagLanguage,
				"indent":                     flagIndent,
				"uppercase":                  flagUppercase,
				"keywordPosition":            flagKeywordPosition,
				"newline":                    flagNewline,
				"breakBeforeBooleanOperator": flagBreakBeforeBoolean,
				"aliasAs":                    flagAliasAs,
				"tabulateAlias":              flagTabulateAlias,
				"commaPosition":              flagCommaPosition,
				"parenOptions": map[string]any{
					"openParenNewline":  flagOpenParenNewline,
					"closeParenNewline": flagCloseParenNewline,
				},
				"lineWidth":           flagLineWidth,
				"linesBetweenQueries": flagLinesBetweenQueries,
				"denseOperators":      flagDenseOperators,
				"semicolonNewline":    flagSemicolonNewline,
			}

			if flagParamsFile != "" {
				params, err := loadParamsFile(flagParamsFile)
				if err != nil {
					return errors.Wrapf(err, "loading params file %s", flagParamsFile)
				}
				overrides["params"] = params
			}

			cfg, err := sqlformat.DecodeConfig(overrides)
			if err != nil {
				return errors.Wrap(err, "decoding configuration")
			}

			out, err := sqlformat.Format(query, cfg)
			if err != nil {
				return errors.Wrapf(err, "formatting %s", source)
			}

			return writeOutput(cmd.OutOrStdout(), out, flagOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&flagLanguage, "language", "sql", "SQL dialect")
	flags.StringVar(&flagIndent, "indent", "  ", "indent unit string")
	flags.BoolVar(&flagUppercase, "uppercase", true, "uppercase reserved keywords")
	flags.StringVar(&flagKeywordPosition, "keyword-position", "standard", "standard, tenSpaceLeft, or tenSpaceRight")
	flags.StringVar(&flagNewline, "newline", "always", "always, never, lineWidth, or a positive integer")
	flags.BoolVar(&flagBreakBeforeBoolean, "break-before-boolean-operator", true, "break before AND/OR/XOR")
	flags.StringVar(&flagAliasAs, "alias-as", "select", "always, never, select, or explicit")
	flags.BoolVar(&flagTabulateAlias, "tabulate-alias", false, "right-align aliases")
	flags.StringVar(&flagCommaPosition, "comma-position", "after", "after, before, or tabular")
	flags.BoolVar(&flagOpenParenNewline, "open-paren-newline", true, "newline after a non-inline open paren")
	flags.BoolVar(&flagCloseParenNewline, "close-paren-newline", true, "newline before a non-inline close paren")
	flags.IntVar(&flagLineWidth, "line-width", 50, "max inline-block width")
	flags.IntVar(&flagLinesBetweenQueries, "lines-between-queries", 1, "newlines between ;-separated queries")
	flags.BoolVar(&flagDenseOperators, "dense-operators", false, "no spaces around operators")
	flags.BoolVar(&flagSemicolonNewline, "semicolon-newline", false, "newline before ;")
	flags.StringVar(&flagParamsFile, "params-file", "", "JSON file of positional array or named map parameters")
	flags.BoolVar(&flagInline, "inline", false, "treat the positional argument as SQL text, not a path")
	flags.StringVar(&flagOut, "out", "", "write output to this file instead of stdout")

	return cmd
}

func readQuery(args []string, inline bool) (query, source string, err error) {
	if inline {
		if len(args) == 0 {
			return "", "", errors.New("--inline requires the SQL text as an argument")
		}
		return args[0], "<inline>", nil
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

func writeOutput(stdout io.Writer, formatted, outPath string) error {
	if outPath == "" {
		_, err := fmt.Fprintln(stdout, formatted)
		return err
	}
	return os.WriteFile(outPath, []byte(formatted+"\n"), 0o644)
}

// loadParamsFile reads a JSON array (positional params) or a JSON object
// (named params) from path.
func loadParamsFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		return decodeJSONStringSlice(trimmed)
	}
	return decodeJSONStringMap(trimmed)
}
