package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/noodlebox/currenttime"
)

type symbolInfo struct {
	Symbol      string `json:"symbol" yaml:"symbol"`
	Description string `json:"description" yaml:"description"`
	Sample      string `json:"sample" yaml:"sample"`
}

func addSymbolsCommand(root *cobra.Command, a *app) {
	var at string

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the registered template symbols",
		Long: `List every registered symbol, built-in ones first and then the configured
aliases, with what they render for the current time or for --at.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, _, err := a.fixedEngine(at)
			if err != nil {
				return err
			}
			list, err := a.symbolInfos(e)
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), a.cfg.Output, list, func(w io.Writer) error {
				return writeSymbolsText(w, list)
			})
		},
	}
	addAtFlag(cmd, &at)
	root.AddCommand(cmd)
}

func (a *app) symbolInfos(e *currenttime.Engine) ([]symbolInfo, error) {
	descriptions := make(map[string]string)
	for _, def := range currenttime.DefaultSymbols() {
		descriptions[def.Symbol] = def.Description
	}
	aliases, err := a.cfg.Aliases()
	if err != nil {
		return nil, err
	}
	for sym, tmpl := range aliases {
		descriptions[sym] = "alias for " + tmpl
	}

	syms := e.Symbols()
	list := make([]symbolInfo, 0, len(syms))
	for _, sym := range syms {
		list = append(list, symbolInfo{
			Symbol:      sym,
			Description: descriptions[sym],
			Sample:      e.MkString("%" + sym),
		})
	}
	return list, nil
}

func writeSymbolsText(w io.Writer, list []symbolInfo) error {
	width := 0
	for _, s := range list {
		width = max(width, utf8.RuneCountInString(s.Description))
	}
	for _, s := range list {
		pad := width - utf8.RuneCountInString(s.Description)
		if _, err := fmt.Fprintf(w, "%%%s  %s%*s  %s\n", s.Symbol, s.Description, pad, "", s.Sample); err != nil {
			return err
		}
	}
	return nil
}
